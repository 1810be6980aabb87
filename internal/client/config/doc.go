// Package config loads runtime configuration for the dpbr client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv). main loads a .env file first,
//     so values from it land here too.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   backend base URL (PUBLIC_API_URL)
//	-p string   API path prefix (PUBLIC_API_PREFIX)
//	-t int      request timeout in seconds
//	-s string   storage backend: sqlite, redis, memory or none
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_url": "https://dpbr.example",
//	  "api_prefix": "/api/v1",
//	  "request_timeout": "15s",
//	  "storage_backend": "sqlite",
//	  "storage_dsn": "dpbr.db"
//	}
//
// Validate rejects a missing base URL and a prefix without a path segment,
// so a misconfigured client fails at start-up rather than on the first call.
package config
