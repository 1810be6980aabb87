package config

import (
	"encoding/json"
	"os"

	"github.com/dpbr/dpbr-client/internal/flagx"
	"github.com/dpbr/dpbr-client/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals use
// timex.Duration. Only keys present in the file override the current values.
type JsonConfig struct {
	APIURL         *string         `json:"api_url"`
	APIPrefix      *string         `json:"api_prefix"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	StorageBackend *string         `json:"storage_backend"`
	StorageDSN     *string         `json:"storage_dsn"`
	RedisAddr      *string         `json:"redis_addr"`
	RedisPrefix    *string         `json:"redis_prefix"`
	TimeZone       *string         `json:"time_zone"`
	LogBackend     *string         `json:"log_backend"`
	LogLevel       *string         `json:"log_level"`
	KakaoClientID  *string         `json:"kakao_client_id"`
	KakaoRedirect  *string         `json:"kakao_redirect_uri"`
	ExportDir      *string         `json:"export_dir"`
	ExportFont     *string         `json:"export_font"`
	S3Endpoint     *string         `json:"s3_endpoint"`
	S3Region       *string         `json:"s3_region"`
	S3Bucket       *string         `json:"s3_bucket"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag nothing happens. Read or unmarshal errors
// panic.
//
// Secrets (redis password, storage secret, S3 keys) are read from the
// environment only.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIURL, jc.APIURL)
	setString(&cfg.APIPrefix, jc.APIPrefix)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.StorageDSN, jc.StorageDSN)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPrefix, jc.RedisPrefix)
	setString(&cfg.TimeZone, jc.TimeZone)
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.KakaoClientID, jc.KakaoClientID)
	setString(&cfg.KakaoRedirectURI, jc.KakaoRedirect)
	setString(&cfg.ExportDir, jc.ExportDir)
	setString(&cfg.ExportFont, jc.ExportFont)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Bucket, jc.S3Bucket)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
