// Package client contains the typed REST surface of the dpbr backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): user
//     login/logout/me, the Kakao login and signup handshake, characters,
//     settlements, comments and system notices.
//  2. A concrete implementation (see HTTPClient) on top of gateway.Gateway,
//     which owns URLs, bearer tokens, timeouts and the response envelope.
//  3. Wire DTOs mirroring the backend's snake_case JSON.
//
// # Error Handling
//
// A failed envelope becomes an *APIError carrying the HTTP status and the
// envelope message. 401/403 also match ErrUnauthorized and transport
// failures (timeouts, refused connections, gateway 5xx) match ErrUnavailable
// through errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation on top of the gateway timeout.
package client
