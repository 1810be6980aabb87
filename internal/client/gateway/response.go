package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// Response is the typed envelope returned by Call. Data is nil on failure
// and on empty successful bodies.
type Response[T any] struct {
	Success bool
	Data    *T
	Message string
	Status  int
}

// Call performs req through g and decodes a successful JSON body into T.
func Call[T any](ctx context.Context, g *Gateway, req Request) Response[T] {
	raw := g.Do(ctx, req)
	if !raw.Success {
		return Response[T]{Message: raw.Message, Status: raw.Status}
	}
	return decode[T](raw)
}

func decode[T any](raw Raw) Response[T] {
	body := bytes.TrimSpace(raw.Body)
	if raw.Status == http.StatusNoContent || len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return Response[T]{Success: true, Status: raw.Status}
	}

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return Response[T]{Message: MessageInvalidResponse, Status: raw.Status}
	}
	return Response[T]{Success: true, Data: &v, Status: raw.Status}
}
