package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/dpbr/dpbr-client/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func rawToken(payload string) string {
	enc := base64.RawURLEncoding.EncodeToString
	return enc([]byte(`{"alg":"none"}`)) + "." + enc([]byte(payload)) + ".sig"
}

func TestDecode(t *testing.T) {
	now := time.Now()

	claims, ok := Decode(sign(t, jwt.MapClaims{"sub": "7", "exp": now.Unix()}))
	require.True(t, ok)
	assert.Equal(t, "7", claims["sub"])

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"one segment", "abc"},
		{"four segments", "a.b.c.d"},
		{"bad base64", "a.!!!.c"},
		{"not json", rawToken("not json")},
		{"json array", rawToken(`[1,2]`)},
		{"json null", rawToken(`null`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Decode(tt.raw)
			assert.False(t, ok)
		})
	}
}

func TestDecode_HeaderIsIgnored(t *testing.T) {
	raw := "garbage." + base64.RawURLEncoding.EncodeToString([]byte(`{"name":"x"}`)) + "."
	claims, ok := Decode(raw)
	require.True(t, ok)
	assert.Equal(t, "x", claims["name"])
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 1, 22, 23, 11, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"past exp", sign(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}), true},
		{"future exp", sign(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}), false},
		{"no exp", sign(t, jwt.MapClaims{"sub": "1"}), false},
		{"exp of wrong type", rawToken(`{"exp":"tomorrow"}`), false},
		{"undecodable", "not-a-token", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpired(tt.raw, now))
			assert.Equal(t, !tt.want, Usable(tt.raw, now))
		})
	}
}

func TestIsExpired_FractionalExp(t *testing.T) {
	raw := rawToken(`{"exp":1000.5}`)

	assert.False(t, IsExpired(raw, time.Unix(1000, 200*int64(time.Millisecond))))
	assert.False(t, IsExpired(raw, time.Unix(1000, 500*int64(time.Millisecond))))
	assert.True(t, IsExpired(raw, time.Unix(1000, 501*int64(time.Millisecond))))
	assert.True(t, Usable(raw, time.Unix(1000, 0)))
}

func TestToUser(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.User
	}{
		{
			name: "all claims present",
			raw:  sign(t, jwt.MapClaims{"id": 12, "name": "담뫄", "student_id": "20231234"}),
			want: models.User{ID: 12, Name: "담뫄", StudentID: "20231234"},
		},
		{
			name: "numeric sub and nickname",
			raw:  sign(t, jwt.MapClaims{"sub": "42", "nickname": "바람솔"}),
			want: models.User{ID: 42, Name: "바람솔", StudentID: "fallback-sid"},
		},
		{
			name: "username is the last resort",
			raw:  sign(t, jwt.MapClaims{"sub": 5, "username": "hanul"}),
			want: models.User{ID: 5, Name: "hanul", StudentID: "fallback-sid"},
		},
		{
			name: "wrong types fall back",
			raw:  sign(t, jwt.MapClaims{"sub": "abc", "name": 3, "student_id": 99}),
			want: models.User{ID: 0, Name: "fallback", StudentID: "fallback-sid"},
		},
		{
			name: "id outside int64 falls back to sub",
			raw:  rawToken(`{"id":1e20,"sub":"8"}`),
			want: models.User{ID: 8, Name: "fallback", StudentID: "fallback-sid"},
		},
		{
			name: "huge negative id",
			raw:  rawToken(`{"id":-1e19}`),
			want: models.User{ID: 0, Name: "fallback", StudentID: "fallback-sid"},
		},
		{
			name: "largest exact float id",
			raw:  rawToken(`{"id":9007199254740992}`),
			want: models.User{ID: 9007199254740992, Name: "fallback", StudentID: "fallback-sid"},
		},
		{
			name: "undecodable",
			raw:  "nope",
			want: models.User{Name: "fallback", StudentID: "fallback-sid"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToUser(tt.raw, "fallback", "fallback-sid"))
		})
	}
}
