package oauth

import (
	"net/url"
	"testing"

	"github.com/dpbr/dpbr-client/internal/client/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKakaoAuthURL(t *testing.T) {
	cfg := &config.Config{KakaoClientID: "rest-key", KakaoRedirectURI: "http://localhost:5173/auth/kakao"}

	raw, state, err := KakaoAuthURL(cfg)
	require.NoError(t, err)

	_, err = uuid.Parse(state)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "kauth.kakao.com", u.Host)
	assert.Equal(t, "/oauth/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "rest-key", q.Get("client_id"))
	assert.Equal(t, "http://localhost:5173/auth/kakao", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, state, q.Get("state"))
}

func TestKakaoAuthURL_StateIsFresh(t *testing.T) {
	cfg := &config.Config{KakaoClientID: "k", KakaoRedirectURI: "http://x"}
	_, s1, err := KakaoAuthURL(cfg)
	require.NoError(t, err)
	_, s2, err := KakaoAuthURL(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestKakaoAuthURL_MissingSettings(t *testing.T) {
	_, _, err := KakaoAuthURL(nil)
	assert.ErrorIs(t, err, ErrNoClientID)

	_, _, err = KakaoAuthURL(&config.Config{KakaoClientID: "k"})
	assert.ErrorIs(t, err, ErrNoRedirectURI)
}
