// Package oauth builds the Kakao authorization URL that starts the social
// login. The authorization code Kakao redirects back with is exchanged by the
// backend, not here.
package oauth

import (
	"errors"

	"github.com/dpbr/dpbr-client/internal/client/config"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://kauth.kakao.com/oauth/authorize",
	TokenURL: "https://kauth.kakao.com/oauth/token",
}

var (
	ErrNoClientID    = errors.New("KAKAO_CLIENT_ID is not set")
	ErrNoRedirectURI = errors.New("KAKAO_REDIRECT_URI is not set")
)

// KakaoAuthURL returns the authorize URL and the random state embedded in it.
func KakaoAuthURL(cfg *config.Config) (string, string, error) {
	if cfg == nil || cfg.KakaoClientID == "" {
		return "", "", ErrNoClientID
	}
	if cfg.KakaoRedirectURI == "" {
		return "", "", ErrNoRedirectURI
	}

	oc := &oauth2.Config{
		ClientID:    cfg.KakaoClientID,
		RedirectURL: cfg.KakaoRedirectURI,
		Endpoint:    Endpoint,
	}
	state := uuid.NewString()
	return oc.AuthCodeURL(state), state, nil
}
