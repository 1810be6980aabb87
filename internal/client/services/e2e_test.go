package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dpbr/dpbr-client/internal/client/client"
	"github.com/dpbr/dpbr-client/internal/client/config"
	"github.com/dpbr/dpbr-client/internal/client/gateway"
	"github.com/dpbr/dpbr-client/internal/client/models"
	"github.com/dpbr/dpbr-client/internal/client/storage"
	"github.com/dpbr/dpbr-client/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handlerTransport serves requests from an http.Handler without a socket so
// the configured base URL can stay a real-looking host.
type handlerTransport struct {
	h http.Handler
}

func (t handlerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	t.h.ServeHTTP(rec, r)
	return rec.Result(), nil
}

func wire(t *testing.T, st storage.Storage, h http.Handler) (AuthService, ReaderService) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIURL = "https://api.example.com"

	tokens := NewStoredToken(st)
	gw, err := gateway.New(cfg, tokens, logging.Discard(),
		gateway.WithHTTPClient(&http.Client{Transport: handlerTransport{h: h}}))
	require.NoError(t, err)

	c := client.NewHTTPClient(gw)
	return NewAuthService(c, st, logging.Discard()), NewReaderService(c, tokens, logging.Discard(), cfg.Location())
}

func TestEndToEnd_CharactersMapping(t *testing.T) {
	var gotURL string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"name":"A","detail_txt":null,"level":10,"job":"X","server":"S","avatar_url":null}]`)
	})

	_, reader := wire(t, storage.NewMemoryStorage(), h)

	list, err := reader.Characters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api/v1/characters", gotURL)
	assert.Equal(t, []models.Character{{
		ID: "1", Name: "A", Nickname: "A", AvatarURL: "/default-avatar.png",
		Level: 10, Job: "X", Club: "단풍바람", Server: "S",
	}}, list)
}

func TestEndToEnd_KakaoNewUser(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStorage()

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/auth/kakao/login", r.URL.Path)
		assert.Equal(t, "code123", r.URL.Query().Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"is_new_user":true,"register_token":"rt-1"}`)
	})

	auth, _ := wire(t, st, h)

	res, err := auth.KakaoLogin(ctx, "code123")
	require.NoError(t, err)
	assert.Equal(t, "rt-1", res.RegisterToken)
	assert.True(t, res.IsNewUser)

	_, touched := st.Get(ctx, storage.SlotToken)
	assert.False(t, touched)
	assert.False(t, auth.Snapshot().IsAuthenticated)
}

func TestEndToEnd_LogoutWithRemote500(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStorage()

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/users/login":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"access_token":"tok","user":{"id":1,"name":"A","student_id":"s"}}`)
		case "/api/v1/users/logout":
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	auth, _ := wire(t, st, h)
	require.NoError(t, auth.Login(ctx, Credentials{Name: "A", StudentID: "s", SaveName: true}))
	require.True(t, auth.Snapshot().IsAuthenticated)

	auth.Logout(ctx)

	assert.Equal(t, models.Anonymous(), auth.Snapshot())
	for _, slot := range storage.AllSlots {
		_, ok := st.Get(ctx, slot)
		assert.False(t, ok, "slot %s", slot)
	}
}
