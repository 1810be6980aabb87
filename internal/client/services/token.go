package services

import (
	"context"
	"time"

	"github.com/dpbr/dpbr-client/internal/client/storage"
	"github.com/dpbr/dpbr-client/internal/client/token"
)

// StoredToken reads the access token slot. It implements
// gateway.TokenSource and hides tokens that are expired or unreadable;
// removing them is left to AuthService.CheckAuth so that slot and session
// never disagree.
type StoredToken struct {
	store storage.Storage
	now   func() time.Time
}

func NewStoredToken(st storage.Storage) *StoredToken {
	return &StoredToken{store: st, now: time.Now}
}

func (t *StoredToken) AccessToken(ctx context.Context) string {
	tok, ok := t.store.Get(ctx, storage.SlotToken)
	if !ok || !token.Usable(tok, t.now()) {
		return ""
	}
	return tok
}
