package storage

import (
	"context"

	"github.com/dpbr/dpbr-client/internal/cryptox"
	"github.com/dpbr/dpbr-client/internal/logging"
)

// sealSalt binds derived keys to this store; changing it orphans every
// previously sealed value.
var sealSalt = []byte("dpbr-client/auth-slots/v1")

// SealedStorage encrypts values before they reach the wrapped Storage. A
// stored value that cannot be opened (foreign secret, tampering, plaintext
// left from before sealing was enabled) reads as absent.
type SealedStorage struct {
	inner  Storage
	sealer *cryptox.Sealer
	log    logging.Logger
}

func NewSealedStorage(inner Storage, secret string, log logging.Logger) (*SealedStorage, error) {
	sealer, err := cryptox.NewSealer([]byte(secret), sealSalt)
	if err != nil {
		return nil, err
	}
	return &SealedStorage{inner: inner, sealer: sealer, log: log}, nil
}

func (s *SealedStorage) Get(ctx context.Context, slot Slot) (string, bool) {
	sealed, ok := s.inner.Get(ctx, slot)
	if !ok {
		return "", false
	}
	plain, err := s.sealer.Open(sealed)
	if err != nil {
		s.log.Warn(ctx, "discarding unreadable slot", "slot", slot)
		return "", false
	}
	return plain, true
}

func (s *SealedStorage) Set(ctx context.Context, slot Slot, value string) {
	sealed, err := s.sealer.Seal(value)
	if err != nil {
		s.log.Warn(ctx, "storage seal failed", "slot", slot, "err", err)
		return
	}
	s.inner.Set(ctx, slot, sealed)
}

func (s *SealedStorage) Remove(ctx context.Context, slots ...Slot) {
	s.inner.Remove(ctx, slots...)
}

func (s *SealedStorage) Update(ctx context.Context, changes Changes) {
	sealed := Changes{Set: make(map[Slot]string, len(changes.Set)), Remove: changes.Remove}
	for slot, v := range changes.Set {
		out, err := s.sealer.Seal(v)
		if err != nil {
			s.log.Warn(ctx, "storage seal failed, update dropped", "slot", slot, "err", err)
			return
		}
		sealed.Set[slot] = out
	}
	s.inner.Update(ctx, sealed)
}
