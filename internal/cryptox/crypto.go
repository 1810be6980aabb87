// Package cryptox seals values written to local auth storage so that a
// copied database file does not hand out a working bearer token.
package cryptox

import (
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/dpbr/dpbr-client/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// ErrMalformed is returned by Open for input that is not a sealed value or
// was sealed with a different secret.
var ErrMalformed = errors.New("malformed sealed value")

// DeriveKey stretches secret into a chacha20poly1305 key with argon2id.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, chacha20poly1305.KeySize)
}

// Sealer encrypts and authenticates short strings with XChaCha20-Poly1305.
// Sealed output is base64url(nonce || ciphertext).
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a key from secret and salt.
func NewSealer(secret []byte, salt []byte) (*Sealer, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty secret")
	}
	key := DeriveKey(secret, salt)
	defer common.WipeBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init aead: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext with a fresh random nonce.
func (s *Sealer) Seal(plaintext string) (string, error) {
	nonce, err := common.RandomBytes(s.aead.NonceSize())
	if err != nil {
		return "", err
	}
	out := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Open reverses Seal.
func (s *Sealer) Open(sealed string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrMalformed
	}
	ns := s.aead.NonceSize()
	if len(raw) < ns+s.aead.Overhead() {
		return "", ErrMalformed
	}
	plain, err := s.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", ErrMalformed
	}
	return string(plain), nil
}
