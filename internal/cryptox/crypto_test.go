package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

var testSalt = []byte("dpbr-test-salt")

func TestDeriveKey_Deterministic(t *testing.T) {
	k1 := DeriveKey([]byte("secret"), testSalt)
	k2 := DeriveKey([]byte("secret"), testSalt)
	require.Len(t, k1, 32)
	require.True(t, bytes.Equal(k1, k2))
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	k1 := DeriveKey([]byte("secret"), testSalt)
	k2 := DeriveKey([]byte("other"), testSalt)
	k3 := DeriveKey([]byte("secret"), []byte("other-salt"))
	require.False(t, bytes.Equal(k1, k2))
	require.False(t, bytes.Equal(k1, k3))
}

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer([]byte("secret"), testSalt)
	require.NoError(t, err)

	sealed, err := s.Seal("header.payload.signature")
	require.NoError(t, err)
	require.NotContains(t, sealed, "payload")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, "header.payload.signature", plain)
}

func TestSealer_FreshNoncePerSeal(t *testing.T) {
	s, err := NewSealer([]byte("secret"), testSalt)
	require.NoError(t, err)

	a, err := s.Seal("same")
	require.NoError(t, err)
	b, err := s.Seal("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSealer_OpenRejectsForeignAndGarbage(t *testing.T) {
	s1, err := NewSealer([]byte("secret"), testSalt)
	require.NoError(t, err)
	s2, err := NewSealer([]byte("different"), testSalt)
	require.NoError(t, err)

	sealed, err := s1.Seal("token")
	require.NoError(t, err)

	_, err = s2.Open(sealed)
	require.ErrorIs(t, err, ErrMalformed)

	for _, in := range []string{"", "not base64 !!", "c2hvcnQ"} {
		_, err := s1.Open(in)
		require.ErrorIs(t, err, ErrMalformed, "input %q", in)
	}
}

func TestNewSealer_EmptySecret(t *testing.T) {
	_, err := NewSealer(nil, testSalt)
	require.Error(t, err)
}
