package common

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomBytes returns n bytes from crypto/rand.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// RandomHex returns a hex string encoding n random bytes (2n characters).
func RandomHex(n int) (string, error) {
	b, err := RandomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeBytes overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent. Nil is ignored.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
