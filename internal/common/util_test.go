package common

import (
	"encoding/hex"
	"testing"
)

func TestRandomHex_LengthAndHex(t *testing.T) {
	const n = 16
	s, err := RandomHex(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n*2 {
		t.Fatalf("expected hex length %d, got %d", n*2, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("string is not valid hex: %v", err)
	}
}

func TestRandomHex_ZeroSize(t *testing.T) {
	s, err := RandomHex(0)
	if err != nil {
		t.Fatalf("unexpected error for size=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for size=0, got %q", s)
	}
}

func TestRandomBytes_Length(t *testing.T) {
	const n = 24
	buf, err := RandomBytes(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buf) != n {
		t.Fatalf("expected length %d, got %d", n, len(buf))
	}
}

func TestWipeBytes_ZerosBuffer(t *testing.T) {
	buf := []byte("student-1234")
	WipeBytes(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeBytes_NilSafe(t *testing.T) {
	WipeBytes(nil)
}
