package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderCharacters_IsACopy(t *testing.T) {
	a := PlaceholderCharacters()
	require.Len(t, a, 14)
	a[0].Name = "changed"

	b := PlaceholderCharacters()
	assert.Equal(t, "강민아", b[0].Name)
}

func TestPlaceholderLookups(t *testing.T) {
	c, ok := PlaceholderCharacter("char-2")
	require.True(t, ok)
	assert.Equal(t, "바람솔", c.Nickname)

	_, ok = PlaceholderCharacter("char-99")
	assert.False(t, ok)

	assert.Len(t, PlaceholderSettlements("char-1"), 10)
	assert.Empty(t, PlaceholderSettlements("char-2"))

	s, ok := PlaceholderSettlement("msg-5")
	require.True(t, ok)
	assert.Equal(t, "2026-08-01", s.AcquiredAt)

	assert.Len(t, PlaceholderComments(), 8)
}

func TestPlaceholderNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"char-7", 7, true},
		{"msg-10", 10, true},
		{"42", 42, true},
		{"char-x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := PlaceholderNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
