package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := generateRoomCode()
		require.NoError(t, err)
		require.Len(t, code, codeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r),
				"code %q contains %q outside the alphabet", code, r)
		}
		seen[code] = true
	}
	// 100 draws from a 32^6 space colliding would mean broken randomness.
	assert.Greater(t, len(seen), 90)
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"ABCDEF", "ABCDEF", false},
		{"abcdef", "ABCDEF", false},
		{"  ab23cd \n", "AB23CD", false},
		{"", "", true},
		{"ABCDE", "", true},
		{"ABCDEFG", "", true},
		{"ABC0EF", "", true}, // 0 is not in the alphabet
		{"ABCIEF", "", true}, // neither is I
		{"ABC EF", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeCode(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidCode, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
