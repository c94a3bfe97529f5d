package service

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// codeAlphabet deliberately omits 0/O, 1/I and similar lookalikes so codes
// survive being read aloud or scrawled on a whiteboard.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
	codeAttempts = 10
)

func generateRoomCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b), nil
}

// NormalizeCode uppercases and trims user input and rejects anything that
// is not six characters from the code alphabet.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != codeLength {
		return "", ErrInvalidCode
	}
	for _, r := range code {
		if !strings.ContainsRune(codeAlphabet, r) {
			return "", ErrInvalidCode
		}
	}
	return code, nil
}
