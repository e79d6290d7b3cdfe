package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// shareTokenBytes is the entropy of a share token. Hex encoding doubles it
// to 32 characters.
const shareTokenBytes = 16

// GenerateShareToken returns an unguessable URL-safe token for a share link.
func GenerateShareToken() (string, error) {
	b := make([]byte, shareTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating share token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
