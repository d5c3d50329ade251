package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for key generation, session keys
// and IVs. It defaults to crypto/rand but can be overridden for testing.
var randReader io.Reader = rand.Reader

// NewSessionKey returns a fresh random AES-256 session key.
func NewSessionKey() ([]byte, error) {
	key := make([]byte, SessionKeySize)
	if _, err := io.ReadFull(randReader, key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return key, nil
}

// NewIV returns a fresh random CBC initialization vector.
func NewIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(randReader, iv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return iv, nil
}
