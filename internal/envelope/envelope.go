package envelope

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

const (
	// Marker prefixes every sealed envelope.
	Marker = "MESSAGE:"
	// MarkerSize is the length of Marker in bytes.
	MarkerSize = 8

	// recognitionTag is prefixed to the payload before encryption and
	// checked after decryption. A mismatch means the wrong key was
	// used or the envelope was corrupted.
	recognitionTag = "MSG"
)

var (
	// ErrNoMarker is returned when data does not begin with the
	// envelope marker.
	ErrNoMarker = errors.New("missing envelope marker")

	// ErrTruncated is returned when the envelope ends before a section
	// is complete.
	ErrTruncated = errors.New("truncated envelope")

	// ErrRecognition is returned when the decrypted payload does not
	// begin with the recognition tag.
	ErrRecognition = errors.New("recognition tag mismatch")
)

// HasMarker reports whether data begins with the envelope marker.
func HasMarker(data []byte) bool {
	return len(data) >= MarkerSize && string(data[:MarkerSize]) == Marker
}

// Seal encrypts plaintext for the holder of pub and assembles the
// envelope. Every call draws a fresh session key and IV, so sealing
// the same plaintext twice produces different envelopes.
func Seal(plaintext []byte, pub *rsa.PublicKey) ([]byte, error) {
	sessionKey, err := crypto.NewSessionKey()
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(sessionKey)

	iv, err := crypto.NewIV()
	if err != nil {
		return nil, err
	}

	tagged := make([]byte, 0, len(recognitionTag)+len(plaintext))
	tagged = append(tagged, recognitionTag...)
	tagged = append(tagged, plaintext...)

	ciphertext, err := crypto.EncryptCBC(sessionKey, iv, tagged)
	crypto.Wipe(tagged)
	if err != nil {
		return nil, err
	}

	wrapped, err := crypto.WrapKey(pub, sessionKey)
	if err != nil {
		return nil, err
	}

	var b cryptobyte.Builder
	b.AddBytes([]byte(Marker))
	b.AddBytes(wrapped)
	b.AddBytes(iv)
	b.AddBytes(ciphertext)
	return b.Bytes()
}

// Open parses and decrypts an envelope with priv. Sections are
// consumed strictly in order: marker, wrapped key, IV, ciphertext.
// On success the payload is returned with the recognition tag
// stripped.
func Open(sealed []byte, priv *rsa.PrivateKey) ([]byte, error) {
	s := cryptobyte.String(sealed)

	var marker []byte
	if !s.ReadBytes(&marker, MarkerSize) || string(marker) != Marker {
		return nil, ErrNoMarker
	}

	var wrapped []byte
	if !s.ReadBytes(&wrapped, priv.Size()) {
		return nil, fmt.Errorf("%w: %d bytes left, want %d", crypto.ErrWrappedKeyLength, len(s), priv.Size())
	}

	sessionKey, err := crypto.UnwrapKey(priv, wrapped)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(sessionKey)

	var iv []byte
	if !s.ReadBytes(&iv, crypto.IVSize) {
		return nil, fmt.Errorf("%w: %d bytes left, want %d for IV", ErrTruncated, len(s), crypto.IVSize)
	}

	tagged, err := crypto.DecryptCBC(sessionKey, iv, s)
	if err != nil {
		return nil, err
	}

	if len(tagged) < len(recognitionTag) || string(tagged[:len(recognitionTag)]) != recognitionTag {
		crypto.Wipe(tagged)
		return nil, ErrRecognition
	}

	payload := make([]byte, len(tagged)-len(recognitionTag))
	copy(payload, tagged[len(recognitionTag):])
	crypto.Wipe(tagged)

	return payload, nil
}
