package sealbox

import (
	"github.com/sealbox/sealbox-go/internal/crypto"
	"github.com/sealbox/sealbox-go/internal/envelope"
)

// Seal encrypts plaintext for the holder of recipientPublicKey and
// returns a self-contained envelope: the marker, the RSA-OAEP wrapped
// session key, the IV and the AES-256-CBC ciphertext. A fresh session
// key and IV are drawn for every call, so sealing the same plaintext
// twice produces different envelopes.
//
// Seal fails with *EntropyError when the randomness source fails and
// *KeyWrapError when the public key cannot be parsed or used. The
// empty plaintext is valid and seals to a minimal envelope.
func Seal(plaintext []byte, recipientPublicKey string) ([]byte, error) {
	pub, err := crypto.ParsePublicKey([]byte(recipientPublicKey))
	if err != nil {
		return nil, &KeyWrapError{Err: err}
	}

	sealed, err := envelope.Seal(plaintext, pub)
	if err != nil {
		return nil, wrapSealError(err)
	}
	return sealed, nil
}

// Open decrypts an envelope produced by Seal and returns the original
// plaintext. The envelope is parsed strictly in order: marker, wrapped
// session key, IV, ciphertext, with each stage checked before the next
// is read.
//
// Errors identify the stage that failed: *FormatError when the data is
// not an envelope (missing marker, truncated sections, misaligned
// ciphertext), *KeyUnwrapError when the private key cannot be parsed
// or the session key cannot be recovered, and *AuthenticityError when
// decryption completes but the message does not check out. The last
// carries no further detail.
func Open(sealed []byte, recipientPrivateKey string) ([]byte, error) {
	// The marker is checked before the key is touched, so blobs that
	// were never envelopes report as such even with a bad key.
	if !envelope.HasMarker(sealed) {
		return nil, wrapOpenError(envelope.ErrNoMarker)
	}

	priv, err := crypto.ParsePrivateKey([]byte(recipientPrivateKey))
	if err != nil {
		return nil, &KeyUnwrapError{Err: err}
	}

	plaintext, err := envelope.Open(sealed, priv)
	if err != nil {
		return nil, wrapOpenError(err)
	}
	return plaintext, nil
}

// IsSealed reports whether data begins with the envelope marker. It is
// the same probe Open performs first and needs no key, so it can
// classify stored blobs as sealed or plain.
func IsSealed(data []byte) bool {
	return envelope.HasMarker(data)
}
