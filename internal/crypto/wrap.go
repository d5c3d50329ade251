package crypto

import (
	"crypto/rsa"
	"crypto/sha1"
	"fmt"
)

// WrapKey encrypts a session key with RSA-OAEP for the holder of pub.
// The wrapped blob is exactly the modulus size of the recipient key.
//
// OAEP uses SHA-1 for the label hash and MGF1. This matches the wire
// format of existing envelopes and is not a collision-resistance use
// of SHA-1.
func WrapKey(pub *rsa.PublicKey, sessionKey []byte) ([]byte, error) {
	if len(sessionKey) != SessionKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(sessionKey), SessionKeySize)
	}

	wrapped, err := rsa.EncryptOAEP(sha1.New(), randReader, pub, sessionKey, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrapFailed, err)
	}

	return wrapped, nil
}

// UnwrapKey recovers a session key wrapped with RSA-OAEP. The wrapped
// blob must be exactly the modulus size of priv, and the recovered key
// exactly the session key size.
func UnwrapKey(priv *rsa.PrivateKey, wrapped []byte) ([]byte, error) {
	if len(wrapped) != priv.Size() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrappedKeyLength, len(wrapped), priv.Size())
	}

	key, err := rsa.DecryptOAEP(sha1.New(), nil, priv, wrapped, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnwrapFailed, err)
	}

	if len(key) != SessionKeySize {
		Wipe(key)
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSessionKeyLength, len(key), SessionKeySize)
	}

	return key, nil
}
