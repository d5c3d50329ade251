package crypto

import (
	stdcrypto "crypto"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
)

// SignMessage produces a detached RSA PKCS#1 v1.5 signature over the
// SHA-256 digest of message. The signature is exactly the modulus size
// of the signing key.
func SignMessage(priv *rsa.PrivateKey, message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)

	sig, err := rsa.SignPKCS1v15(nil, priv, stdcrypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	if len(sig) != priv.Size() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSignatureLength, len(sig), priv.Size())
	}

	return sig, nil
}

// VerifySignature reports whether sig is a valid detached signature
// over message by the holder of pub. Any malformed, truncated or
// mismatched signature reports false; there is no error return because
// a verifier with a parsed key cannot fail, only reject.
func VerifySignature(pub *rsa.PublicKey, message, sig []byte) bool {
	digest := sha256.Sum256(message)
	return rsa.VerifyPKCS1v15(pub, stdcrypto.SHA256, digest[:], sig) == nil
}
