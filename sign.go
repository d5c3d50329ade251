package sealbox

import (
	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Sign produces a detached signature over message: RSA PKCS#1 v1.5
// over the SHA-256 digest. The signature length always equals the
// key's modulus size (256 bytes for generated keys). It fails with
// *SigningError when the private key cannot be parsed or the signature
// cannot be produced.
func Sign(privateKey string, message []byte) ([]byte, error) {
	priv, err := crypto.ParsePrivateKey([]byte(privateKey))
	if err != nil {
		return nil, &SigningError{Err: err}
	}

	sig, err := crypto.SignMessage(priv, message)
	if err != nil {
		return nil, &SigningError{Err: err}
	}
	return sig, nil
}

// Verify checks a detached signature over message against publicKey.
//
// The return values split cleanly: (true, nil) means the signature is
// valid, (false, nil) means it is not, for any reason including a
// truncated, extended or wrong-key signature. An error is returned
// only when verification cannot run at all, which means the public key
// did not parse; the error is then a *VerificationError.
func Verify(publicKey string, message, signature []byte) (bool, error) {
	pub, err := crypto.ParsePublicKey([]byte(publicKey))
	if err != nil {
		return false, &VerificationError{Err: err}
	}

	return crypto.VerifySignature(pub, message, signature), nil
}
