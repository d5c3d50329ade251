package sealbox

import (
	"errors"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// KeyPair holds an RSA key pair, PEM encoded. Public is a PKIX
// "PUBLIC KEY" block and Private a PKCS#1 "RSA PRIVATE KEY" block;
// both strings are directly consumable by every other operation.
type KeyPair struct {
	Public  string
	Private string
}

// GenerateKeyPair creates a fresh 2048-bit RSA key pair, usable for
// both sealing and signing. It fails with *EntropyError when the
// system randomness source fails, *KeyGenerationError otherwise.
func GenerateKeyPair() (*KeyPair, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		if errors.Is(err, crypto.ErrEntropy) {
			return nil, &EntropyError{Err: err}
		}
		return nil, &KeyGenerationError{Err: err}
	}

	return &KeyPair{
		Public:  kp.PublicPEM,
		Private: kp.PrivatePEM,
	}, nil
}

// Matches reports whether publicKey and privateKey are halves of the
// same RSA key pair, by modulus comparison. It returns false, never an
// error, when either half fails to parse.
func Matches(publicKey, privateKey string) bool {
	pub, err := crypto.ParsePublicKey([]byte(publicKey))
	if err != nil {
		return false
	}

	priv, err := crypto.ParsePrivateKey([]byte(privateKey))
	if err != nil {
		return false
	}

	return crypto.MatchKeys(pub, priv)
}

// Fingerprint returns a short stable identifier for a public key: the
// string "SHA256:" followed by the hex SHA-256 digest of the key's DER
// encoding. The same key always yields the same fingerprint regardless
// of PEM formatting. It fails with *VerificationError when the key
// cannot be parsed.
func Fingerprint(publicKey string) (string, error) {
	pub, err := crypto.ParsePublicKey([]byte(publicKey))
	if err != nil {
		return "", &VerificationError{Err: err}
	}

	fp, err := crypto.Fingerprint(pub)
	if err != nil {
		return "", &VerificationError{Err: err}
	}
	return fp, nil
}
