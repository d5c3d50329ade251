package crypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
)

// PEM block types. Keys are always emitted in these encodings; parsing
// additionally accepts the common alternates (see ParsePublicKey and
// ParsePrivateKey).
const (
	pemTypePublic       = "PUBLIC KEY"
	pemTypePublicPKCS1  = "RSA PUBLIC KEY"
	pemTypePrivate      = "RSA PRIVATE KEY"
	pemTypePrivatePKCS8 = "PRIVATE KEY"
)

// Keypair is a generated RSA keypair together with its PEM encodings.
type Keypair struct {
	// Key is the underlying RSA private key.
	Key *rsa.PrivateKey
	// PublicPEM is the public key as a PKIX "PUBLIC KEY" block.
	PublicPEM string
	// PrivatePEM is the private key as a PKCS#1 "RSA PRIVATE KEY" block.
	PrivatePEM string
}

// GenerateKeypair creates a new RSA-2048 keypair with public exponent
// 65537 and both PEM encodings.
func GenerateKeypair() (*Keypair, error) {
	key, err := rsa.GenerateKey(randReader, RSAKeyBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}

	pubPEM, err := EncodePublicKeyPEM(&key.PublicKey)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		Key:        key,
		PublicPEM:  pubPEM,
		PrivatePEM: EncodePrivateKeyPEM(key),
	}, nil
}

// EncodePublicKeyPEM encodes a public key as a PKIX "PUBLIC KEY" block.
func EncodePublicKeyPEM(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePublic, Bytes: der})), nil
}

// EncodePrivateKeyPEM encodes a private key as a PKCS#1
// "RSA PRIVATE KEY" block.
func EncodePrivateKeyPEM(key *rsa.PrivateKey) string {
	der := x509.MarshalPKCS1PrivateKey(key)
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePrivate, Bytes: der}))
}

// ParsePublicKey parses a PEM encoded RSA public key. Both PKIX
// "PUBLIC KEY" and PKCS#1 "RSA PUBLIC KEY" blocks are accepted.
func ParsePublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrUnsupportedKey)
	}

	switch block.Type {
	case pemTypePublic:
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedKey, err)
		}
		pub, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA key", ErrUnsupportedKey)
		}
		return validatePublic(pub)
	case pemTypePublicPKCS1:
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedKey, err)
		}
		return validatePublic(pub)
	}
	return nil, fmt.Errorf("%w: unexpected PEM type %q", ErrUnsupportedKey, block.Type)
}

// ParsePrivateKey parses a PEM encoded RSA private key. Both PKCS#1
// "RSA PRIVATE KEY" and PKCS#8 "PRIVATE KEY" blocks are accepted.
func ParsePrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrUnsupportedKey)
	}

	switch block.Type {
	case pemTypePrivate:
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedKey, err)
		}
		return validatePrivate(key)
	case pemTypePrivatePKCS8:
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedKey, err)
		}
		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA key", ErrUnsupportedKey)
		}
		return validatePrivate(key)
	}
	return nil, fmt.Errorf("%w: unexpected PEM type %q", ErrUnsupportedKey, block.Type)
}

func validatePublic(pub *rsa.PublicKey) (*rsa.PublicKey, error) {
	if pub.N.BitLen() < MinRSAKeyBits {
		return nil, fmt.Errorf("%w: %d bits, need at least %d", ErrKeyTooSmall, pub.N.BitLen(), MinRSAKeyBits)
	}
	return pub, nil
}

func validatePrivate(key *rsa.PrivateKey) (*rsa.PrivateKey, error) {
	if key.N.BitLen() < MinRSAKeyBits {
		return nil, fmt.Errorf("%w: %d bits, need at least %d", ErrKeyTooSmall, key.N.BitLen(), MinRSAKeyBits)
	}
	return key, nil
}

// MatchKeys reports whether pub and priv are halves of the same
// keypair, by comparing their moduli.
func MatchKeys(pub *rsa.PublicKey, priv *rsa.PrivateKey) bool {
	return pub.N.Cmp(priv.N) == 0
}

// Fingerprint returns a SHA-256 fingerprint of the public key in the
// form "SHA256:<hex>", computed over the PKIX DER encoding.
func Fingerprint(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}
	sum := sha256.Sum256(der)
	return "SHA256:" + hex.EncodeToString(sum[:]), nil
}
