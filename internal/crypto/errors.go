package crypto

import "errors"

var (
	// ErrEntropy is returned when the system random source fails.
	ErrEntropy = errors.New("entropy source failure")

	// ErrUnsupportedKey is returned when key material does not parse as
	// an RSA key of the expected PEM encoding.
	ErrUnsupportedKey = errors.New("unsupported key")

	// ErrKeyTooSmall is returned when an RSA modulus is below the
	// accepted minimum.
	ErrKeyTooSmall = errors.New("RSA key too small")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when the IV size is invalid.
	ErrInvalidIVSize = errors.New("invalid IV size")

	// ErrCiphertextAlignment is returned when a ciphertext length is not
	// a positive multiple of the block size.
	ErrCiphertextAlignment = errors.New("ciphertext not block aligned")

	// ErrInvalidPadding is returned when block padding does not verify
	// after decryption.
	ErrInvalidPadding = errors.New("invalid block padding")

	// ErrWrapFailed is returned when session key wrapping fails.
	ErrWrapFailed = errors.New("session key wrap failed")

	// ErrUnwrapFailed is returned when session key unwrapping fails.
	ErrUnwrapFailed = errors.New("session key unwrap failed")

	// ErrWrappedKeyLength is returned when a wrapped key blob does not
	// match the modulus size of the unwrapping key.
	ErrWrappedKeyLength = errors.New("invalid wrapped key length")

	// ErrSessionKeyLength is returned when an unwrapped session key does
	// not have the expected size.
	ErrSessionKeyLength = errors.New("invalid session key length")

	// ErrSignatureLength is returned when a produced signature does not
	// match the modulus size of the signing key.
	ErrSignatureLength = errors.New("invalid signature length")
)
