package sealbox

import (
	"errors"
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
	"github.com/sealbox/sealbox-go/internal/envelope"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrEntropy is returned when the system randomness source fails.
	ErrEntropy = errors.New("entropy source failure")

	// ErrKeyGeneration is returned when RSA key generation fails.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrKeyWrap is returned when sealing cannot wrap the session key.
	ErrKeyWrap = errors.New("key wrap failed")

	// ErrKeyUnwrap is returned when opening cannot recover the session key.
	ErrKeyUnwrap = errors.New("key unwrap failed")

	// ErrInvalidEnvelope is returned when data does not parse as an envelope.
	ErrInvalidEnvelope = errors.New("invalid envelope")

	// ErrAuthenticity is returned when an envelope decrypts to an
	// unrecognizable message.
	ErrAuthenticity = errors.New("message authentication failed")

	// ErrSigning is returned when producing a signature fails.
	ErrSigning = errors.New("signing failed")

	// ErrVerification is returned when a signature cannot be checked at all.
	ErrVerification = errors.New("signature verification failed")
)

// SealboxError is implemented by all library errors.
type SealboxError interface {
	error
	SealboxError() // marker method
}

// EntropyError represents a failure of the system randomness source.
// The operation is abandoned outright; no weaker source is tried.
type EntropyError struct {
	Err error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("entropy source failure: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EntropyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EntropyError) Is(target error) bool {
	return target == ErrEntropy
}

// SealboxError implements the SealboxError interface.
func (e *EntropyError) SealboxError() {}

// KeyGenerationError represents an RSA key generation failure.
type KeyGenerationError struct {
	Err error
}

func (e *KeyGenerationError) Error() string {
	return fmt.Sprintf("key generation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyGenerationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyGenerationError) Is(target error) bool {
	return target == ErrKeyGeneration
}

// SealboxError implements the SealboxError interface.
func (e *KeyGenerationError) SealboxError() {}

// KeyWrapError represents a sealing failure: the recipient public key
// could not be parsed, or could not wrap the session key.
type KeyWrapError struct {
	Err error
}

func (e *KeyWrapError) Error() string {
	return fmt.Sprintf("key wrap failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyWrapError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyWrapError) Is(target error) bool {
	return target == ErrKeyWrap
}

// SealboxError implements the SealboxError interface.
func (e *KeyWrapError) SealboxError() {}

// KeyUnwrapError represents an opening failure at the key stage: the
// private key could not be parsed, the envelope holds fewer bytes than
// the key's modulus size, or the wrapped session key did not decrypt.
type KeyUnwrapError struct {
	Err error
}

func (e *KeyUnwrapError) Error() string {
	return fmt.Sprintf("key unwrap failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyUnwrapError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyUnwrapError) Is(target error) bool {
	return target == ErrKeyUnwrap
}

// SealboxError implements the SealboxError interface.
func (e *KeyUnwrapError) SealboxError() {}

// FormatError represents data that does not parse as an envelope: the
// marker is missing, a fixed section is cut short, or the ciphertext
// is not block aligned. None of these checks require a key.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid envelope: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidEnvelope
}

// SealboxError implements the SealboxError interface.
func (e *FormatError) SealboxError() {}

// AuthenticityError represents an envelope that parsed but did not
// decrypt to a recognizable message: the payload was modified or the
// session key is wrong. Padding failures and recognition failures are
// reported identically, and no underlying cause is exposed.
type AuthenticityError struct{}

func (e *AuthenticityError) Error() string {
	return "message authentication failed"
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticityError) Is(target error) bool {
	return target == ErrAuthenticity
}

// SealboxError implements the SealboxError interface.
func (e *AuthenticityError) SealboxError() {}

// SigningError represents a signing failure: the private key could not
// be parsed or the signature could not be produced.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SigningError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SigningError) Is(target error) bool {
	return target == ErrSigning
}

// SealboxError implements the SealboxError interface.
func (e *SigningError) SealboxError() {}

// VerificationError represents a verifier that could not run at all,
// almost always an unusable public key. A signature that simply does
// not verify is not an error; Verify reports it as false.
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("signature verification failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *VerificationError) Is(target error) bool {
	return target == ErrVerification
}

// SealboxError implements the SealboxError interface.
func (e *VerificationError) SealboxError() {}

// wrapSealError converts internal sealing errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapSealError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, crypto.ErrEntropy) {
		return &EntropyError{Err: err}
	}
	return &KeyWrapError{Err: err}
}

// wrapOpenError converts internal opening errors to public errors.
// Format errors identify the stage that failed; everything decryption
// related collapses into a bare AuthenticityError.
func wrapOpenError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, envelope.ErrNoMarker),
		errors.Is(err, envelope.ErrTruncated),
		errors.Is(err, crypto.ErrCiphertextAlignment):
		return &FormatError{Err: err}
	case errors.Is(err, crypto.ErrWrappedKeyLength),
		errors.Is(err, crypto.ErrUnwrapFailed),
		errors.Is(err, crypto.ErrSessionKeyLength):
		return &KeyUnwrapError{Err: err}
	default:
		return &AuthenticityError{}
	}
}
