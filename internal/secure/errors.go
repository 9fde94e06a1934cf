package secure

import (
	"errors"
	"fmt"
)

var (
	// ErrSealedDataTooShort is returned when an asymmetric-keyed sealed
	// value is shorter than the wrapped-key zone. This is a framing
	// error, not a crypto error.
	ErrSealedDataTooShort = errors.New("sealed data too short")

	// ErrUnsupportedAlgorithm is returned when an algorithm name is not
	// in the supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidArgument is returned for empty plaintext or empty
	// recipient/key-attachment sets at the multi-recipient boundary.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrKeyNotFound is returned when no locally-held private key matches
	// any wrapped-key record in a bundle.
	ErrKeyNotFound = errors.New("no matching private key found")

	// ErrMalformedSecureData is returned for malformed JSON or base64 in
	// a bundle component. Distinct from cryptographic failures so callers
	// can tell a corrupt bundle from a missing key.
	ErrMalformedSecureData = errors.New("malformed secure data")

	// ErrEncryptionFailed is returned when a KeyStore primitive fails
	// during multi-recipient encryption.
	ErrEncryptionFailed = errors.New("secure data encryption failed")

	// ErrDecryptionFailed is returned when a KeyStore primitive fails
	// during multi-recipient decryption.
	ErrDecryptionFailed = errors.New("secure data decryption failed")
)

// ParsingError reports a malformed bundle component.
type ParsingError struct {
	Component string // "secure data", "sealed key record", "sealed value"
	Err       error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParsingError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *ParsingError) Is(target error) bool {
	return target == ErrMalformedSecureData
}

// EncryptionError wraps a KeyStore failure during encryption, preserving
// the original error as cause.
type EncryptionError struct {
	Stage string // "key generation", "iv generation", "body", "key wrap"
	Err   error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encrypt at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool {
	return target == ErrEncryptionFailed
}

// DecryptionError wraps a KeyStore failure during decryption, preserving
// the original error as cause.
type DecryptionError struct {
	Stage string // "key lookup", "key unwrap", "body"
	Err   error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decrypt at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}
