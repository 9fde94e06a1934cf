package cipherpost

import (
	"errors"
	"fmt"

	"github.com/cipherpost/client-go/internal/api"
	"github.com/cipherpost/client-go/internal/secure"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrAddressNotFound is returned when an email address is not found.
	ErrAddressNotFound = errors.New("email address not found")

	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")

	// ErrFolderNotFound is returned when a folder is not found.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrDraftNotFound is returned when a draft is not found.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrAddressUnavailable is returned when provisioning an address that
	// is already taken.
	ErrAddressUnavailable = errors.New("email address unavailable")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidArgument is returned for empty plaintext or empty
	// recipient sets at the encryption boundary.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedAlgorithm is returned when a sealed value names an
	// algorithm outside the supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported sealing algorithm")

	// ErrSealedDataTooShort is returned when a sealed envelope is shorter
	// than its fixed wrapped-key zone.
	ErrSealedDataTooShort = errors.New("sealed data too short")

	// ErrKeyNotFound is returned when no locally-held private key can
	// decrypt a message.
	ErrKeyNotFound = errors.New("no matching private key found")

	// ErrMalformedSecureData is returned when a message bundle fails to
	// parse, as opposed to failing to decrypt.
	ErrMalformedSecureData = errors.New("malformed secure data")

	// ErrEncryptionFailed is returned when message encryption fails.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned when message decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// CipherPostError is implemented by all SDK errors.
type CipherPostError interface {
	error
	CipherPostError() // marker method
}

// APIError represents an HTTP error from the CipherPost API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string

	resourceType api.ResourceType
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// CipherPostError implements the CipherPostError interface.
func (e *APIError) CipherPostError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		switch e.resourceType {
		case api.ResourceAddress:
			return target == ErrAddressNotFound
		case api.ResourceMessage:
			return target == ErrMessageNotFound
		case api.ResourceFolder:
			return target == ErrFolderNotFound
		case api.ResourceDraft:
			return target == ErrDraftNotFound
		default:
			return target == ErrAddressNotFound || target == ErrMessageNotFound
		}
	case 409:
		return target == ErrAddressUnavailable
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// CipherPostError implements the CipherPostError interface.
func (e *NetworkError) CipherPostError() {}

// SealingError wraps a failure from the envelope-encryption core. The
// original error is preserved as cause; errors.Is works against the
// public sentinels above regardless of which primitive failed.
type SealingError struct {
	Op  string // "seal alias", "unseal folder", "encrypt message", ...
	Err error
}

func (e *SealingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *SealingError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SealingError) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return errors.Is(e.Err, secure.ErrInvalidArgument)
	case ErrUnsupportedAlgorithm:
		return errors.Is(e.Err, secure.ErrUnsupportedAlgorithm)
	case ErrSealedDataTooShort:
		return errors.Is(e.Err, secure.ErrSealedDataTooShort)
	case ErrKeyNotFound:
		return errors.Is(e.Err, secure.ErrKeyNotFound)
	case ErrMalformedSecureData:
		return errors.Is(e.Err, secure.ErrMalformedSecureData)
	case ErrEncryptionFailed:
		return errors.Is(e.Err, secure.ErrEncryptionFailed)
	case ErrDecryptionFailed:
		return errors.Is(e.Err, secure.ErrDecryptionFailed)
	}
	return false
}

// CipherPostError implements the CipherPostError interface.
func (e *SealingError) CipherPostError() {}

// wrapError converts internal API errors to public errors so that
// errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			Message:      apiErr.Message,
			RequestID:    apiErr.RequestID,
			resourceType: apiErr.ResourceType,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}

// wrapCryptoError converts internal crypto errors to public errors with
// the operation attached for diagnostics.
func wrapCryptoError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &SealingError{Op: op, Err: err}
}
