package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")
	// ErrAddressNotFound indicates the requested email address does not exist.
	ErrAddressNotFound = errors.New("email address not found")
	// ErrMessageNotFound indicates the requested message does not exist.
	ErrMessageNotFound = errors.New("message not found")
	// ErrFolderNotFound indicates the requested folder does not exist.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrDraftNotFound indicates the requested draft does not exist.
	ErrDraftNotFound = errors.New("draft not found")
	// ErrRecipientKeyNotFound indicates no public key is registered for
	// the requested recipient address.
	ErrRecipientKeyNotFound = errors.New("recipient public key not found")
	// ErrAddressUnavailable indicates the address is already provisioned.
	ErrAddressUnavailable = errors.New("email address unavailable")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown ResourceType = ""
	// ResourceAddress indicates the error relates to an email address.
	ResourceAddress ResourceType = "address"
	// ResourceMessage indicates the error relates to a message.
	ResourceMessage ResourceType = "message"
	// ResourceFolder indicates the error relates to a folder.
	ResourceFolder ResourceType = "folder"
	// ResourceDraft indicates the error relates to a draft.
	ResourceDraft ResourceType = "draft"
	// ResourceKey indicates the error relates to a recipient public key.
	ResourceKey ResourceType = "key"
)

// APIError represents an HTTP error from the CipherPost API.
type APIError struct {
	StatusCode   int
	Message      string
	RequestID    string
	ResourceType ResourceType
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

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		switch e.ResourceType {
		case ResourceAddress:
			return target == ErrAddressNotFound
		case ResourceMessage:
			return target == ErrMessageNotFound
		case ResourceFolder:
			return target == ErrFolderNotFound
		case ResourceDraft:
			return target == ErrDraftNotFound
		case ResourceKey:
			return target == ErrRecipientKeyNotFound
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

// WithResourceType returns a copy of the error with the resource type
// set. If the error is not an *APIError, it is returned unchanged.
func WithResourceType(err error, rt ResourceType) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			Message:      apiErr.Message,
			RequestID:    apiErr.RequestID,
			ResourceType: rt,
		}
	}
	return err
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
