package cipherpost

import (
	"errors"
	"testing"

	"github.com/cipherpost/client-go/internal/api"
	"github.com/cipherpost/client-go/internal/secure"
)

func TestSealingErrorSentinelMatching(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		target error
	}{
		{"invalid argument", secure.ErrInvalidArgument, ErrInvalidArgument},
		{"unsupported algorithm", secure.ErrUnsupportedAlgorithm, ErrUnsupportedAlgorithm},
		{"sealed data too short", secure.ErrSealedDataTooShort, ErrSealedDataTooShort},
		{"key not found", secure.ErrKeyNotFound, ErrKeyNotFound},
		{"malformed secure data", &secure.ParsingError{Component: "secure data", Err: errors.New("bad json")}, ErrMalformedSecureData},
		{"encryption failed", &secure.EncryptionError{Stage: "body", Err: errors.New("boom")}, ErrEncryptionFailed},
		{"decryption failed", &secure.DecryptionError{Stage: "body", Err: errors.New("boom")}, ErrDecryptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapCryptoError("test op", tt.cause)
			if !errors.Is(err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.target)
			}

			var sealErr *SealingError
			if !errors.As(err, &sealErr) {
				t.Fatalf("expected *SealingError, got %T", err)
			}
			if sealErr.Op != "test op" {
				t.Errorf("op = %q", sealErr.Op)
			}
		})
	}
}

func TestSealingErrorDoesNotCrossMatch(t *testing.T) {
	err := wrapCryptoError("test op", secure.ErrKeyNotFound)
	for _, target := range []error{ErrUnsupportedAlgorithm, ErrEncryptionFailed, ErrMalformedSecureData} {
		if errors.Is(err, target) {
			t.Errorf("key-not-found error matched %v", target)
		}
	}
}

func TestSealingErrorPreservesCause(t *testing.T) {
	cause := errors.New("hsm offline")
	err := wrapCryptoError("decrypt message", &secure.DecryptionError{Stage: "key unwrap", Err: cause})
	if !errors.Is(err, cause) {
		t.Errorf("cause not reachable through error chain: %v", err)
	}
}

func TestWrapErrorConvertsAPIErrors(t *testing.T) {
	err := wrapError(api.WithResourceType(&api.APIError{StatusCode: 404, Message: "gone"}, api.ResourceFolder))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected public *APIError, got %T", err)
	}
	if !errors.Is(err, ErrFolderNotFound) {
		t.Errorf("expected ErrFolderNotFound, got %v", err)
	}

	var cpe CipherPostError
	if !errors.As(err, &cpe) {
		t.Error("public APIError must implement CipherPostError")
	}
}

func TestWrapErrorConvertsNetworkErrors(t *testing.T) {
	cause := errors.New("connection refused")
	err := wrapError(&api.NetworkError{Err: cause, URL: "https://api.cipherpost.com", Attempt: 3})

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected public *NetworkError, got %T", err)
	}
	if netErr.Attempt != 3 {
		t.Errorf("attempt = %d", netErr.Attempt)
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause not preserved: %v", err)
	}
}

func TestWrapErrorPassesThroughNil(t *testing.T) {
	if wrapError(nil) != nil {
		t.Error("wrapError(nil) != nil")
	}
	if wrapCryptoError("op", nil) != nil {
		t.Error("wrapCryptoError(op, nil) != nil")
	}
}
