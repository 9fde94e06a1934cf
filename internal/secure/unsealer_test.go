package secure

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func TestUnsealRejectsUnknownAlgorithm(t *testing.T) {
	tests := []struct {
		name      string
		algorithm Algorithm
	}{
		{"empty", Algorithm("")},
		{"des", Algorithm("DES/CBC/PKCS5Padding")},
		{"gcm", Algorithm("AES/GCM/NoPadding")},
		{"case mismatch", Algorithm("aes/cbc/pkcs7padding")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := &fakeKeyStore{}
			u := NewUnsealer(keys, KeyDescriptor{KeyID: "k", Kind: KeyKindSymmetric})

			_, err := u.Unseal(SealedValue{
				KeyID:      "k",
				Algorithm:  tt.algorithm,
				Base64Data: base64.StdEncoding.EncodeToString([]byte("payload")),
			})
			if !errors.Is(err, ErrUnsupportedAlgorithm) {
				t.Fatalf("expected ErrUnsupportedAlgorithm, got %v", err)
			}
			if keys.calls != 0 {
				t.Errorf("expected no KeyStore calls, got %d", keys.calls)
			}
		})
	}
}

func TestUnsealRejectsBadBase64(t *testing.T) {
	keys := &fakeKeyStore{}
	u := NewUnsealer(keys, KeyDescriptor{KeyID: "k", Kind: KeyKindSymmetric})

	_, err := u.Unseal(SealedValue{
		KeyID:      "k",
		Algorithm:  AlgorithmAESCBCPKCS7,
		Base64Data: "not!base64",
	})
	if !errors.Is(err, ErrMalformedSecureData) {
		t.Fatalf("expected ErrMalformedSecureData, got %v", err)
	}

	var parseErr *ParsingError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParsingError, got %T", err)
	}
	if keys.calls != 0 {
		t.Errorf("expected no KeyStore calls, got %d", keys.calls)
	}
}

func TestUnsealSymmetricKey(t *testing.T) {
	ciphertext := []byte{0x01, 0x02, 0x03, 0x04}
	keys := &fakeKeyStore{
		decryptSymID: func(keyID string, got []byte) ([]byte, error) {
			if keyID != "account-key" {
				return nil, errors.New("wrong key id: " + keyID)
			}
			if !bytes.Equal(got, ciphertext) {
				return nil, errors.New("wrong ciphertext")
			}
			return []byte("hello world"), nil
		},
	}
	u := NewUnsealer(keys, KeyDescriptor{KeyID: "account-key", Kind: KeyKindSymmetric})

	got, err := u.Unseal(SealedValue{
		KeyID:      "account-key",
		Algorithm:  AlgorithmAESCBCPKCS7,
		Base64Data: base64.StdEncoding.EncodeToString(ciphertext),
	})
	if err != nil {
		t.Fatalf("Unseal failed: %v", err)
	}
	if got != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", got)
	}
	if keys.calls != 1 {
		t.Errorf("expected exactly 1 KeyStore call, got %d", keys.calls)
	}
}

func TestUnsealAsymmetricEnvelope(t *testing.T) {
	wrappedKey := bytes.Repeat([]byte{0xAA}, RSAKeyBlockSize)
	payload := []byte{0xB0, 0xB1, 0xB2}
	symmetricKey := bytes.Repeat([]byte{0x11}, SymmetricKeySize)

	keys := &fakeKeyStore{
		decryptPrivate: func(keyID string, algorithm Algorithm, ciphertext []byte) ([]byte, error) {
			if keyID != "device-key" {
				return nil, errors.New("wrong key id: " + keyID)
			}
			if algorithm != AlgorithmRSAOAEPSHA1 {
				return nil, errors.New("wrong algorithm: " + string(algorithm))
			}
			if !bytes.Equal(ciphertext, wrappedKey) {
				return nil, errors.New("wrapped-key zone not passed through")
			}
			return symmetricKey, nil
		},
		decryptSym: func(key, ciphertext, iv []byte) ([]byte, error) {
			if !bytes.Equal(key, symmetricKey) {
				return nil, errors.New("unwrapped key not passed through")
			}
			if !bytes.Equal(ciphertext, payload) {
				return nil, errors.New("payload zone not passed through")
			}
			if iv != nil {
				return nil, errors.New("expected nil IV for envelope payload")
			}
			return []byte("alias"), nil
		},
	}
	u := NewUnsealer(keys, KeyDescriptor{KeyID: "device-key", Kind: KeyKindAsymmetric})

	got, err := u.Unseal(SealedValue{
		KeyID:      "device-key",
		Algorithm:  AlgorithmRSAOAEPSHA1,
		Base64Data: base64.StdEncoding.EncodeToString(joinEnvelope(wrappedKey, payload)),
	})
	if err != nil {
		t.Fatalf("Unseal failed: %v", err)
	}
	if got != "alias" {
		t.Errorf("expected %q, got %q", "alias", got)
	}
}

func TestUnsealShortEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{"empty", 0, ErrSealedDataTooShort},
		{"one byte", 1, ErrSealedDataTooShort},
		{"one short of boundary", RSAKeyBlockSize - 1, ErrSealedDataTooShort},
		{"exact boundary", RSAKeyBlockSize, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := &fakeKeyStore{
				decryptPrivate: func(string, Algorithm, []byte) ([]byte, error) {
					return bytes.Repeat([]byte{0x11}, SymmetricKeySize), nil
				},
				decryptSym: func(key, ciphertext, iv []byte) ([]byte, error) {
					if len(ciphertext) != 0 {
						return nil, errors.New("expected empty payload zone")
					}
					return nil, nil
				},
			}
			u := NewUnsealer(keys, KeyDescriptor{KeyID: "k", Kind: KeyKindAsymmetric})

			_, err := u.Unseal(SealedValue{
				KeyID:      "k",
				Algorithm:  AlgorithmRSAOAEPSHA1,
				Base64Data: base64.StdEncoding.EncodeToString(make([]byte, tt.size)),
			})
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if keys.calls != 0 {
				t.Errorf("expected no KeyStore calls for short input, got %d", keys.calls)
			}
		})
	}
}

func TestUnsealBytesChecksBoundAlgorithm(t *testing.T) {
	keys := &fakeKeyStore{}
	u := NewUnsealer(keys, KeyDescriptor{
		KeyID:     "k",
		Kind:      KeyKindAsymmetric,
		Algorithm: Algorithm("RSA/ECB/NoPadding"),
	})

	_, err := u.UnsealBytes(make([]byte, RSAKeyBlockSize))
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
	if keys.calls != 0 {
		t.Errorf("expected no KeyStore calls, got %d", keys.calls)
	}
}

func TestUnsealBytesUsesEnvelopeForSymmetricAlgorithm(t *testing.T) {
	// UnsealBytes always assumes the two-zone layout, even when the bound
	// algorithm is the symmetric name. The wrapped-key zone still goes to
	// the private-key primitive.
	called := false
	keys := &fakeKeyStore{
		decryptPrivate: func(keyID string, algorithm Algorithm, ciphertext []byte) ([]byte, error) {
			called = true
			if algorithm != AlgorithmAESCBCPKCS7 {
				return nil, errors.New("bound algorithm not passed through")
			}
			return bytes.Repeat([]byte{0x22}, SymmetricKeySize), nil
		},
		decryptSym: func(key, ciphertext, iv []byte) ([]byte, error) {
			return []byte("ok"), nil
		},
	}
	u := NewUnsealer(keys, KeyDescriptor{
		KeyID:     "k",
		Kind:      KeyKindAsymmetric,
		Algorithm: AlgorithmAESCBCPKCS7,
	})

	got, err := u.UnsealBytes(make([]byte, RSAKeyBlockSize+8))
	if err != nil {
		t.Fatalf("UnsealBytes failed: %v", err)
	}
	if !called {
		t.Fatal("expected DecryptWithPrivateKey to be called")
	}
	if string(got) != "ok" {
		t.Errorf("expected %q, got %q", "ok", got)
	}
}

func TestUnsealUnknownKeyKind(t *testing.T) {
	keys := &fakeKeyStore{}
	u := NewUnsealer(keys, KeyDescriptor{KeyID: "k", Kind: KeyKind("hybrid")})

	_, err := u.Unseal(SealedValue{
		KeyID:      "k",
		Algorithm:  AlgorithmAESCBCPKCS7,
		Base64Data: base64.StdEncoding.EncodeToString([]byte("x")),
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if keys.calls != 0 {
		t.Errorf("expected no KeyStore calls, got %d", keys.calls)
	}
}
