package secure

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// encryptFake returns a fakeKeyStore whose encryption primitives are
// deterministic: the wrapped key embeds the public key bytes so tests
// can tell which recipient a record was wrapped for.
func encryptFake() *fakeKeyStore {
	return &fakeKeyStore{
		generateKey: func() ([]byte, error) {
			return bytes.Repeat([]byte{0x42}, SymmetricKeySize), nil
		},
		randomBytes: func(n int) ([]byte, error) {
			return bytes.Repeat([]byte{0x24}, n), nil
		},
		encryptSym: func(key, plaintext, iv []byte) ([]byte, error) {
			return append([]byte("ct:"), plaintext...), nil
		},
		encryptPublic: func(publicKey []byte, format KeyFormat, algorithm Algorithm, plaintext []byte) ([]byte, error) {
			if algorithm != AlgorithmRSAOAEPSHA1 {
				return nil, errors.New("key wrap must use OAEP: got " + string(algorithm))
			}
			return append([]byte("wrap:"), publicKey...), nil
		},
	}
}

func TestEncryptRejectsEmptyInputs(t *testing.T) {
	recipient := Recipient{KeyID: "a", PublicKey: []byte("pk-a"), Format: KeyFormatRSAPublicKey}

	tests := []struct {
		name       string
		plaintext  []byte
		recipients []Recipient
	}{
		{"empty plaintext", nil, []Recipient{recipient}},
		{"no recipients", []byte("body"), nil},
		{"both empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := &fakeKeyStore{}
			m := NewMessageCrypto(keys)

			_, err := m.Encrypt(tt.plaintext, tt.recipients)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if keys.calls != 0 {
				t.Errorf("expected no KeyStore calls, got %d", keys.calls)
			}
		})
	}
}

func TestEncryptFanOut(t *testing.T) {
	keys := encryptFake()
	m := NewMessageCrypto(keys)

	recipients := []Recipient{
		{KeyID: "key-a", PublicKey: []byte("pk-a"), Format: KeyFormatRSAPublicKey},
		{KeyID: "key-b", PublicKey: []byte("pk-b"), Format: KeyFormatSPKI},
		{KeyID: "key-c", PublicKey: []byte("pk-c"), Format: KeyFormatRSAPublicKey},
	}

	bundle, err := m.Encrypt([]byte("secret body"), recipients)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if got := len(bundle.KeyAttachments); got != 3 {
		t.Fatalf("expected 3 key attachments, got %d", got)
	}

	body := bundle.BodyAttachment
	if body.Filename != BodyAttachmentName {
		t.Errorf("body filename = %q, want %q", body.Filename, BodyAttachmentName)
	}
	if body.ContentID != BodyAttachmentContentID {
		t.Errorf("body content id = %q, want %q", body.ContentID, BodyAttachmentContentID)
	}
	if body.MimeType != BundleMimeType {
		t.Errorf("body mime type = %q, want %q", body.MimeType, BundleMimeType)
	}

	var sd SecureData
	if err := json.Unmarshal(body.Data, &sd); err != nil {
		t.Fatalf("body attachment is not SecureData JSON: %v", err)
	}
	if !bytes.Equal(sd.EncryptedBody, []byte("ct:secret body")) {
		t.Errorf("unexpected encrypted body %q", sd.EncryptedBody)
	}
	if len(sd.InitVector) != IVSize {
		t.Errorf("IV length = %d, want %d", len(sd.InitVector), IVSize)
	}

	for i, a := range bundle.KeyAttachments {
		want := fmt.Sprintf("%s%d", KeyAttachmentName, i+1)
		if a.Filename != want {
			t.Errorf("key attachment %d filename = %q, want %q", i, a.Filename, want)
		}
		if a.ContentID != KeyAttachmentContentID {
			t.Errorf("key attachment %d content id = %q, want %q", i, a.ContentID, KeyAttachmentContentID)
		}

		var record SealedKeyRecord
		if err := json.Unmarshal(a.Data, &record); err != nil {
			t.Fatalf("key attachment %d is not SealedKeyRecord JSON: %v", i, err)
		}
		if record.RecipientKeyID != recipients[i].KeyID {
			t.Errorf("record %d key id = %q, want %q", i, record.RecipientKeyID, recipients[i].KeyID)
		}
		if record.Algorithm != AlgorithmRSAOAEPSHA1 {
			t.Errorf("record %d algorithm = %q, want OAEP", i, record.Algorithm)
		}
		wantWrapped := append([]byte("wrap:"), recipients[i].PublicKey...)
		if !bytes.Equal(record.EncryptedKey, wantWrapped) {
			t.Errorf("record %d wrapped with wrong public key", i)
		}
	}
}

func TestEncryptDeduplicatesKeyIDs(t *testing.T) {
	keys := encryptFake()
	m := NewMessageCrypto(keys)

	bundle, err := m.Encrypt([]byte("body"), []Recipient{
		{KeyID: "key-a", PublicKey: []byte("pk-a1"), Format: KeyFormatRSAPublicKey},
		{KeyID: "key-b", PublicKey: []byte("pk-b"), Format: KeyFormatRSAPublicKey},
		{KeyID: "key-a", PublicKey: []byte("pk-a2"), Format: KeyFormatRSAPublicKey},
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if got := len(bundle.KeyAttachments); got != 2 {
		t.Fatalf("expected 2 key attachments after dedup, got %d", got)
	}

	// First occurrence wins: key-a must be wrapped with pk-a1.
	var record SealedKeyRecord
	if err := json.Unmarshal(bundle.KeyAttachments[0].Data, &record); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if record.RecipientKeyID != "key-a" {
		t.Errorf("first record key id = %q, want key-a", record.RecipientKeyID)
	}
	if !bytes.Equal(record.EncryptedKey, []byte("wrap:pk-a1")) {
		t.Errorf("first occurrence did not win: got %q", record.EncryptedKey)
	}
}

func TestEncryptWrapsKeyStoreFailures(t *testing.T) {
	boom := errors.New("rng exhausted")

	tests := []struct {
		name    string
		corrupt func(*fakeKeyStore)
	}{
		{"key generation", func(f *fakeKeyStore) {
			f.generateKey = func() ([]byte, error) { return nil, boom }
		}},
		{"iv generation", func(f *fakeKeyStore) {
			f.randomBytes = func(int) ([]byte, error) { return nil, boom }
		}},
		{"body encryption", func(f *fakeKeyStore) {
			f.encryptSym = func(_, _, _ []byte) ([]byte, error) { return nil, boom }
		}},
		{"key wrap", func(f *fakeKeyStore) {
			f.encryptPublic = func(_ []byte, _ KeyFormat, _ Algorithm, _ []byte) ([]byte, error) { return nil, boom }
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := encryptFake()
			tt.corrupt(keys)
			m := NewMessageCrypto(keys)

			_, err := m.Encrypt([]byte("body"), []Recipient{
				{KeyID: "a", PublicKey: []byte("pk"), Format: KeyFormatRSAPublicKey},
			})
			if !errors.Is(err, ErrEncryptionFailed) {
				t.Fatalf("expected ErrEncryptionFailed, got %v", err)
			}
			if !errors.Is(err, boom) {
				t.Errorf("cause not preserved: %v", err)
			}
		})
	}
}

// decryptBundle builds a well-formed bundle for decrypt tests.
func decryptBundle(t *testing.T, keyIDs ...string) *SecureBundle {
	t.Helper()

	bodyJSON, err := json.Marshal(SecureData{
		EncryptedBody: []byte("ct:body"),
		InitVector:    bytes.Repeat([]byte{0x24}, IVSize),
	})
	if err != nil {
		t.Fatal(err)
	}

	bundle := &SecureBundle{
		BodyAttachment: Attachment{
			Filename:  BodyAttachmentName,
			ContentID: BodyAttachmentContentID,
			MimeType:  BundleMimeType,
			Data:      bodyJSON,
		},
	}
	for i, id := range keyIDs {
		recordJSON, err := json.Marshal(SealedKeyRecord{
			RecipientKeyID: id,
			EncryptedKey:   []byte("wrapped-for-" + id),
			Algorithm:      AlgorithmRSAOAEPSHA1,
		})
		if err != nil {
			t.Fatal(err)
		}
		bundle.KeyAttachments = append(bundle.KeyAttachments, Attachment{
			Filename:  fmt.Sprintf("%s%d", KeyAttachmentName, i+1),
			ContentID: KeyAttachmentContentID,
			MimeType:  BundleMimeType,
			Data:      recordJSON,
		})
	}
	return bundle
}

func TestDecryptRejectsEmptyBundle(t *testing.T) {
	tests := []struct {
		name   string
		bundle *SecureBundle
	}{
		{"nil bundle", nil},
		{"empty body", &SecureBundle{KeyAttachments: []Attachment{{Data: []byte("{}")}}}},
		{"no key attachments", &SecureBundle{BodyAttachment: Attachment{Data: []byte("{}")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := &fakeKeyStore{}
			m := NewMessageCrypto(keys)

			_, err := m.Decrypt(tt.bundle)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if keys.calls != 0 {
				t.Errorf("expected no KeyStore calls, got %d", keys.calls)
			}
		})
	}
}

func TestDecryptScansForLocalKey(t *testing.T) {
	bundle := decryptBundle(t, "key-a", "key-b", "key-c")

	var unwrappedID string
	keys := &fakeKeyStore{
		privateExists: func(keyID string) (bool, error) {
			return keyID == "key-b", nil
		},
		decryptPrivate: func(keyID string, algorithm Algorithm, ciphertext []byte) ([]byte, error) {
			unwrappedID = keyID
			if !bytes.Equal(ciphertext, []byte("wrapped-for-"+keyID)) {
				return nil, errors.New("wrong record selected")
			}
			return bytes.Repeat([]byte{0x42}, SymmetricKeySize), nil
		},
		decryptSym: func(key, ciphertext, iv []byte) ([]byte, error) {
			if !bytes.Equal(ciphertext, []byte("ct:body")) {
				return nil, errors.New("wrong body ciphertext")
			}
			if !bytes.Equal(iv, bytes.Repeat([]byte{0x24}, IVSize)) {
				return nil, errors.New("IV from SecureData not used")
			}
			return []byte("body"), nil
		},
	}
	m := NewMessageCrypto(keys)

	got, err := m.Decrypt(bundle)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if string(got) != "body" {
		t.Errorf("expected %q, got %q", "body", got)
	}
	if unwrappedID != "key-b" {
		t.Errorf("unwrapped with %q, want key-b", unwrappedID)
	}
}

func TestDecryptNoMatchingKey(t *testing.T) {
	bundle := decryptBundle(t, "key-a", "key-b")

	keys := &fakeKeyStore{
		privateExists: func(string) (bool, error) { return false, nil },
	}
	m := NewMessageCrypto(keys)

	_, err := m.Decrypt(bundle)
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestDecryptMalformedComponents(t *testing.T) {
	goodRecord, err := json.Marshal(SealedKeyRecord{
		RecipientKeyID: "key-a",
		EncryptedKey:   []byte("wrapped"),
		Algorithm:      AlgorithmRSAOAEPSHA1,
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		bundle *SecureBundle
	}{
		{
			"body not JSON",
			&SecureBundle{
				BodyAttachment: Attachment{Data: []byte("not json")},
				KeyAttachments: []Attachment{{Data: goodRecord}},
			},
		},
		{
			"key record not JSON",
			&SecureBundle{
				BodyAttachment: Attachment{Data: []byte(`{"encryptedData":"","initVectorKeyID":""}`)},
				KeyAttachments: []Attachment{{Data: []byte("{broken")}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMessageCrypto(&fakeKeyStore{
				privateExists: func(string) (bool, error) { return true, nil },
			})

			_, err := m.Decrypt(tt.bundle)
			if !errors.Is(err, ErrMalformedSecureData) {
				t.Fatalf("expected ErrMalformedSecureData, got %v", err)
			}
		})
	}
}

func TestDecryptWrapsKeyStoreFailures(t *testing.T) {
	boom := errors.New("hsm offline")
	bundle := decryptBundle(t, "key-a")

	tests := []struct {
		name string
		keys *fakeKeyStore
	}{
		{"key lookup", &fakeKeyStore{
			privateExists: func(string) (bool, error) { return false, boom },
		}},
		{"key unwrap", &fakeKeyStore{
			privateExists:  func(string) (bool, error) { return true, nil },
			decryptPrivate: func(string, Algorithm, []byte) ([]byte, error) { return nil, boom },
		}},
		{"body", &fakeKeyStore{
			privateExists: func(string) (bool, error) { return true, nil },
			decryptPrivate: func(string, Algorithm, []byte) ([]byte, error) {
				return bytes.Repeat([]byte{0x42}, SymmetricKeySize), nil
			},
			decryptSym: func(_, _, _ []byte) ([]byte, error) { return nil, boom },
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMessageCrypto(tt.keys)

			_, err := m.Decrypt(bundle)
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Fatalf("expected ErrDecryptionFailed, got %v", err)
			}
			if !errors.Is(err, boom) {
				t.Errorf("cause not preserved: %v", err)
			}
		})
	}
}
