package secure

import (
	"encoding/json"
	"fmt"
)

// Recipient identifies one message recipient's public key.
type Recipient struct {
	// KeyID is the identifier of the recipient's key pair.
	KeyID string
	// PublicKey is the RSA public key in the named wire format.
	PublicKey []byte
	// Format is the public key encoding.
	Format KeyFormat
}

// MessageCrypto encrypts a message body exactly once yet lets any of
// several recipients, each holding a distinct key pair, independently
// decrypt it. The author never needs the recipients' private material.
type MessageCrypto struct {
	keys KeyStore
}

// NewMessageCrypto returns a MessageCrypto backed by the given KeyStore.
func NewMessageCrypto(keys KeyStore) *MessageCrypto {
	return &MessageCrypto{keys: keys}
}

// Encrypt encrypts plaintext with a fresh symmetric key and IV, then
// wraps that key separately for every distinct recipient key id.
// Duplicate key ids are dropped; the first occurrence wins. Key
// attachments are numbered sequentially from 1.
func (m *MessageCrypto) Encrypt(plaintext []byte, recipients []Recipient) (*SecureBundle, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrInvalidArgument)
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: no recipients", ErrInvalidArgument)
	}

	key, err := m.keys.GenerateSymmetricKey()
	if err != nil {
		return nil, &EncryptionError{Stage: "key generation", Err: err}
	}
	iv, err := m.keys.RandomBytes(IVSize)
	if err != nil {
		return nil, &EncryptionError{Stage: "iv generation", Err: err}
	}

	encryptedBody, err := m.keys.EncryptWithSymmetricKey(key, plaintext, iv)
	if err != nil {
		return nil, &EncryptionError{Stage: "body", Err: err}
	}

	bodyJSON, err := json.Marshal(SecureData{EncryptedBody: encryptedBody, InitVector: iv})
	if err != nil {
		return nil, &ParsingError{Component: "secure data", Err: err}
	}

	bundle := &SecureBundle{
		BodyAttachment: Attachment{
			Filename:  BodyAttachmentName,
			ContentID: BodyAttachmentContentID,
			MimeType:  BundleMimeType,
			Data:      bodyJSON,
		},
	}

	for i, r := range dedupeRecipients(recipients) {
		wrapped, err := m.keys.EncryptWithPublicKey(r.PublicKey, r.Format, AlgorithmRSAOAEPSHA1, key)
		if err != nil {
			return nil, &EncryptionError{Stage: "key wrap", Err: err}
		}

		recordJSON, err := json.Marshal(SealedKeyRecord{
			RecipientKeyID: r.KeyID,
			EncryptedKey:   wrapped,
			Algorithm:      AlgorithmRSAOAEPSHA1,
		})
		if err != nil {
			return nil, &ParsingError{Component: "sealed key record", Err: err}
		}

		bundle.KeyAttachments = append(bundle.KeyAttachments, Attachment{
			Filename:  fmt.Sprintf("%s%d", KeyAttachmentName, i+1),
			ContentID: KeyAttachmentContentID,
			MimeType:  BundleMimeType,
			Data:      recordJSON,
		})
	}

	return bundle, nil
}

// Decrypt recovers the plaintext from a bundle by locating the wrapped
// key whose recipient key id matches a private key held in the KeyStore.
func (m *MessageCrypto) Decrypt(bundle *SecureBundle) ([]byte, error) {
	if bundle == nil || len(bundle.BodyAttachment.Data) == 0 {
		return nil, fmt.Errorf("%w: empty body attachment", ErrInvalidArgument)
	}
	if len(bundle.KeyAttachments) == 0 {
		return nil, fmt.Errorf("%w: no key attachments", ErrInvalidArgument)
	}

	body, err := parseSecureData(bundle.BodyAttachment.Data)
	if err != nil {
		return nil, err
	}

	record, err := m.findLocalKeyRecord(bundle.KeyAttachments)
	if err != nil {
		return nil, err
	}

	key, err := m.keys.DecryptWithPrivateKey(record.RecipientKeyID, record.Algorithm, record.EncryptedKey)
	if err != nil {
		return nil, &DecryptionError{Stage: "key unwrap", Err: err}
	}

	plaintext, err := m.keys.DecryptWithSymmetricKey(key, body.EncryptedBody, body.InitVector)
	if err != nil {
		return nil, &DecryptionError{Stage: "body", Err: err}
	}

	return plaintext, nil
}

// findLocalKeyRecord returns the first wrapped-key record whose recipient
// key id has a private key in the store. Attachment order decides which
// record wins if a device ever holds more than one matching private key;
// callers must not depend on a specific recipient being tried first.
func (m *MessageCrypto) findLocalKeyRecord(attachments []Attachment) (*SealedKeyRecord, error) {
	for _, a := range attachments {
		record, err := parseSealedKeyRecord(a.Data)
		if err != nil {
			return nil, err
		}

		ok, err := m.keys.PrivateKeyExists(record.RecipientKeyID)
		if err != nil {
			return nil, &DecryptionError{Stage: "key lookup", Err: err}
		}
		if ok {
			return record, nil
		}
	}
	return nil, ErrKeyNotFound
}

// dedupeRecipients drops recipients whose key id was already seen,
// preserving input order. Wrapping the same key twice for one id is
// wasted work.
func dedupeRecipients(in []Recipient) []Recipient {
	seen := make(map[string]struct{}, len(in))
	out := make([]Recipient, 0, len(in))
	for _, r := range in {
		if _, ok := seen[r.KeyID]; ok {
			continue
		}
		seen[r.KeyID] = struct{}{}
		out = append(out, r)
	}
	return out
}
