package secure

import "encoding/base64"

// Sealer produces ciphertext for attribute values stored by the service.
// It always uses a named symmetric key: the two-zone asymmetric envelope
// appears only on the message path, never in generic attribute sealing.
type Sealer struct {
	keys KeyStore
}

// NewSealer returns a Sealer backed by the given KeyStore.
func NewSealer(keys KeyStore) *Sealer {
	return &Sealer{keys: keys}
}

// Seal encrypts plaintext under the named symmetric key.
func (s *Sealer) Seal(keyID string, plaintext []byte) ([]byte, error) {
	return s.keys.EncryptWithSymmetricKeyID(keyID, plaintext)
}

// Unseal is the exact inverse of Seal.
func (s *Sealer) Unseal(keyID string, ciphertext []byte) ([]byte, error) {
	return s.keys.DecryptWithSymmetricKeyID(keyID, ciphertext)
}

// SealString seals a string attribute and returns the complete stored
// form, ready to hand to the transport.
func (s *Sealer) SealString(keyID, plaintext string) (SealedValue, error) {
	sealed, err := s.Seal(keyID, []byte(plaintext))
	if err != nil {
		return SealedValue{}, err
	}
	return SealedValue{
		KeyID:         keyID,
		Algorithm:     AlgorithmAESCBCPKCS7,
		PlainTextType: PlainTextTypeString,
		Base64Data:    base64.StdEncoding.EncodeToString(sealed),
	}, nil
}
