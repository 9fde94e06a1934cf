package secure

import (
	"encoding/base64"
	"encoding/json"
)

// PlainTextType hints at how the unsealed bytes should be interpreted.
type PlainTextType string

const (
	// PlainTextTypeString marks plaintext that is UTF-8 text.
	PlainTextTypeString PlainTextType = "string"

	// PlainTextTypeJSON marks plaintext that is a JSON document.
	PlainTextTypeJSON PlainTextType = "json"
)

// SealedValue is the stored form of a single sealed attribute value.
// It is created at write time, immutable, and stored opaquely by the
// transport. The JSON field names are part of the wire format.
type SealedValue struct {
	// KeyID names the key the value was sealed under.
	KeyID string `json:"keyId"`
	// Algorithm is the cipher/padding name used to seal the value.
	Algorithm Algorithm `json:"algorithm"`
	// PlainTextType hints at the plaintext interpretation.
	PlainTextType PlainTextType `json:"plainTextType"`
	// Base64Data is the ciphertext in standard base64.
	Base64Data string `json:"base64EncodedSealedData"`
}

// Base64Bytes marshals byte slices as standard base64 with padding
// (RFC 4648 §4), the encoding used for all bundle ciphertext fields.
type Base64Bytes []byte

// MarshalJSON implements json.Marshaler.
func (b Base64Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Base64Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*b = nil
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
