package secure

import "encoding/json"

// Attachment naming for the secure-message bundle. These values are part
// of the wire format: stored messages reference bundle components by
// these names and content ids.
const (
	// BundleMimeType is the MIME type of every bundle attachment.
	BundleMimeType = "text/plain"

	// BodyAttachmentName is the filename of the encrypted body attachment.
	BodyAttachmentName = "securebody"

	// BodyAttachmentContentID identifies the body attachment.
	BodyAttachmentContentID = "securebody@cipherpost.com"

	// KeyAttachmentName is the filename stem of wrapped-key attachments.
	// Each attachment is numbered from 1 to disambiguate identical names.
	KeyAttachmentName = "securekey"

	// KeyAttachmentContentID identifies wrapped-key attachments.
	KeyAttachmentContentID = "securekeyexchange@cipherpost.com"
)

// SecureData is the encrypted message-body record: the CBC ciphertext and
// the IV it was encrypted with. One instance exists per encrypted message.
// The JSON field names are fixed for interoperability with stored data.
type SecureData struct {
	EncryptedBody Base64Bytes `json:"encryptedData"`
	InitVector    Base64Bytes `json:"initVectorKeyID"`
}

// SealedKeyRecord wraps the per-message symmetric key for one recipient.
// One instance exists per distinct recipient key id.
type SealedKeyRecord struct {
	RecipientKeyID string      `json:"publicKeyId"`
	EncryptedKey   Base64Bytes `json:"encryptedKey"`
	Algorithm      Algorithm   `json:"algorithm"`
}

// Attachment is the transport-level carrier for bundle components: a
// named, typed blob. The crypto layer only cares about the embedded JSON.
type Attachment struct {
	Filename  string
	ContentID string
	MimeType  string
	Inline    bool
	Data      []byte
}

// SecureBundle is one encrypted body plus one wrapped key per recipient.
type SecureBundle struct {
	KeyAttachments []Attachment
	BodyAttachment Attachment
}

func parseSecureData(data []byte) (*SecureData, error) {
	var sd SecureData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, &ParsingError{Component: "secure data", Err: err}
	}
	return &sd, nil
}

func parseSealedKeyRecord(data []byte) (*SealedKeyRecord, error) {
	var record SealedKeyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &ParsingError{Component: "sealed key record", Err: err}
	}
	return &record, nil
}
