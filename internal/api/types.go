package api

import "time"

// SealedValue is the wire form of a sealed attribute value. The transport
// stores it opaquely; field semantics belong to the secure package.
type SealedValue struct {
	KeyID         string `json:"keyId"`
	Algorithm     string `json:"algorithm"`
	PlainTextType string `json:"plainTextType"`
	Base64Data    string `json:"base64EncodedSealedData"`
}

// EmailFolder is a folder record as returned by the service.
type EmailFolder struct {
	ID             string       `json:"id"`
	EmailAddressID string       `json:"emailAddressId"`
	FolderType     string       `json:"folderType"`
	MessageCount   int          `json:"messageCount"`
	UnseenCount    int          `json:"unseenCount"`
	SealedName     *SealedValue `json:"sealedName,omitempty"`
}

// EmailAddress is an address record as returned by the service,
// including its folders.
type EmailAddress struct {
	ID          string        `json:"id"`
	Address     string        `json:"emailAddress"`
	CreatedAt   time.Time     `json:"createdAt"`
	SealedAlias *SealedValue  `json:"sealedAlias,omitempty"`
	Folders     []EmailFolder `json:"folders"`
}

// ProvisionEmailAddressRequest provisions a new address.
type ProvisionEmailAddressRequest struct {
	Address     string       `json:"emailAddress"`
	SealedAlias *SealedValue `json:"sealedAlias,omitempty"`
}

// CreateFolderRequest creates a custom folder with a sealed display name.
type CreateFolderRequest struct {
	SealedName *SealedValue `json:"sealedName"`
}

// UpdateFolderRequest replaces a custom folder's sealed display name.
type UpdateFolderRequest struct {
	SealedName *SealedValue `json:"sealedName"`
}

// Attachment is a named, typed blob attached to a message. Data is
// base64-encoded on the wire by encoding/json.
type Attachment struct {
	Filename  string `json:"filename"`
	ContentID string `json:"contentId,omitempty"`
	MimeType  string `json:"mimeType"`
	Inline    bool   `json:"inline"`
	Data      []byte `json:"data"`
}

// MessageMetadata is the list-endpoint view of a message.
type MessageMetadata struct {
	ID             string    `json:"id"`
	EmailAddressID string    `json:"emailAddressId"`
	FolderID       string    `json:"folderId"`
	From           string    `json:"from"`
	To             []string  `json:"to"`
	Encrypted      bool      `json:"encrypted"`
	Seen           bool      `json:"seen"`
	ReceivedAt     time.Time `json:"receivedAt"`
}

// MessageBody is the full body of one message. For encrypted messages the
// body bytes are empty and the bundle rides in the attachments.
type MessageBody struct {
	ID          string       `json:"id"`
	Encrypted   bool         `json:"encrypted"`
	Body        []byte       `json:"body,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// SendMessageRequest submits a message for delivery.
type SendMessageRequest struct {
	ClientRefID string       `json:"clientRefId"`
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject,omitempty"`
	Encrypted   bool         `json:"encrypted"`
	Body        []byte       `json:"body,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// SendMessageResult is the service's acknowledgement of a send.
type SendMessageResult struct {
	ID string `json:"id"`
}

// RecipientPublicKey is the published key material for one recipient.
type RecipientPublicKey struct {
	KeyID     string `json:"keyId"`
	PublicKey []byte `json:"publicKey"`
	KeyFormat string `json:"keyFormat"`
}

// Draft is an opaque sealed draft blob.
type Draft struct {
	ID             string    `json:"id"`
	EmailAddressID string    `json:"emailAddressId"`
	SealedData     []byte    `json:"sealedData"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BlocklistEntry is one blocked address: the sealed value for display and
// a normalized hash the service filters on.
type BlocklistEntry struct {
	HashedValue string       `json:"hashedBlockedValue"`
	SealedValue *SealedValue `json:"sealedBlockedValue,omitempty"`
}

// UpdateBlocklistRequest blocks and unblocks addresses in one call.
type UpdateBlocklistRequest struct {
	Block   []BlocklistEntry `json:"block,omitempty"`
	Unblock []string         `json:"unblock,omitempty"`
}
