package cipherpost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cipherpost/client-go/internal/api"
	"github.com/cipherpost/client-go/internal/secure"
)

// Message is the metadata view of one message. Bodies are fetched
// separately with GetMessageBody.
type Message struct {
	ID             string
	EmailAddressID string
	FolderID       string
	From           string
	To             []string
	Encrypted      bool
	Seen           bool
	ReceivedAt     time.Time
}

// SendMessageInput describes a message to send.
type SendMessageInput struct {
	From    string
	To      []string
	Subject string
	// Body is the RFC 822 message body.
	Body []byte
}

// SendMessage submits a message for delivery and returns its id. When
// every recipient has a published CipherPost key, the body is encrypted
// once and the message key is wrapped for each recipient; otherwise the
// body is sent in the clear for external delivery.
func (c *Client) SendMessage(ctx context.Context, addressID string, input SendMessageInput) (string, error) {
	if err := c.checkOpen(); err != nil {
		return "", err
	}
	if len(input.To) == 0 {
		return "", fmt.Errorf("%w: no recipients", ErrInvalidArgument)
	}

	req := &api.SendMessageRequest{
		ClientRefID: uuid.NewString(),
		From:        input.From,
		To:          input.To,
		Subject:     input.Subject,
	}

	recipients, allInternal, err := c.lookupRecipients(ctx, input.To)
	if err != nil {
		return "", err
	}

	if allInternal {
		bundle, err := c.messageCrypto.Encrypt(input.Body, recipients)
		if err != nil {
			return "", wrapCryptoError("encrypt message", err)
		}
		req.Encrypted = true
		req.Attachments = bundleToWire(bundle)
	} else {
		req.Body = input.Body
	}

	resp, err := c.apiClient.SendMessage(ctx, addressID, req)
	if err != nil {
		return "", wrapError(err)
	}
	return resp.ID, nil
}

// ListMessages returns message metadata for an address.
func (c *Client) ListMessages(ctx context.Context, addressID string) ([]*Message, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	resp, err := c.apiClient.ListMessages(ctx, addressID)
	if err != nil {
		return nil, wrapError(err)
	}

	messages := make([]*Message, 0, len(resp))
	for _, m := range resp {
		messages = append(messages, &Message{
			ID:             m.ID,
			EmailAddressID: m.EmailAddressID,
			FolderID:       m.FolderID,
			From:           m.From,
			To:             m.To,
			Encrypted:      m.Encrypted,
			Seen:           m.Seen,
			ReceivedAt:     m.ReceivedAt,
		})
	}
	return messages, nil
}

// GetMessageBody fetches and, for encrypted messages, decrypts the body
// of one message.
func (c *Client) GetMessageBody(ctx context.Context, addressID, messageID string) ([]byte, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	resp, err := c.apiClient.GetMessageBody(ctx, addressID, messageID)
	if err != nil {
		return nil, wrapError(err)
	}

	if !resp.Encrypted {
		return resp.Body, nil
	}

	bundle, err := bundleFromWire(resp.Attachments)
	if err != nil {
		return nil, err
	}

	plaintext, err := c.messageCrypto.Decrypt(bundle)
	if err != nil {
		return nil, wrapCryptoError("decrypt message", err)
	}
	return plaintext, nil
}

// DeleteMessage deletes one message.
func (c *Client) DeleteMessage(ctx context.Context, addressID, messageID string) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	return wrapError(c.apiClient.DeleteMessage(ctx, addressID, messageID))
}

// lookupRecipients resolves recipient public keys. A recipient without a
// published key makes the message external; any other lookup failure
// fails the send.
func (c *Client) lookupRecipients(ctx context.Context, to []string) ([]secure.Recipient, bool, error) {
	recipients := make([]secure.Recipient, 0, len(to))
	for _, addr := range to {
		key, err := c.apiClient.GetRecipientPublicKey(ctx, addr)
		if err != nil {
			if errors.Is(err, api.ErrRecipientKeyNotFound) {
				return nil, false, nil
			}
			return nil, false, wrapError(err)
		}
		recipients = append(recipients, secure.Recipient{
			KeyID:     key.KeyID,
			PublicKey: key.PublicKey,
			Format:    secure.KeyFormat(key.KeyFormat),
		})
	}
	return recipients, true, nil
}

// bundleToWire flattens a secure bundle into transport attachments, key
// attachments first, body last.
func bundleToWire(bundle *secure.SecureBundle) []api.Attachment {
	out := make([]api.Attachment, 0, len(bundle.KeyAttachments)+1)
	for _, a := range bundle.KeyAttachments {
		out = append(out, attachmentToWire(a))
	}
	out = append(out, attachmentToWire(bundle.BodyAttachment))
	return out
}

// bundleFromWire reassembles a secure bundle from transport attachments,
// matching components by content id.
func bundleFromWire(attachments []api.Attachment) (*secure.SecureBundle, error) {
	bundle := &secure.SecureBundle{}
	for _, a := range attachments {
		switch a.ContentID {
		case secure.BodyAttachmentContentID:
			bundle.BodyAttachment = attachmentFromWire(a)
		case secure.KeyAttachmentContentID:
			bundle.KeyAttachments = append(bundle.KeyAttachments, attachmentFromWire(a))
		}
	}
	if len(bundle.BodyAttachment.Data) == 0 {
		return nil, wrapCryptoError("reassemble bundle",
			fmt.Errorf("%w: missing body attachment", secure.ErrMalformedSecureData))
	}
	return bundle, nil
}

func attachmentToWire(a secure.Attachment) api.Attachment {
	return api.Attachment{
		Filename:  a.Filename,
		ContentID: a.ContentID,
		MimeType:  a.MimeType,
		Inline:    a.Inline,
		Data:      a.Data,
	}
}

func attachmentFromWire(a api.Attachment) secure.Attachment {
	return secure.Attachment{
		Filename:  a.Filename,
		ContentID: a.ContentID,
		MimeType:  a.MimeType,
		Inline:    a.Inline,
		Data:      a.Data,
	}
}
