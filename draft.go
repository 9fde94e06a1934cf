package cipherpost

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cipherpost/client-go/internal/api"
)

// Draft identifies a stored draft. The content itself stays sealed at
// rest and is returned by GetDraft.
type Draft struct {
	ID             string
	EmailAddressID string
	UpdatedAt      time.Time
}

// SaveDraft seals the RFC 822 draft content with the account key and
// stores it under a fresh client-generated id.
func (c *Client) SaveDraft(ctx context.Context, addressID string, rfc822 []byte) (*Draft, error) {
	return c.saveDraft(ctx, addressID, uuid.NewString(), rfc822)
}

// UpdateDraft replaces the sealed content of an existing draft.
func (c *Client) UpdateDraft(ctx context.Context, addressID, draftID string, rfc822 []byte) (*Draft, error) {
	return c.saveDraft(ctx, addressID, draftID, rfc822)
}

func (c *Client) saveDraft(ctx context.Context, addressID, draftID string, rfc822 []byte) (*Draft, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	sealed, err := c.sealer.Seal(c.accountKeyID, rfc822)
	if err != nil {
		return nil, wrapCryptoError("seal draft", err)
	}

	resp, err := c.apiClient.SaveDraft(ctx, addressID, &api.Draft{
		ID:             draftID,
		EmailAddressID: addressID,
		SealedData:     sealed,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Draft{
		ID:             resp.ID,
		EmailAddressID: resp.EmailAddressID,
		UpdatedAt:      resp.UpdatedAt,
	}, nil
}

// GetDraft fetches and unseals a draft's RFC 822 content.
func (c *Client) GetDraft(ctx context.Context, addressID, draftID string) ([]byte, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	resp, err := c.apiClient.GetDraft(ctx, addressID, draftID)
	if err != nil {
		return nil, wrapError(err)
	}

	plaintext, err := c.sealer.Unseal(c.accountKeyID, resp.SealedData)
	if err != nil {
		return nil, wrapCryptoError("unseal draft", err)
	}
	return plaintext, nil
}

// DeleteDraft deletes a draft.
func (c *Client) DeleteDraft(ctx context.Context, addressID, draftID string) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	return wrapError(c.apiClient.DeleteDraft(ctx, addressID, draftID))
}
