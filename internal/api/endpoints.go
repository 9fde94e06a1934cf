package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ProvisionEmailAddress provisions a new email address.
func (c *Client) ProvisionEmailAddress(ctx context.Context, req *ProvisionEmailAddressRequest) (*EmailAddress, error) {
	var result EmailAddress
	err := c.do(ctx, http.MethodPost, "/api/v1/addresses", req, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceAddress)
	}
	return &result, nil
}

// ListEmailAddresses returns all provisioned addresses with their folders.
func (c *Client) ListEmailAddresses(ctx context.Context) ([]*EmailAddress, error) {
	var result struct {
		Addresses []*EmailAddress `json:"addresses"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/addresses", nil, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceAddress)
	}
	return result.Addresses, nil
}

// DeprovisionEmailAddress deletes an address and everything it owns.
func (c *Client) DeprovisionEmailAddress(ctx context.Context, addressID string) error {
	path := "/api/v1/addresses/" + url.PathEscape(addressID)
	return WithResourceType(c.do(ctx, http.MethodDelete, path, nil, nil), ResourceAddress)
}

// CreateFolder creates a custom folder under an address.
func (c *Client) CreateFolder(ctx context.Context, addressID string, req *CreateFolderRequest) (*EmailFolder, error) {
	path := fmt.Sprintf("/api/v1/addresses/%s/folders", url.PathEscape(addressID))
	var result EmailFolder
	err := c.do(ctx, http.MethodPost, path, req, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceFolder)
	}
	return &result, nil
}

// ListFolders returns all folders under an address.
func (c *Client) ListFolders(ctx context.Context, addressID string) ([]*EmailFolder, error) {
	path := fmt.Sprintf("/api/v1/addresses/%s/folders", url.PathEscape(addressID))
	var result struct {
		Folders []*EmailFolder `json:"folders"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceFolder)
	}
	return result.Folders, nil
}

// UpdateFolder replaces a custom folder's sealed display name.
func (c *Client) UpdateFolder(ctx context.Context, addressID, folderID string, req *UpdateFolderRequest) (*EmailFolder, error) {
	path := fmt.Sprintf("/api/v1/addresses/%s/folders/%s", url.PathEscape(addressID), url.PathEscape(folderID))
	var result EmailFolder
	err := c.do(ctx, http.MethodPut, path, req, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceFolder)
	}
	return &result, nil
}

// DeleteFolder deletes a custom folder.
func (c *Client) DeleteFolder(ctx context.Context, addressID, folderID string) error {
	path := fmt.Sprintf("/api/v1/addresses/%s/folders/%s", url.PathEscape(addressID), url.PathEscape(folderID))
	return WithResourceType(c.do(ctx, http.MethodDelete, path, nil, nil), ResourceFolder)
}

// ListMessages returns message metadata for an address.
func (c *Client) ListMessages(ctx context.Context, addressID string) ([]*MessageMetadata, error) {
	path := fmt.Sprintf("/api/v1/addresses/%s/messages", url.PathEscape(addressID))
	var result struct {
		Messages []*MessageMetadata `json:"messages"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceMessage)
	}
	return result.Messages, nil
}

// GetMessageBody fetches the full body of one message.
func (c *Client) GetMessageBody(ctx context.Context, addressID, messageID string) (*MessageBody, error) {
	path := fmt.Sprintf("/api/v1/addresses/%s/messages/%s/body", url.PathEscape(addressID), url.PathEscape(messageID))
	var result MessageBody
	err := c.do(ctx, http.MethodGet, path, nil, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceMessage)
	}
	return &result, nil
}

// SendMessage submits a message for delivery.
func (c *Client) SendMessage(ctx context.Context, addressID string, req *SendMessageRequest) (*SendMessageResult, error) {
	path := fmt.Sprintf("/api/v1/addresses/%s/messages", url.PathEscape(addressID))
	var result SendMessageResult
	err := c.do(ctx, http.MethodPost, path, req, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceMessage)
	}
	return &result, nil
}

// DeleteMessage deletes one message.
func (c *Client) DeleteMessage(ctx context.Context, addressID, messageID string) error {
	path := fmt.Sprintf("/api/v1/addresses/%s/messages/%s", url.PathEscape(addressID), url.PathEscape(messageID))
	return WithResourceType(c.do(ctx, http.MethodDelete, path, nil, nil), ResourceMessage)
}

// GetRecipientPublicKey looks up the published public key for an email
// address. Returns ErrRecipientKeyNotFound (via errors.Is) when the
// recipient is not in the network.
func (c *Client) GetRecipientPublicKey(ctx context.Context, emailAddress string) (*RecipientPublicKey, error) {
	path := "/api/v1/keys/" + url.PathEscape(emailAddress)
	var result RecipientPublicKey
	err := c.do(ctx, http.MethodGet, path, nil, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceKey)
	}
	return &result, nil
}

// SaveDraft stores or replaces a sealed draft blob.
func (c *Client) SaveDraft(ctx context.Context, addressID string, draft *Draft) (*Draft, error) {
	path := fmt.Sprintf("/api/v1/addresses/%s/drafts/%s", url.PathEscape(addressID), url.PathEscape(draft.ID))
	var result Draft
	err := c.do(ctx, http.MethodPut, path, draft, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceDraft)
	}
	return &result, nil
}

// GetDraft fetches a sealed draft blob.
func (c *Client) GetDraft(ctx context.Context, addressID, draftID string) (*Draft, error) {
	path := fmt.Sprintf("/api/v1/addresses/%s/drafts/%s", url.PathEscape(addressID), url.PathEscape(draftID))
	var result Draft
	err := c.do(ctx, http.MethodGet, path, nil, &result)
	if err != nil {
		return nil, WithResourceType(err, ResourceDraft)
	}
	return &result, nil
}

// DeleteDraft deletes a sealed draft blob.
func (c *Client) DeleteDraft(ctx context.Context, addressID, draftID string) error {
	path := fmt.Sprintf("/api/v1/addresses/%s/drafts/%s", url.PathEscape(addressID), url.PathEscape(draftID))
	return WithResourceType(c.do(ctx, http.MethodDelete, path, nil, nil), ResourceDraft)
}

// GetBlocklist returns all blocklist entries for the account.
func (c *Client) GetBlocklist(ctx context.Context) ([]BlocklistEntry, error) {
	var result struct {
		Entries []BlocklistEntry `json:"entries"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/blocklist", nil, &result)
	if err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// UpdateBlocklist blocks and unblocks addresses in one call.
func (c *Client) UpdateBlocklist(ctx context.Context, req *UpdateBlocklistRequest) error {
	return c.do(ctx, http.MethodPost, "/api/v1/blocklist", req, nil)
}
