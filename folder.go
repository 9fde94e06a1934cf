package cipherpost

import (
	"context"

	"github.com/cipherpost/client-go/internal/api"
	"github.com/cipherpost/client-go/internal/secure"
)

// Standard folder types assigned by the service. Custom folders have
// FolderType "CUSTOM" and carry a sealed display name.
const (
	FolderTypeInbox  = "INBOX"
	FolderTypeSent   = "SENT"
	FolderTypeTrash  = "TRASH"
	FolderTypeCustom = "CUSTOM"
)

// Folder is a message folder, display name unsealed.
type Folder struct {
	ID             string
	EmailAddressID string
	FolderType     string
	MessageCount   int
	UnseenCount    int
	// Name is the custom display name, nil for standard folders.
	Name *string
}

// PartialFolder is a folder record whose sealed name could not be
// unsealed.
type PartialFolder struct {
	ID         string
	FolderType string
	Err        error
}

// ListFoldersResult separates fully unsealed folders from records that
// were degraded to partial form.
type ListFoldersResult struct {
	Folders  []*Folder
	Partials []*PartialFolder
}

// CreateCustomFolder creates a folder with the given display name. The
// name is sealed with the account key before it leaves the client.
func (c *Client) CreateCustomFolder(ctx context.Context, addressID, name string) (*Folder, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	sealed, err := c.sealer.SealString(c.accountKeyID, name)
	if err != nil {
		return nil, wrapCryptoError("seal folder name", err)
	}

	resp, err := c.apiClient.CreateFolder(ctx, addressID, &api.CreateFolderRequest{
		SealedName: sealedValueToWire(sealed),
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return c.unsealFolder(resp)
}

// ListFolders returns all folders under an address. A folder whose
// sealed name fails to unseal is degraded to a PartialFolder; its
// siblings are still returned in full.
func (c *Client) ListFolders(ctx context.Context, addressID string) (*ListFoldersResult, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	resp, err := c.apiClient.ListFolders(ctx, addressID)
	if err != nil {
		return nil, wrapError(err)
	}

	result := &ListFoldersResult{}
	for _, raw := range resp {
		folder, err := c.unsealFolder(raw)
		if err != nil {
			result.Partials = append(result.Partials, &PartialFolder{
				ID:         raw.ID,
				FolderType: raw.FolderType,
				Err:        err,
			})
			continue
		}
		result.Folders = append(result.Folders, folder)
	}

	return result, nil
}

// UpdateCustomFolderName replaces a custom folder's display name.
func (c *Client) UpdateCustomFolderName(ctx context.Context, addressID, folderID, name string) (*Folder, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	sealed, err := c.sealer.SealString(c.accountKeyID, name)
	if err != nil {
		return nil, wrapCryptoError("seal folder name", err)
	}

	resp, err := c.apiClient.UpdateFolder(ctx, addressID, folderID, &api.UpdateFolderRequest{
		SealedName: sealedValueToWire(sealed),
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return c.unsealFolder(resp)
}

// DeleteCustomFolder deletes a custom folder. Messages in it move to the
// standard trash folder server-side.
func (c *Client) DeleteCustomFolder(ctx context.Context, addressID, folderID string) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	return wrapError(c.apiClient.DeleteFolder(ctx, addressID, folderID))
}

// unsealFolder converts a wire record to its plaintext form.
func (c *Client) unsealFolder(raw *api.EmailFolder) (*Folder, error) {
	unsealed, err := sealedFolderFromWire(raw).Unseal(c.accountUnsealer())
	if err != nil {
		return nil, wrapCryptoError("unseal folder", err)
	}
	folder := folderFromRecord(unsealed)
	return &folder, nil
}

// folderFromRecord converts a core plaintext record to the public type.
func folderFromRecord(f secure.Folder) Folder {
	return Folder{
		ID:             f.ID,
		EmailAddressID: f.EmailAddressID,
		FolderType:     f.FolderType,
		MessageCount:   f.MessageCount,
		UnseenCount:    f.UnseenCount,
		Name:           f.Name,
	}
}
