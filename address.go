package cipherpost

import (
	"context"
	"time"

	"github.com/cipherpost/client-go/internal/api"
)

// EmailAddress is a provisioned address with its folders, alias unsealed.
type EmailAddress struct {
	ID        string
	Address   string
	CreatedAt time.Time
	// Alias is the user-chosen display alias, nil when none was set.
	Alias   *string
	Folders []Folder
}

// PartialEmailAddress is an address record whose sealed fields could not
// be unsealed. Non-sealed fields are still available; Err says why the
// record was degraded.
type PartialEmailAddress struct {
	ID      string
	Address string
	Err     error
}

// ListEmailAddressesResult separates fully unsealed addresses from
// records that were degraded to partial form.
type ListEmailAddressesResult struct {
	Addresses []*EmailAddress
	Partials  []*PartialEmailAddress
}

// ProvisionEmailAddress provisions a new email address. An alias given
// via WithAlias is sealed with the account key before it leaves the
// client.
func (c *Client) ProvisionEmailAddress(ctx context.Context, address string, opts ...ProvisionOption) (*EmailAddress, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	cfg := &provisionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	req := &api.ProvisionEmailAddressRequest{Address: address}
	if cfg.alias != "" {
		sealed, err := c.sealer.SealString(c.accountKeyID, cfg.alias)
		if err != nil {
			return nil, wrapCryptoError("seal alias", err)
		}
		req.SealedAlias = sealedValueToWire(sealed)
	}

	resp, err := c.apiClient.ProvisionEmailAddress(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}

	return c.unsealAddress(resp)
}

// ListEmailAddresses returns all provisioned addresses. A record that
// fails to unseal does not fail the whole call: it is degraded to a
// PartialEmailAddress and its siblings are still returned in full.
func (c *Client) ListEmailAddresses(ctx context.Context) (*ListEmailAddressesResult, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	resp, err := c.apiClient.ListEmailAddresses(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	result := &ListEmailAddressesResult{}
	for _, raw := range resp {
		addr, err := c.unsealAddress(raw)
		if err != nil {
			result.Partials = append(result.Partials, &PartialEmailAddress{
				ID:      raw.ID,
				Address: raw.Address,
				Err:     err,
			})
			continue
		}
		result.Addresses = append(result.Addresses, addr)
	}

	return result, nil
}

// DeprovisionEmailAddress deletes an address and everything it owns.
func (c *Client) DeprovisionEmailAddress(ctx context.Context, addressID string) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	return wrapError(c.apiClient.DeprovisionEmailAddress(ctx, addressID))
}

// unsealAddress converts a wire record to its plaintext form.
func (c *Client) unsealAddress(raw *api.EmailAddress) (*EmailAddress, error) {
	unsealed, err := sealedAddressFromWire(raw).Unseal(c.accountUnsealer())
	if err != nil {
		return nil, wrapCryptoError("unseal address", err)
	}

	folders := make([]Folder, 0, len(unsealed.Folders))
	for _, f := range unsealed.Folders {
		folders = append(folders, folderFromRecord(f))
	}

	return &EmailAddress{
		ID:        unsealed.ID,
		Address:   unsealed.Address,
		CreatedAt: unsealed.CreatedAt,
		Alias:     unsealed.Alias,
		Folders:   folders,
	}, nil
}
