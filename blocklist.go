package cipherpost

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/cipherpost/client-go/internal/api"
)

// BlockAddresses adds addresses to the account blocklist. Each address
// is sealed with the account key for later display; the service filters
// on a normalized hash and never sees the address itself.
func (c *Client) BlockAddresses(ctx context.Context, addresses []string) error {
	if err := c.checkOpen(); err != nil {
		return err
	}

	entries := make([]api.BlocklistEntry, 0, len(addresses))
	for _, addr := range addresses {
		normalized := normalizeAddress(addr)
		sealed, err := c.sealer.SealString(c.accountKeyID, normalized)
		if err != nil {
			return wrapCryptoError("seal blocked address", err)
		}
		entries = append(entries, api.BlocklistEntry{
			HashedValue: hashAddress(normalized),
			SealedValue: sealedValueToWire(sealed),
		})
	}

	return wrapError(c.apiClient.UpdateBlocklist(ctx, &api.UpdateBlocklistRequest{Block: entries}))
}

// UnblockAddresses removes addresses from the account blocklist.
func (c *Client) UnblockAddresses(ctx context.Context, addresses []string) error {
	if err := c.checkOpen(); err != nil {
		return err
	}

	hashes := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		hashes = append(hashes, hashAddress(normalizeAddress(addr)))
	}

	return wrapError(c.apiClient.UpdateBlocklist(ctx, &api.UpdateBlocklistRequest{Unblock: hashes}))
}

// GetBlocklist returns the blocked addresses, unsealed.
func (c *Client) GetBlocklist(ctx context.Context) ([]string, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	entries, err := c.apiClient.GetBlocklist(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	unsealer := c.accountUnsealer()
	addresses := make([]string, 0, len(entries))
	for _, e := range entries {
		sealed := sealedValueFromWire(e.SealedValue)
		if sealed == nil {
			continue
		}
		addr, err := unsealer.Unseal(*sealed)
		if err != nil {
			return nil, wrapCryptoError("unseal blocked address", err)
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

// normalizeAddress lowercases and trims an address so that hashing is
// stable across clients.
func normalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// hashAddress returns the hex SHA-256 of a normalized address.
func hashAddress(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
