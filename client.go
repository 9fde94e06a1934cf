package cipherpost

import (
	"sync"

	"github.com/cipherpost/client-go/internal/api"
	"github.com/cipherpost/client-go/internal/keystore"
	"github.com/cipherpost/client-go/internal/secure"
)

// accountKeyInfo is the HKDF domain-separation string for the account
// sealing key derived from a master secret.
const accountKeyInfo = "cipherpost:account-sealing:v1"

// Client is the main CipherPost client.
type Client struct {
	apiClient     *api.Client
	keys          secure.KeyStore
	sealer        *secure.Sealer
	messageCrypto *secure.MessageCrypto
	accountKeyID  string

	mu     sync.RWMutex
	closed bool
}

// New creates a new CipherPost client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:      defaultBaseURL,
		accountKeyID: defaultAccountKeyID,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	keys := cfg.keyStore
	if keys == nil {
		mem := keystore.NewInMemory()
		if len(cfg.masterKey) > 0 {
			if err := mem.DeriveSymmetricKey(cfg.accountKeyID, cfg.masterKey, nil, accountKeyInfo); err != nil {
				return nil, err
			}
		}
		keys = mem
	}

	return &Client{
		apiClient:     apiClient,
		keys:          keys,
		sealer:        secure.NewSealer(keys),
		messageCrypto: secure.NewMessageCrypto(keys),
		accountKeyID:  cfg.accountKeyID,
	}, nil
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.retries > 0 {
		apiOpts = append(apiOpts, api.WithRetries(cfg.retries))
	}
	if len(cfg.retryOn) > 0 {
		apiOpts = append(apiOpts, api.WithRetryOn(cfg.retryOn))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return apiClient, nil
}

// Close marks the client closed. Further operations return
// ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// checkOpen returns ErrClientClosed once Close has been called.
func (c *Client) checkOpen() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// accountUnsealer returns an Unsealer bound to the account sealing key,
// used for attribute values the client sealed on write.
func (c *Client) accountUnsealer() *secure.Unsealer {
	return secure.NewUnsealer(c.keys, secure.KeyDescriptor{
		KeyID:     c.accountKeyID,
		Kind:      secure.KeyKindSymmetric,
		Algorithm: secure.AlgorithmAESCBCPKCS7,
	})
}
