package cipherpost

import (
	"net/http"
	"time"

	"github.com/cipherpost/client-go/internal/secure"
)

const (
	defaultBaseURL      = "https://api.cipherpost.com"
	defaultAccountKeyID = "account-sealing-key"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	retries      int
	retryOn      []int
	keyStore     secure.KeyStore
	masterKey    []byte
	accountKeyID string
}

// provisionConfig holds configuration for address provisioning.
type provisionConfig struct {
	alias string
}

// Option configures the client.
type Option func(*clientConfig)

// ProvisionOption configures address provisioning.
type ProvisionOption func(*provisionConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the default timeout for API calls.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries for API calls.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithKeyStore installs a custom key-management backend. The default is
// an in-memory store; production apps holding keys in a platform
// keychain or HSM supply their own implementation.
func WithKeyStore(keys secure.KeyStore) Option {
	return func(c *clientConfig) {
		c.keyStore = keys
	}
}

// WithMasterKey derives the account sealing key from a master secret via
// HKDF-SHA-512 and installs it in the default key store. Ignored when
// WithKeyStore is also given; custom stores manage their own keys.
func WithMasterKey(secret []byte) Option {
	return func(c *clientConfig) {
		c.masterKey = secret
	}
}

// WithAccountKeyID overrides the key id used to seal account attribute
// values (aliases, folder names, drafts, blocklist entries).
func WithAccountKeyID(id string) Option {
	return func(c *clientConfig) {
		c.accountKeyID = id
	}
}

// WithAlias sets a display alias for the provisioned address. The alias
// is sealed with the account key before it leaves the client.
func WithAlias(alias string) ProvisionOption {
	return func(c *provisionConfig) {
		c.alias = alias
	}
}
