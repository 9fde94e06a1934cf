// Package api implements the HTTP transport for the CipherPost service.
// It is a thin request/response client: JSON bodies, bearer auth, and
// exponential-backoff retry on transient status codes. Sealed values and
// bundle attachments pass through it opaquely; all cryptography lives in
// the secure package.
package api
