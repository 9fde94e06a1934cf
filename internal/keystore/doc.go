// Package keystore provides the default key-management collaborator for
// the SDK: an in-memory store of RSA-2048 key pairs and named AES-256
// keys implementing the secure.KeyStore surface. Production deployments
// that keep keys in platform keychains or HSMs supply their own
// implementation through the client's WithKeyStore option.
package keystore
