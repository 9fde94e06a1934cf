// Package secure implements the CipherPost envelope-encryption protocol.
// It protects individual attribute values (aliases, folder names, drafts)
// at rest and encrypts message bodies end-to-end for an arbitrary set of
// recipients.
//
// # Sealed values
//
// A single attribute value is sealed under a named symmetric key
// (AES-256-CBC with PKCS7 padding) and stored as a [SealedValue]: key id,
// algorithm name, a plaintext type hint, and the ciphertext in standard
// base64. [Sealer] produces sealed values; [Unsealer] reverses them.
//
// # The two-zone envelope
//
// Values sealed under an asymmetric key use a fixed-offset binary layout:
// bytes [0,256) hold the per-value AES key wrapped with the recipient's
// RSA-2048 public key, and bytes [256,...) hold the CBC ciphertext. The
// layout carries no IV; the symmetric primitive applies the stored-data
// convention (a zero IV) for this call shape.
//
// # Multi-recipient messages
//
// [MessageCrypto] encrypts a message body exactly once with a fresh
// AES-256 key and a fresh 16-byte IV, then wraps that key separately for
// every distinct recipient key id using RSA-OAEP-SHA1. The result is a
// [SecureBundle]: one body attachment carrying a [SecureData] JSON record
// and one key attachment per recipient carrying a [SealedKeyRecord].
// Decryption scans the key attachments for the first record whose
// recipient key id has a private key in the local [KeyStore].
//
// # Wire stability
//
// The JSON field names, the attachment names and content ids, and the
// 256-byte envelope offset are fixed: any change breaks decryption of
// data already stored by the service.
//
// All operations are stateless pure functions over their inputs and the
// KeyStore; they are safe for concurrent use as long as the KeyStore is.
package secure
