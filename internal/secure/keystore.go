package secure

// KeyStore is the key-management collaborator consumed by this package.
// Implementations hold asymmetric key pairs and named symmetric keys and
// perform the raw cryptographic primitives; this package owns framing,
// algorithm negotiation, and fan-out.
//
// Every method is synchronous and individually fallible. Thread safety is
// the implementation's responsibility.
type KeyStore interface {
	// EncryptWithPublicKey wraps plaintext under an RSA public key given
	// in the named wire format. The algorithm name selects the padding
	// scheme (OAEP-SHA1 for AlgorithmRSAOAEPSHA1, PKCS1 otherwise).
	EncryptWithPublicKey(publicKey []byte, format KeyFormat, algorithm Algorithm, plaintext []byte) ([]byte, error)

	// DecryptWithPrivateKey unwraps ciphertext with the private key named
	// by keyID, using the padding scheme the algorithm name selects.
	DecryptWithPrivateKey(keyID string, algorithm Algorithm, ciphertext []byte) ([]byte, error)

	// EncryptWithSymmetricKey encrypts with AES-256-CBC-PKCS7 under a raw
	// key. A nil iv selects the stored-data convention (zero IV).
	EncryptWithSymmetricKey(key, plaintext, iv []byte) ([]byte, error)

	// DecryptWithSymmetricKey is the inverse of EncryptWithSymmetricKey.
	DecryptWithSymmetricKey(key, ciphertext, iv []byte) ([]byte, error)

	// EncryptWithSymmetricKeyID encrypts under the named symmetric key
	// with the stored-data IV convention.
	EncryptWithSymmetricKeyID(keyID string, plaintext []byte) ([]byte, error)

	// DecryptWithSymmetricKeyID is the inverse of EncryptWithSymmetricKeyID.
	DecryptWithSymmetricKeyID(keyID string, ciphertext []byte) ([]byte, error)

	// GenerateSymmetricKey returns a fresh random AES-256 key.
	GenerateSymmetricKey() ([]byte, error)

	// RandomBytes returns n cryptographically random bytes.
	RandomBytes(n int) ([]byte, error)

	// PrivateKeyExists reports whether a private key named keyID is held
	// locally.
	PrivateKeyExists(keyID string) (bool, error)
}
