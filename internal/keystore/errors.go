package keystore

import "errors"

var (
	// ErrKeyNotFound is returned when no key is registered under the
	// requested id.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidKeySize is returned when a symmetric key is not an
	// AES-256 key.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when an IV is not one AES block.
	ErrInvalidIVSize = errors.New("invalid iv size")

	// ErrMalformedCiphertext is returned when CBC ciphertext is empty or
	// not a whole number of blocks.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrInvalidPadding is returned when PKCS7 padding fails to verify.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrUnsupportedKeyFormat is returned when a public key encoding is
	// not recognized or does not contain an RSA key.
	ErrUnsupportedKeyFormat = errors.New("unsupported public key format")
)
