package keystore

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/cipherpost/client-go/internal/secure"
)

// DeriveSymmetricKey derives a named AES-256 key from a master secret
// using HKDF-SHA-512 and registers it in the store. The info string gives
// domain separation between keys derived from the same secret. An empty
// salt selects a zero-filled salt of hash length.
func (s *InMemory) DeriveSymmetricKey(id string, secret, salt []byte, info string) error {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	r := hkdf.New(sha512.New, secret, salt, []byte(info))
	key := make([]byte, secure.SymmetricKeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return fmt.Errorf("derive key: %w", err)
	}

	return s.SetSymmetricKey(id, key)
}
