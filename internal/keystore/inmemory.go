package keystore

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"io"
	"sync"

	"github.com/cipherpost/client-go/internal/secure"
)

// InMemory holds RSA-2048 key pairs and named AES-256 keys in process
// memory. Safe for concurrent use.
type InMemory struct {
	mu        sync.RWMutex
	symmetric map[string][]byte
	private   map[string]*rsa.PrivateKey
	rand      io.Reader
}

var _ secure.KeyStore = (*InMemory)(nil)

// NewInMemory returns an empty store backed by crypto/rand.
func NewInMemory() *InMemory {
	return &InMemory{
		symmetric: make(map[string][]byte),
		private:   make(map[string]*rsa.PrivateKey),
		rand:      rand.Reader,
	}
}

// SetSymmetricKey registers a named AES-256 key. The key is copied.
func (s *InMemory) SetSymmetricKey(id string, key []byte) error {
	if len(key) != secure.SymmetricKeySize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), secure.SymmetricKeySize)
	}
	k := make([]byte, len(key))
	copy(k, key)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.symmetric[id] = k
	return nil
}

// GenerateKeyPair creates an RSA-2048 key pair under the given id and
// returns the public key in PKCS#1 DER form.
func (s *InMemory) GenerateKeyPair(id string) ([]byte, error) {
	priv, err := rsa.GenerateKey(s.rand, 2048)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.private[id] = priv
	s.mu.Unlock()

	return x509.MarshalPKCS1PublicKey(&priv.PublicKey), nil
}

// RemovePrivateKey forgets the private key registered under id.
func (s *InMemory) RemovePrivateKey(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.private, id)
}

// EncryptWithPublicKey implements secure.KeyStore.
func (s *InMemory) EncryptWithPublicKey(publicKey []byte, format secure.KeyFormat, algorithm secure.Algorithm, plaintext []byte) ([]byte, error) {
	pub, err := parsePublicKey(publicKey, format)
	if err != nil {
		return nil, err
	}
	return rsaEncrypt(s.rand, pub, algorithm, plaintext)
}

// DecryptWithPrivateKey implements secure.KeyStore.
func (s *InMemory) DecryptWithPrivateKey(keyID string, algorithm secure.Algorithm, ciphertext []byte) ([]byte, error) {
	priv, err := s.privateKey(keyID)
	if err != nil {
		return nil, err
	}
	return rsaDecrypt(priv, algorithm, ciphertext)
}

// EncryptWithSymmetricKey implements secure.KeyStore.
func (s *InMemory) EncryptWithSymmetricKey(key, plaintext, iv []byte) ([]byte, error) {
	return encryptCBC(key, plaintext, iv)
}

// DecryptWithSymmetricKey implements secure.KeyStore.
func (s *InMemory) DecryptWithSymmetricKey(key, ciphertext, iv []byte) ([]byte, error) {
	return decryptCBC(key, ciphertext, iv)
}

// EncryptWithSymmetricKeyID implements secure.KeyStore.
func (s *InMemory) EncryptWithSymmetricKeyID(keyID string, plaintext []byte) ([]byte, error) {
	key, err := s.symmetricKey(keyID)
	if err != nil {
		return nil, err
	}
	return encryptCBC(key, plaintext, nil)
}

// DecryptWithSymmetricKeyID implements secure.KeyStore.
func (s *InMemory) DecryptWithSymmetricKeyID(keyID string, ciphertext []byte) ([]byte, error) {
	key, err := s.symmetricKey(keyID)
	if err != nil {
		return nil, err
	}
	return decryptCBC(key, ciphertext, nil)
}

// GenerateSymmetricKey implements secure.KeyStore.
func (s *InMemory) GenerateSymmetricKey() ([]byte, error) {
	return s.RandomBytes(secure.SymmetricKeySize)
}

// RandomBytes implements secure.KeyStore.
func (s *InMemory) RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.rand, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// PrivateKeyExists implements secure.KeyStore.
func (s *InMemory) PrivateKeyExists(keyID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.private[keyID]
	return ok, nil
}

func (s *InMemory) privateKey(keyID string) (*rsa.PrivateKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	priv, ok := s.private[keyID]
	if !ok {
		return nil, fmt.Errorf("%w: private key %q", ErrKeyNotFound, keyID)
	}
	return priv, nil
}

func (s *InMemory) symmetricKey(keyID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.symmetric[keyID]
	if !ok {
		return nil, fmt.Errorf("%w: symmetric key %q", ErrKeyNotFound, keyID)
	}
	return key, nil
}
