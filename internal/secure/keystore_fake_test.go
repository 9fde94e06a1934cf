package secure

import "errors"

// errFakeNotConfigured is returned by fake methods without a behavior.
var errFakeNotConfigured = errors.New("fake keystore: not configured")

// fakeKeyStore counts every KeyStore call and delegates to the
// configured function fields. Used to assert call ordering and the
// zero-call gating properties.
type fakeKeyStore struct {
	calls int

	encryptPublic  func(publicKey []byte, format KeyFormat, algorithm Algorithm, plaintext []byte) ([]byte, error)
	decryptPrivate func(keyID string, algorithm Algorithm, ciphertext []byte) ([]byte, error)
	encryptSym     func(key, plaintext, iv []byte) ([]byte, error)
	decryptSym     func(key, ciphertext, iv []byte) ([]byte, error)
	encryptSymID   func(keyID string, plaintext []byte) ([]byte, error)
	decryptSymID   func(keyID string, ciphertext []byte) ([]byte, error)
	generateKey    func() ([]byte, error)
	randomBytes    func(n int) ([]byte, error)
	privateExists  func(keyID string) (bool, error)
}

var _ KeyStore = (*fakeKeyStore)(nil)

func (f *fakeKeyStore) EncryptWithPublicKey(publicKey []byte, format KeyFormat, algorithm Algorithm, plaintext []byte) ([]byte, error) {
	f.calls++
	if f.encryptPublic == nil {
		return nil, errFakeNotConfigured
	}
	return f.encryptPublic(publicKey, format, algorithm, plaintext)
}

func (f *fakeKeyStore) DecryptWithPrivateKey(keyID string, algorithm Algorithm, ciphertext []byte) ([]byte, error) {
	f.calls++
	if f.decryptPrivate == nil {
		return nil, errFakeNotConfigured
	}
	return f.decryptPrivate(keyID, algorithm, ciphertext)
}

func (f *fakeKeyStore) EncryptWithSymmetricKey(key, plaintext, iv []byte) ([]byte, error) {
	f.calls++
	if f.encryptSym == nil {
		return nil, errFakeNotConfigured
	}
	return f.encryptSym(key, plaintext, iv)
}

func (f *fakeKeyStore) DecryptWithSymmetricKey(key, ciphertext, iv []byte) ([]byte, error) {
	f.calls++
	if f.decryptSym == nil {
		return nil, errFakeNotConfigured
	}
	return f.decryptSym(key, ciphertext, iv)
}

func (f *fakeKeyStore) EncryptWithSymmetricKeyID(keyID string, plaintext []byte) ([]byte, error) {
	f.calls++
	if f.encryptSymID == nil {
		return nil, errFakeNotConfigured
	}
	return f.encryptSymID(keyID, plaintext)
}

func (f *fakeKeyStore) DecryptWithSymmetricKeyID(keyID string, ciphertext []byte) ([]byte, error) {
	f.calls++
	if f.decryptSymID == nil {
		return nil, errFakeNotConfigured
	}
	return f.decryptSymID(keyID, ciphertext)
}

func (f *fakeKeyStore) GenerateSymmetricKey() ([]byte, error) {
	f.calls++
	if f.generateKey == nil {
		return nil, errFakeNotConfigured
	}
	return f.generateKey()
}

func (f *fakeKeyStore) RandomBytes(n int) ([]byte, error) {
	f.calls++
	if f.randomBytes == nil {
		return nil, errFakeNotConfigured
	}
	return f.randomBytes(n)
}

func (f *fakeKeyStore) PrivateKeyExists(keyID string) (bool, error) {
	f.calls++
	if f.privateExists == nil {
		return false, errFakeNotConfigured
	}
	return f.privateExists(keyID)
}
