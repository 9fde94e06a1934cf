package secure

import (
	"encoding/base64"
	"fmt"
)

// Unsealer decrypts sealed attribute values. It is bound to one key: the
// descriptor names the KeyStore entry and key-type strategy, while each
// sealed value carries its own algorithm name.
type Unsealer struct {
	keys KeyStore
	desc KeyDescriptor
}

// NewUnsealer returns an Unsealer bound to the given key descriptor.
func NewUnsealer(keys KeyStore, desc KeyDescriptor) *Unsealer {
	return &Unsealer{keys: keys, desc: desc}
}

// Unseal decrypts a sealed value and interprets the result as UTF-8 text.
// The algorithm name is validated against the supported set before any
// KeyStore call is made.
func (u *Unsealer) Unseal(v SealedValue) (string, error) {
	if !v.Algorithm.Supported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(v.Algorithm))
	}

	sealed, err := base64.StdEncoding.DecodeString(v.Base64Data)
	if err != nil {
		return "", &ParsingError{Component: "sealed value", Err: err}
	}

	var plaintext []byte
	switch u.desc.Kind {
	case KeyKindAsymmetric:
		plaintext, err = u.openEnvelope(sealed, v.Algorithm)
	case KeyKindSymmetric:
		plaintext, err = u.keys.DecryptWithSymmetricKeyID(u.desc.KeyID, sealed)
	default:
		return "", fmt.Errorf("%w: unknown key kind %q", ErrInvalidArgument, string(u.desc.Kind))
	}
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// UnsealBytes decrypts raw sealed bytes. Unlike Unseal it always assumes
// the two-zone asymmetric envelope layout and uses the bound descriptor's
// algorithm; it never falls back to direct symmetric decryption.
func (u *Unsealer) UnsealBytes(sealed []byte) ([]byte, error) {
	if !u.desc.Algorithm.Supported() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(u.desc.Algorithm))
	}
	return u.openEnvelope(sealed, u.desc.Algorithm)
}

// openEnvelope recovers the per-value symmetric key from the wrapped-key
// zone, then decrypts the payload zone with it. The payload zone carries
// no IV; the symmetric primitive applies the stored-data convention for
// this call shape.
func (u *Unsealer) openEnvelope(sealed []byte, algorithm Algorithm) ([]byte, error) {
	wrappedKey, payload, err := splitEnvelope(sealed)
	if err != nil {
		return nil, err
	}

	symmetricKey, err := u.keys.DecryptWithPrivateKey(u.desc.KeyID, algorithm, wrappedKey)
	if err != nil {
		return nil, err
	}

	return u.keys.DecryptWithSymmetricKey(symmetricKey, payload, nil)
}
