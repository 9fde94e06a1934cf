package keystore

import (
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"fmt"
	"io"

	"github.com/cipherpost/client-go/internal/secure"
)

// parsePublicKey decodes an RSA public key from its wire encoding.
func parsePublicKey(der []byte, format secure.KeyFormat) (*rsa.PublicKey, error) {
	switch format {
	case secure.KeyFormatRSAPublicKey:
		return x509.ParsePKCS1PublicKey(der)
	case secure.KeyFormatSPKI:
		pub, err := x509.ParsePKIXPublicKey(der)
		if err != nil {
			return nil, err
		}
		rsaPub, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: SPKI key is not RSA", ErrUnsupportedKeyFormat)
		}
		return rsaPub, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKeyFormat, string(format))
	}
}

// rsaEncrypt wraps plaintext under the padding scheme the algorithm name
// selects: OAEP-SHA1 for the one OAEP name, PKCS1 v1.5 for every other
// supported name. A two-way switch, not a registry.
func rsaEncrypt(random io.Reader, pub *rsa.PublicKey, algorithm secure.Algorithm, plaintext []byte) ([]byte, error) {
	if algorithm == secure.AlgorithmRSAOAEPSHA1 {
		return rsa.EncryptOAEP(sha1.New(), random, pub, plaintext, nil)
	}
	return rsa.EncryptPKCS1v15(random, pub, plaintext)
}

// rsaDecrypt is the inverse of rsaEncrypt.
func rsaDecrypt(priv *rsa.PrivateKey, algorithm secure.Algorithm, ciphertext []byte) ([]byte, error) {
	if algorithm == secure.AlgorithmRSAOAEPSHA1 {
		return rsa.DecryptOAEP(sha1.New(), nil, priv, ciphertext, nil)
	}
	return rsa.DecryptPKCS1v15(nil, priv, ciphertext)
}
