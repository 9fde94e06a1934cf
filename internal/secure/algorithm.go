package secure

// Algorithm names the cipher and padding scheme used to seal a value.
// The set of supported names is closed: an unknown name is a hard error,
// never silently defaulted.
type Algorithm string

const (
	// AlgorithmRSAOAEPSHA1 selects RSA with OAEP-SHA1 padding for key
	// wrapping. This is the only name that selects OAEP; every other
	// supported RSA name resolves to PKCS1 v1.5.
	AlgorithmRSAOAEPSHA1 Algorithm = "RSA/ECB/OAEPWithSHA-1AndMGF1Padding"

	// AlgorithmRSAPKCS1 selects RSA with PKCS1 v1.5 padding.
	AlgorithmRSAPKCS1 Algorithm = "RSA/ECB/PKCS1Padding"

	// AlgorithmAESCBCPKCS7 selects AES-256 in CBC mode with PKCS7 padding.
	AlgorithmAESCBCPKCS7 Algorithm = "AES/CBC/PKCS7Padding"
)

// Supported reports whether the algorithm name is in the closed supported
// set. Adding a name here is a deliberate protocol change.
func (a Algorithm) Supported() bool {
	switch a {
	case AlgorithmRSAOAEPSHA1, AlgorithmRSAPKCS1, AlgorithmAESCBCPKCS7:
		return true
	}
	return false
}

// KeyKind distinguishes the two key-type strategies for sealed values.
type KeyKind string

const (
	// KeyKindAsymmetric means the sealed bytes use the two-zone envelope:
	// an RSA-wrapped symmetric key followed by the CBC payload.
	KeyKindAsymmetric KeyKind = "asymmetric"

	// KeyKindSymmetric means the sealed bytes are ciphertext directly
	// under a named symmetric key.
	KeyKindSymmetric KeyKind = "symmetric"
)

// KeyFormat identifies the wire encoding of an RSA public key.
type KeyFormat string

const (
	// KeyFormatRSAPublicKey is a PKCS#1 DER encoded RSA public key.
	KeyFormatRSAPublicKey KeyFormat = "rsaPublicKey"

	// KeyFormatSPKI is an X.509 SubjectPublicKeyInfo DER encoding.
	KeyFormatSPKI KeyFormat = "spki"
)

// KeyDescriptor identifies which KeyStore entry and cipher to use when
// unsealing raw bytes.
type KeyDescriptor struct {
	// KeyID names the KeyStore entry.
	KeyID string
	// Kind selects the asymmetric envelope layout or direct symmetric
	// decryption.
	Kind KeyKind
	// Algorithm is the cipher/padding name for the key.
	Algorithm Algorithm
}

const (
	// RSAKeyBlockSize is the size of the wrapped-key zone in the
	// two-zone envelope: one RSA-2048 block.
	RSAKeyBlockSize = 256

	// IVSize is the AES-CBC initialization vector size.
	IVSize = 16

	// SymmetricKeySize is the AES-256 key size.
	SymmetricKeySize = 32
)
