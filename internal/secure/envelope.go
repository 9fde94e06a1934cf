package secure

import "fmt"

// splitEnvelope splits a two-zone envelope at the fixed 256-byte offset:
// the wrapped per-value key first, the CBC payload after. Input shorter
// than the wrapped-key zone is a framing error.
func splitEnvelope(sealed []byte) (wrappedKey, payload []byte, err error) {
	if len(sealed) < RSAKeyBlockSize {
		return nil, nil, fmt.Errorf("%w: got %d bytes, need at least %d",
			ErrSealedDataTooShort, len(sealed), RSAKeyBlockSize)
	}
	return sealed[:RSAKeyBlockSize], sealed[RSAKeyBlockSize:], nil
}

// joinEnvelope is the inverse of splitEnvelope.
func joinEnvelope(wrappedKey, payload []byte) []byte {
	out := make([]byte, 0, len(wrappedKey)+len(payload))
	out = append(out, wrappedKey...)
	return append(out, payload...)
}
