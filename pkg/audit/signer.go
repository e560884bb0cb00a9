package audit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// MinKeyBytes is the minimum accepted HMAC key length.
const MinKeyBytes = 32

// Signer computes and checks payload signatures with a process-wide
// symmetric key. Rotating the key invalidates all prior signatures; there is
// no key id per record.
type Signer struct {
	key []byte
}

// NewSigner validates the key length and returns a Signer.
func NewSigner(key []byte) (*Signer, error) {
	if len(key) < MinKeyBytes {
		return nil, fmt.Errorf("HMAC key must be at least %d bytes, got %d", MinKeyBytes, len(key))
	}
	return &Signer{key: key}, nil
}

// Sign returns hex(HMAC-SHA256(key, Canonicalize(payload))).
func (s *Signer) Sign(payload any) (string, error) {
	canonical, err := Canonicalize(payload)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, s.key)
	mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the signature for payload and compares it with the
// stored one in constant time. Malformed hex verifies as false, not as an
// error: a corrupted signature is a failed verification.
func (s *Signer) Verify(payload any, signature string) (bool, error) {
	canonical, err := Canonicalize(payload)
	if err != nil {
		return false, err
	}
	mac := hmac.New(sha256.New, s.key)
	mac.Write(canonical)
	expected := mac.Sum(nil)

	got, err := hex.DecodeString(signature)
	if err != nil {
		return false, nil
	}
	return hmac.Equal(expected, got), nil
}
