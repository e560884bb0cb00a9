// Package audit implements the tamper-evident audit log: canonical JSON,
// HMAC-SHA256 signatures, and the append/verify/list/purge service.
package audit

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Canonicalize renders a payload as canonical JSON: object keys sorted
// lexicographically at every nesting level, Unicode emitted literally
// (no \uXXXX escapes, no HTML escaping).
//
// The payload is normalized through a JSON round-trip first, so structs,
// maps, and database-decoded values all canonicalize to the same bytes.
// Signatures are computed over this form, which makes them stable across
// the insert/refetch cycle.
func Canonicalize(payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("normalize payload: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, fmt.Errorf("encode canonical payload: %w", err)
	}

	// Encoder appends a newline; the signature must not cover it.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
