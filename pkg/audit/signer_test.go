package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return []byte("0123456789abcdef0123456789abcdef")
}

func TestNewSigner_KeyLength(t *testing.T) {
	tests := []struct {
		name    string
		key     []byte
		wantErr bool
	}{
		{name: "exactly 32 bytes", key: testKey(), wantErr: false},
		{name: "longer than 32 bytes", key: []byte(strings.Repeat("k", 48)), wantErr: false},
		{name: "too short", key: []byte("short-key"), wantErr: true},
		{name: "empty", key: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSigner(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, s)
			}
		})
	}
}

func TestCanonicalize_KeyOrderInvariant(t *testing.T) {
	a := map[string]any{"zebra": 1, "alpha": "x", "nested": map[string]any{"b": 2, "a": 1}}
	b := map[string]any{"alpha": "x", "nested": map[string]any{"a": 1, "b": 2}, "zebra": 1}

	ca, err := Canonicalize(a)
	require.NoError(t, err)
	cb, err := Canonicalize(b)
	require.NoError(t, err)

	assert.Equal(t, string(ca), string(cb))
	assert.Equal(t, `{"alpha":"x","nested":{"a":1,"b":2},"zebra":1}`, string(ca))
}

func TestCanonicalize_UnicodePreserved(t *testing.T) {
	payload := map[string]any{"claim": "तत्काल ₹1000 भेजें", "tag": "<script>"}

	c, err := Canonicalize(payload)
	require.NoError(t, err)

	// Devanagari and the rupee sign stay literal; HTML characters are not
	// entity-escaped either.
	assert.Contains(t, string(c), "तत्काल ₹1000 भेजें")
	assert.Contains(t, string(c), "<script>")
	assert.NotContains(t, string(c), `\u`)
}

func TestSigner_RoundTrip(t *testing.T) {
	s, err := NewSigner(testKey())
	require.NoError(t, err)

	payload := map[string]any{
		"request_id": "11111111-2222-3333-4444-555555555555",
		"language":   "hi",
		"verdict":    "FALSE",
		"latency_ms": 412,
	}

	sig, err := s.Sign(payload)
	require.NoError(t, err)
	require.Len(t, sig, 64) // hex of SHA-256

	ok, err := s.Verify(payload, sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSigner_DetectsTampering(t *testing.T) {
	s, err := NewSigner(testKey())
	require.NoError(t, err)

	payload := map[string]any{"amount": 1000, "upi": "abc@upi"}
	sig, err := s.Sign(payload)
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload map[string]any
		sig     string
	}{
		{
			name:    "changed value",
			payload: map[string]any{"amount": 1001, "upi": "abc@upi"},
			sig:     sig,
		},
		{
			name:    "removed key",
			payload: map[string]any{"amount": 1000},
			sig:     sig,
		},
		{
			name:    "added key",
			payload: map[string]any{"amount": 1000, "upi": "abc@upi", "extra": true},
			sig:     sig,
		},
		{
			name:    "flipped signature byte",
			payload: payload,
			sig:     flipHexByte(sig),
		},
		{
			name:    "signature not hex",
			payload: payload,
			sig:     "zz" + sig[2:],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := s.Verify(tt.payload, tt.sig)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSigner_DifferentKeysDisagree(t *testing.T) {
	s1, err := NewSigner(testKey())
	require.NoError(t, err)
	s2, err := NewSigner([]byte(strings.Repeat("q", 32)))
	require.NoError(t, err)

	payload := map[string]any{"x": "y"}
	sig, err := s1.Sign(payload)
	require.NoError(t, err)

	ok, err := s2.Verify(payload, sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func flipHexByte(sig string) string {
	b := []byte(sig)
	if b[0] == '0' {
		b[0] = '1'
	} else {
		b[0] = '0'
	}
	return string(b)
}
