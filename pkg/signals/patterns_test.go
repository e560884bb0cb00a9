package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantHandles    []string
		wantPhones     []string
		wantAmounts    []string
		wantHasPayment bool
	}{
		{
			name:           "payment handle",
			text:           "Send money to winner@paytm today",
			wantHandles:    []string{"winner@paytm"},
			wantHasPayment: true,
		},
		{
			name:       "phone numbers with and without country code",
			text:       "Call +919876543210 or 9123456789",
			wantPhones: []string{"+919876543210", "9123456789"},
		},
		{
			name:        "rupee amounts with optional space",
			text:        "Win ₹50000 now, entry fee ₹ 100",
			wantAmounts: []string{"₹50000", "₹ 100"},
		},
		{
			name: "no signals",
			text: "A calm report about the weather.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			assert.Equal(t, tt.wantHandles, got.PaymentHandles)
			assert.Equal(t, tt.wantPhones, got.PhoneNumbers)
			assert.Equal(t, tt.wantAmounts, got.CurrencyAmounts)
			assert.Equal(t, tt.wantHasPayment, got.HasPaymentHandle())
		})
	}
}

func TestPatterns(t *testing.T) {
	names := make(map[string]bool)
	for _, p := range Patterns() {
		names[p.Name] = true
	}
	assert.True(t, names["payment_handle"])
	assert.True(t, names["phone_in"])
	assert.True(t, names["rupee_amount"])
}
