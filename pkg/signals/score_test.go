package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/factforge/factforge/pkg/models"
)

func TestCountScamKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang models.Language
		want int
	}{
		{
			name: "english keywords case insensitive",
			text: "URGENT: you are a lottery WINNER, act now!",
			lang: models.LanguageEnglish,
			want: 4,
		},
		{
			name: "hindi keywords",
			text: "तुरंत लॉटरी विजेता",
			lang: models.LanguageHindi,
			want: 3,
		},
		{
			name: "keyword counted once despite repetition",
			text: "urgent urgent urgent",
			lang: models.LanguageEnglish,
			want: 1,
		},
		{
			name: "unknown language",
			text: "urgent winner",
			lang: models.Language("xx"),
			want: 0,
		},
		{
			name: "no keywords",
			text: "a calm report about the weather",
			lang: models.LanguageEnglish,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountScamKeywords(tt.text, tt.lang))
		})
	}
}

func TestCountUrgencyMarkers(t *testing.T) {
	assert.Equal(t, 3, CountUrgencyMarkers("Offer EXPIRES soon, hurry, limited stock"))
	assert.Equal(t, 0, CountUrgencyMarkers("nothing pressing here"))
}

func TestHeuristicScore(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name string
		in   ScoreInput
		want float64
	}{
		{
			name: "no signals",
			in:   ScoreInput{Text: "a calm and neutral note", Language: models.LanguageEnglish},
			want: 0,
		},
		{
			// "urgent" is both a scam keyword and an urgency marker.
			name: "keyword and urgency overlap",
			in:   ScoreInput{Text: "urgent", Language: models.LanguageEnglish},
			want: 35,
		},
		{
			name: "single phone number",
			in:   ScoreInput{Extraction: Extraction{PhoneNumbers: []string{"9876543210"}}},
			want: 20,
		},
		{
			name: "currency amounts",
			in:   ScoreInput{Extraction: Extraction{CurrencyAmounts: []string{"₹100", "₹200", "₹300"}}},
			want: 30,
		},
		{
			name: "payment handle presence is flat",
			in:   ScoreInput{Extraction: Extraction{PaymentHandles: []string{"a@upi", "b@upi"}}},
			want: 30,
		},
		{
			name: "domain younger than 30 days",
			in:   ScoreInput{DomainAgeDays: intPtr(29)},
			want: 50,
		},
		{
			name: "domain exactly 30 days",
			in:   ScoreInput{DomainAgeDays: intPtr(30)},
			want: 20,
		},
		{
			name: "domain exactly 90 days",
			in:   ScoreInput{DomainAgeDays: intPtr(90)},
			want: 20,
		},
		{
			name: "domain older than 90 days",
			in:   ScoreInput{DomainAgeDays: intPtr(91)},
			want: 0,
		},
		{
			name: "unknown domain age adds nothing",
			in:   ScoreInput{DomainAgeDays: nil},
			want: 0,
		},
		{
			name: "score capped at 100",
			in: ScoreInput{
				Text:     "urgent guaranteed lottery winner free money limited time act now hurry expires immediate",
				Language: models.LanguageEnglish,
				Extraction: Extraction{
					PaymentHandles:  []string{"scam@upi"},
					PhoneNumbers:    []string{"9876543210", "9123456789"},
					CurrencyAmounts: []string{"₹500", "₹1000"},
				},
				DomainAgeDays: intPtr(10),
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HeuristicScore(tt.in), 0.0001)
		})
	}
}

func TestHeuristicScoreFromExtractedText(t *testing.T) {
	text := "Send ₹500 to claim@upi"
	score := HeuristicScore(ScoreInput{
		Text:       text,
		Language:   models.LanguageEnglish,
		Extraction: Extract(text),
	})
	// payment handle (+3) and one rupee amount (+1): 4.0 * 10.
	assert.InDelta(t, 40.0, score, 0.0001)
}
