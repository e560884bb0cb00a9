package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/factforge/factforge/pkg/models"
)

func TestDetect_ScriptPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLang models.Language
		wantConf float64
	}{
		{
			name:     "devanagari",
			text:     "तत्काल ₹1000 UPI पर भेजें",
			wantLang: models.LanguageHindi,
			wantConf: 0.9,
		},
		{
			name:     "tamil",
			text:     "உடனடியாக பணம் அனுப்பவும்",
			wantLang: models.LanguageTamil,
			wantConf: 0.9,
		},
		{
			name:     "kannada",
			text:     "ತಕ್ಷಣ ಹಣ ಕಳುಹಿಸಿ",
			wantLang: models.LanguageKannada,
			wantConf: 0.9,
		},
		{
			name: "tamil wins over devanagari in mixed text",
			// Devanagari appears first in the string; precedence still
			// resolves to Tamil.
			text:     "भेजें என்பது",
			wantLang: models.LanguageTamil,
			wantConf: 0.9,
		},
		{
			name:     "devanagari wins over kannada in mixed text",
			text:     "ಹಣ भेजें",
			wantLang: models.LanguageHindi,
			wantConf: 0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, conf := Detect(tt.text)
			assert.Equal(t, tt.wantLang, lang)
			assert.InDelta(t, tt.wantConf, conf, 1e-9)
		})
	}
}

func TestDetect_EnglishWordlist(t *testing.T) {
	// 3 of 8 words are common: fraction 0.375 ≥ 0.3.
	lang, conf := Detect("the offer is in your inbox right now")
	assert.Equal(t, models.LanguageEnglish, lang)
	assert.InDelta(t, 0.375, conf, 1e-9)
	assert.GreaterOrEqual(t, conf, 0.3)
}

func TestDetect_LowSignalFallsBackToEnglish(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no common words", text: "xyzzy plugh foobar"},
		{name: "empty", text: ""},
		{name: "punctuation only", text: "!!! ??? ..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, conf := Detect(tt.text)
			assert.Equal(t, models.LanguageEnglish, lang)
			assert.InDelta(t, 0.5, conf, 1e-9)
		})
	}
}

func TestDetect_Deterministic(t *testing.T) {
	text := "lottery जीतें now"
	lang1, conf1 := Detect(text)
	for i := 0; i < 10; i++ {
		lang, conf := Detect(text)
		assert.Equal(t, lang1, lang)
		assert.Equal(t, conf1, conf)
	}
}

func TestIsTransliteratedHindi(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "three distinct markers",
			text: "paise bhejo aur jaldi karo kyunki offer khatam hone wala hai, bank ke paas jao",
			want: true,
		},
		{
			name: "repeated marker counts once",
			text: "hai hai hai hai",
			want: false,
		},
		{
			name: "two markers only",
			text: "ka kaam ki baat",
			want: false,
		},
		{
			name: "plain english",
			text: "send money to this account immediately",
			want: false,
		},
		{
			name: "empty",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransliteratedHindi(tt.text))
		})
	}
}
