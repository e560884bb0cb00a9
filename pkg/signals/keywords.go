package signals

import (
	"strings"

	"github.com/factforge/factforge/pkg/models"
)

// scamKeywords are the per-language keyword lists. Matching is
// case-insensitive substring containment; each distinct keyword counts once.
var scamKeywords = map[models.Language][]string{
	models.LanguageEnglish: {
		"urgent", "limited time", "act now", "guaranteed",
		"free money", "lottery", "winner",
	},
	models.LanguageHindi: {
		"तुरंत", "सीमित समय", "अभी करें", "गारंटी",
		"मुफ्त पैसा", "लॉटरी", "विजेता",
	},
	models.LanguageTamil: {
		"அவசரம்", "வரையறுக்கப்பட்ட", "இப்போது", "உத்தரவாதம்",
		"இலவச பணம்", "லாட்டரி", "வெற்றியாளர்",
	},
	models.LanguageKannada: {
		"ತುರ್ತು", "ಸೀಮಿತ", "ಈಗಲೇ", "ಖಾತರಿ",
		"ಉಚಿತ ಹಣ", "ಲಾಟರಿ", "ವಿಜೇತ",
	},
}

// urgencyMarkers are matched regardless of language.
var urgencyMarkers = []string{
	"urgent", "immediate", "hurry", "limited", "expires",
}

// CountScamKeywords returns how many of the language's scam keywords appear
// in text.
func CountScamKeywords(text string, lang models.Language) int {
	keywords, ok := scamKeywords[lang]
	if !ok {
		return 0
	}
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}

// CountUrgencyMarkers returns how many urgency markers appear in text.
func CountUrgencyMarkers(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, marker := range urgencyMarkers {
		if strings.Contains(lower, marker) {
			count++
		}
	}
	return count
}
