// Package langdetect implements deterministic language detection for the
// four supported languages. Script ranges decide first, with a fixed
// precedence so mixed-script text always resolves the same way; Latin-only
// text falls back to an English common-word check.
package langdetect

import (
	"strings"
	"unicode"

	"github.com/factforge/factforge/pkg/models"
)

// ScriptConfidence is reported whenever an Indic script range matches.
const ScriptConfidence = 0.9

// englishFractionFloor is the common-word fraction above which text counts
// as confidently English.
const englishFractionFloor = 0.3

var englishCommonWords = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "in": {}, "to": {},
	"of": {}, "a": {}, "that": {}, "it": {}, "with": {},
}

// hindiRomanizationMarkers are function words that survive romanization;
// three or more in English-detected text flag transliterated Hindi.
var hindiRomanizationMarkers = []string{
	"hai", "hain", "ka", "ki", "ke", "ko", "se", "mein", "par", "aur",
}

// TranslitMarkerFloor is the number of distinct romanization markers needed
// to set the transliteration flag.
const TranslitMarkerFloor = 3

// Detect returns the detected language and a confidence in [0,1].
//
// Precedence: Tamil script (U+0B80–U+0BFF), then Devanagari
// (U+0900–U+097F), then Kannada (U+0C80–U+0CFF). Any hit is confidence 0.9.
// Otherwise the English common-word fraction decides: fraction ≥ 0.3 means
// English with that fraction as confidence, else English at 0.5.
func Detect(text string) (models.Language, float64) {
	hasTamil, hasDevanagari, hasKannada := scanScripts(text)
	switch {
	case hasTamil:
		return models.LanguageTamil, ScriptConfidence
	case hasDevanagari:
		return models.LanguageHindi, ScriptConfidence
	case hasKannada:
		return models.LanguageKannada, ScriptConfidence
	}

	words := tokenize(text)
	if len(words) > 0 {
		matches := 0
		for _, w := range words {
			if _, ok := englishCommonWords[w]; ok {
				matches++
			}
		}
		fraction := float64(matches) / float64(len(words))
		if fraction >= englishFractionFloor {
			return models.LanguageEnglish, fraction
		}
	}
	return models.LanguageEnglish, 0.5
}

// IsTransliteratedHindi reports whether text contains at least three
// distinct Hindi romanization markers. Only meaningful for English-detected
// text; the caller applies that guard.
func IsTransliteratedHindi(text string) bool {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	found := 0
	for _, marker := range hindiRomanizationMarkers {
		if _, ok := set[marker]; ok {
			found++
			if found >= TranslitMarkerFloor {
				return true
			}
		}
	}
	return false
}

func scanScripts(text string) (tamil, devanagari, kannada bool) {
	for _, r := range text {
		switch {
		case r >= 0x0B80 && r <= 0x0BFF:
			tamil = true
		case r >= 0x0900 && r <= 0x097F:
			devanagari = true
		case r >= 0x0C80 && r <= 0x0CFF:
			kannada = true
		}
		if tamil {
			// Highest precedence; no later rune can change the outcome.
			return
		}
	}
	return
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
