// Package models contains the shared domain vocabulary: languages, labels,
// verdicts, queue message shapes, and review actions.
package models

// Language is one of the four supported content languages.
type Language string

const (
	LanguageHindi   Language = "hi"
	LanguageTamil   Language = "ta"
	LanguageKannada Language = "kn"
	LanguageEnglish Language = "en"

	// LanguageAuto asks the check pipeline to detect the language itself.
	// Never stored.
	LanguageAuto Language = "auto"
)

// Valid reports whether l is a storable language.
func (l Language) Valid() bool {
	switch l {
	case LanguageHindi, LanguageTamil, LanguageKannada, LanguageEnglish:
		return true
	}
	return false
}

// Languages lists the storable languages in threshold-map order.
func Languages() []Language {
	return []Language{LanguageHindi, LanguageTamil, LanguageKannada, LanguageEnglish}
}

// Label is the triage label of a crawled item.
type Label string

const (
	LabelPending     Label = "pending"
	LabelBenign      Label = "benign"
	LabelScam        Label = "scam"
	LabelNeedsReview Label = "needs_review"
)

// DefaultThresholds are the per-language auto-label thresholds used when no
// model version is active.
func DefaultThresholds() map[string]float64 {
	return map[string]float64{
		"en": 0.92,
		"hi": 0.90,
		"ta": 0.90,
		"kn": 0.90,
	}
}
