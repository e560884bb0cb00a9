// Package signals extracts fraud-signal patterns from content text and
// turns them into the heuristic score. Patterns are compiled once at init;
// keyword lists are fixed per language.
package signals

import "regexp"

// CompiledPattern is a named, pre-compiled extraction regex.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Description string
}

// Builtin extraction patterns. Names are stable; the admin API and tests
// refer to them.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "payment_handle",
		Regex:       regexp.MustCompile(`\b\w+@\w+\b`),
		Description: "UPI-style payment handles (name@bank)",
	},
	{
		Name:        "phone_in",
		Regex:       regexp.MustCompile(`(\+91|91)?[6-9]\d{9}`),
		Description: "Indian mobile numbers with optional country prefix",
	},
	{
		Name:        "rupee_amount",
		Regex:       regexp.MustCompile(`₹\s*\d+`),
		Description: "Rupee-denominated amounts",
	},
}

// Extraction holds the pattern hits for one text.
type Extraction struct {
	PaymentHandles  []string
	PhoneNumbers    []string
	CurrencyAmounts []string
}

// HasPaymentHandle reports whether any payment handle was found.
func (e Extraction) HasPaymentHandle() bool {
	return len(e.PaymentHandles) > 0
}

// Extract runs all builtin patterns over text.
func Extract(text string) Extraction {
	var out Extraction
	for _, p := range builtinPatterns {
		hits := p.Regex.FindAllString(text, -1)
		if len(hits) == 0 {
			continue
		}
		switch p.Name {
		case "payment_handle":
			out.PaymentHandles = hits
		case "phone_in":
			out.PhoneNumbers = hits
		case "rupee_amount":
			out.CurrencyAmounts = hits
		}
	}
	return out
}

// Patterns returns the builtin patterns, for listing and tests.
func Patterns() []*CompiledPattern {
	return builtinPatterns
}
