package signals

import "github.com/factforge/factforge/pkg/models"

// Score weights. The component sum is multiplied by 10 and capped at 100.
const (
	keywordWeight       = 2.0
	urgencyWeight       = 1.5
	paymentHandleWeight = 3.0
	phoneWeight         = 2.0
	currencyWeight      = 1.0
	youngDomainWeight   = 5.0
	recentDomainWeight  = 2.0

	youngDomainAgeDays  = 30
	recentDomainAgeDays = 90

	maxScore = 100.0
)

// ScoreInput is everything the heuristic score consumes. DomainAgeDays is nil
// when WHOIS lookup failed or was skipped.
type ScoreInput struct {
	Text          string
	Language      models.Language
	Extraction    Extraction
	DomainAgeDays *int
}

// HeuristicScore computes the 0..100 fraud-signal score from keyword hits,
// urgency markers, extracted payment artifacts, and domain age.
func HeuristicScore(in ScoreInput) float64 {
	sum := 0.0
	sum += keywordWeight * float64(CountScamKeywords(in.Text, in.Language))
	sum += urgencyWeight * float64(CountUrgencyMarkers(in.Text))
	if in.Extraction.HasPaymentHandle() {
		sum += paymentHandleWeight
	}
	sum += phoneWeight * float64(len(in.Extraction.PhoneNumbers))
	sum += currencyWeight * float64(len(in.Extraction.CurrencyAmounts))
	if in.DomainAgeDays != nil {
		switch age := *in.DomainAgeDays; {
		case age < youngDomainAgeDays:
			sum += youngDomainWeight
		case age <= recentDomainAgeDays:
			sum += recentDomainWeight
		}
	}
	score := sum * 10
	if score > maxScore {
		return maxScore
	}
	return score
}
