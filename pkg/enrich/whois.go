package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// DefaultWhoisBudget caps how long a lookup may hold up the enrichment
// loop. Domain age is a scoring signal, not a required field, so slow
// registries just lose their bonus weight.
const DefaultWhoisBudget = 2 * time.Second

// DomainInfo is the WHOIS-derived registration data for a domain.
type DomainInfo struct {
	Registrar string
	CreatedAt *time.Time
	ExpiresAt *time.Time
	AgeDays   *int
}

// Map renders the info as the whois_data JSON stored on an item.
func (d *DomainInfo) Map() map[string]any {
	out := map[string]any{}
	if d.Registrar != "" {
		out["registrar"] = d.Registrar
	}
	if d.CreatedAt != nil {
		out["created"] = d.CreatedAt.UTC().Format(time.RFC3339)
	}
	if d.ExpiresAt != nil {
		out["expires"] = d.ExpiresAt.UTC().Format(time.RFC3339)
	}
	if d.AgeDays != nil {
		out["age_days"] = *d.AgeDays
	}
	return out
}

// DomainResolver looks up registration data for a domain.
type DomainResolver interface {
	Lookup(ctx context.Context, domain string) (*DomainInfo, error)
}

// WhoisResolver resolves domains over live WHOIS within a hard time budget.
type WhoisResolver struct {
	client *whois.Client
	budget time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewWhoisResolver creates a resolver. A non-positive budget falls back to
// DefaultWhoisBudget.
func NewWhoisResolver(budget time.Duration, logger *slog.Logger) *WhoisResolver {
	if logger == nil {
		panic("enrich.NewWhoisResolver: logger must not be nil")
	}
	if budget <= 0 {
		budget = DefaultWhoisBudget
	}
	client := whois.NewClient()
	client.SetTimeout(budget)
	return &WhoisResolver{
		client: client,
		budget: budget,
		logger: logger.With("component", "enrich.whois"),
		now:    time.Now,
	}
}

// Lookup implements DomainResolver. The call never outlives the budget even
// when the underlying dial ignores its own timeout.
func (r *WhoisResolver) Lookup(ctx context.Context, domain string) (*DomainInfo, error) {
	if domain == "" {
		return nil, fmt.Errorf("domain is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, r.budget)
	defer cancel()

	type lookupResult struct {
		raw string
		err error
	}
	ch := make(chan lookupResult, 1)
	go func() {
		raw, err := r.client.Whois(domain)
		ch <- lookupResult{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("whois lookup for %s: %w", domain, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return nil, fmt.Errorf("whois lookup for %s failed: %w", domain, res.err)
		}
		return ParseWhois(res.raw, r.now())
	}
}

// ParseWhois extracts registration data from a raw WHOIS record. Age is
// computed against now and floored at zero for clock-skewed registries.
func ParseWhois(raw string, now time.Time) (*DomainInfo, error) {
	info, err := whoisparser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse whois record: %w", err)
	}

	out := &DomainInfo{}
	if info.Registrar != nil {
		out.Registrar = info.Registrar.Name
	}
	if info.Domain != nil {
		out.CreatedAt = info.Domain.CreatedDateInTime
		out.ExpiresAt = info.Domain.ExpirationDateInTime
	}
	if out.CreatedAt != nil {
		age := int(now.Sub(*out.CreatedAt).Hours() / 24)
		if age < 0 {
			age = 0
		}
		out.AgeDays = &age
	}
	return out, nil
}
