package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// SwitchListener is notified after the active provider changes, whether by
// failover or by an explicit switch. Listeners run on the calling goroutine
// and must not block.
type SwitchListener func(from, to, reason string)

// ProviderStatus is one row of the selector's status snapshot.
type ProviderStatus struct {
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	Available bool   `json:"available"`
}

// Selector owns the ordered provider list and routes generation calls to
// the active one. A provider failure switches the active provider to the
// next in order and retries; the switch is sticky, so the system stays on
// the fallback until another failure or an explicit Switch moves it again.
type Selector struct {
	mu        sync.Mutex
	providers []Provider
	active    int
	onSwitch  SwitchListener
	logger    *slog.Logger
}

// NewSelector creates a selector with primary first in the rotation. Nil
// fallbacks are skipped so callers can pass optional providers directly.
func NewSelector(logger *slog.Logger, primary Provider, fallbacks ...Provider) *Selector {
	if logger == nil {
		panic("llm.NewSelector: logger must not be nil")
	}
	if primary == nil {
		panic("llm.NewSelector: primary provider must not be nil")
	}
	providers := []Provider{primary}
	for _, p := range fallbacks {
		if p != nil {
			providers = append(providers, p)
		}
	}
	return &Selector{
		providers: providers,
		logger:    logger.With("component", "llm.selector"),
	}
}

// OnSwitch registers the listener invoked after every provider change.
func (s *Selector) OnSwitch(fn SwitchListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSwitch = fn
}

// ActiveName returns the name of the provider generation currently targets.
func (s *Selector) ActiveName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.providers[s.active].Name()
}

// Generate runs the prompt against the active provider, failing over through
// the remaining providers on error. Context cancellation is returned as-is
// without demoting the provider that happened to be in flight.
func (s *Selector) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	var lastErr error
	for attempt := 0; attempt < len(s.providers); attempt++ {
		p := s.current()
		out, err := p.Generate(ctx, prompt, opts)
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		lastErr = err
		s.logger.Warn("llm generation failed",
			"provider", p.Name(),
			"error", err)
		if attempt < len(s.providers)-1 {
			s.failover(p.Name(), err)
		}
	}
	return "", fmt.Errorf("all llm providers failed: %w", lastErr)
}

// Switch makes the named provider active. Switching to the provider that is
// already active is a no-op.
func (s *Selector) Switch(name string) error {
	s.mu.Lock()
	for i, p := range s.providers {
		if p.Name() != name {
			continue
		}
		if i == s.active {
			s.mu.Unlock()
			return nil
		}
		from := s.providers[s.active].Name()
		s.active = i
		fn := s.onSwitch
		s.mu.Unlock()

		s.logger.Info("llm provider switched",
			"from", from,
			"to", name,
			"reason", "manual switch")
		if fn != nil {
			fn(from, name, "manual switch")
		}
		return nil
	}
	s.mu.Unlock()
	return fmt.Errorf("%w: %q", ErrUnknownProvider, name)
}

// Status reports every provider with its availability and whether it is the
// active one.
func (s *Selector) Status(ctx context.Context) []ProviderStatus {
	s.mu.Lock()
	active := s.active
	providers := s.providers
	s.mu.Unlock()

	out := make([]ProviderStatus, len(providers))
	for i, p := range providers {
		out[i] = ProviderStatus{
			Name:      p.Name(),
			Active:    i == active,
			Available: p.Available(ctx),
		}
	}
	return out
}

func (s *Selector) current() Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.providers[s.active]
}

func (s *Selector) failover(from string, cause error) {
	s.mu.Lock()
	next := (s.active + 1) % len(s.providers)
	to := s.providers[next].Name()
	s.active = next
	fn := s.onSwitch
	s.mu.Unlock()

	reason := fmt.Sprintf("failover: %v", cause)
	s.logger.Info("llm provider switched",
		"from", from,
		"to", to,
		"reason", reason)
	if fn != nil {
		fn(from, to, reason)
	}
}
