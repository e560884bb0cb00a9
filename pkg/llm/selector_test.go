package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedProvider struct {
	name      string
	out       string
	err       error
	available bool
	calls     int
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.out, nil
}

func (p *scriptedProvider) Available(ctx context.Context) bool { return p.available }

type switchRecord struct {
	from, to, reason string
}

func TestSelectorGenerateUsesPrimary(t *testing.T) {
	primary := &scriptedProvider{name: ProviderGemini, out: "primary answer"}
	fallback := &scriptedProvider{name: ProviderOllama, out: "fallback answer"}
	sel := NewSelector(slog.Default(), primary, fallback)

	out, err := sel.Generate(context.Background(), "prompt", Options{})
	require.NoError(t, err)
	assert.Equal(t, "primary answer", out)
	assert.Equal(t, ProviderGemini, sel.ActiveName())
	assert.Equal(t, 0, fallback.calls)
}

func TestSelectorFailoverIsSticky(t *testing.T) {
	primary := &scriptedProvider{name: ProviderGemini, err: errors.New("quota exceeded")}
	fallback := &scriptedProvider{name: ProviderOllama, out: "fallback answer"}
	sel := NewSelector(slog.Default(), primary, fallback)

	var switches []switchRecord
	sel.OnSwitch(func(from, to, reason string) {
		switches = append(switches, switchRecord{from, to, reason})
	})

	out, err := sel.Generate(context.Background(), "prompt", Options{})
	require.NoError(t, err)
	assert.Equal(t, "fallback answer", out)
	assert.Equal(t, ProviderOllama, sel.ActiveName())

	require.Len(t, switches, 1)
	assert.Equal(t, ProviderGemini, switches[0].from)
	assert.Equal(t, ProviderOllama, switches[0].to)
	assert.Contains(t, switches[0].reason, "failover")

	// The next call goes straight to the fallback.
	_, err = sel.Generate(context.Background(), "prompt", Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 2, fallback.calls)
	assert.Len(t, switches, 1)
}

func TestSelectorAllProvidersFail(t *testing.T) {
	primary := &scriptedProvider{name: ProviderGemini, err: errors.New("quota exceeded")}
	fallback := &scriptedProvider{name: ProviderOllama, err: errors.New("connection refused")}
	sel := NewSelector(slog.Default(), primary, fallback)

	_, err := sel.Generate(context.Background(), "prompt", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all llm providers failed")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSelectorContextCancellationDoesNotDemote(t *testing.T) {
	primary := &scriptedProvider{name: ProviderGemini, err: errors.New("interrupted")}
	fallback := &scriptedProvider{name: ProviderOllama, out: "unused"}
	sel := NewSelector(slog.Default(), primary, fallback)

	called := false
	sel.OnSwitch(func(from, to, reason string) { called = true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sel.Generate(ctx, "prompt", Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ProviderGemini, sel.ActiveName())
	assert.False(t, called)
	assert.Equal(t, 0, fallback.calls)
}

func TestSelectorSwitch(t *testing.T) {
	primary := &scriptedProvider{name: ProviderGemini}
	fallback := &scriptedProvider{name: ProviderOllama}
	sel := NewSelector(slog.Default(), primary, fallback)

	var switches []switchRecord
	sel.OnSwitch(func(from, to, reason string) {
		switches = append(switches, switchRecord{from, to, reason})
	})

	require.NoError(t, sel.Switch(ProviderOllama))
	assert.Equal(t, ProviderOllama, sel.ActiveName())
	require.Len(t, switches, 1)
	assert.Equal(t, "manual switch", switches[0].reason)

	// Switching to the already-active provider is a no-op.
	require.NoError(t, sel.Switch(ProviderOllama))
	assert.Len(t, switches, 1)

	err := sel.Switch("mistral")
	require.ErrorIs(t, err, ErrUnknownProvider)
	assert.Equal(t, ProviderOllama, sel.ActiveName())
}

func TestSelectorStatus(t *testing.T) {
	primary := &scriptedProvider{name: ProviderGemini, available: true}
	fallback := &scriptedProvider{name: ProviderOllama, available: false}
	sel := NewSelector(slog.Default(), primary, fallback)

	status := sel.Status(context.Background())
	require.Len(t, status, 2)
	assert.Equal(t, ProviderStatus{Name: ProviderGemini, Active: true, Available: true}, status[0])
	assert.Equal(t, ProviderStatus{Name: ProviderOllama, Active: false, Available: false}, status[1])
}

func TestSelectorSkipsNilFallbacks(t *testing.T) {
	primary := &scriptedProvider{name: ProviderOllama, out: "ok"}
	sel := NewSelector(slog.Default(), primary, nil)

	out, err := sel.Generate(context.Background(), "prompt", Options{})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Len(t, sel.Status(context.Background()), 1)
}
