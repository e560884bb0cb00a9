package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/factforge/factforge/pkg/llm"
)

// promptKind classifies a generation call by which pipeline stage issued
// it. The classifier is the only caller that does not ask for JSON; verdict
// and lesson prompts are told apart by the response shape they request.
type promptKind string

const (
	kindClassifier promptKind = "classifier"
	kindVerdict    promptKind = "verdict"
	kindLesson     promptKind = "lesson"
)

func kindOf(prompt string, opts llm.Options) promptKind {
	if !opts.JSONOutput {
		return kindClassifier
	}
	if strings.Contains(prompt, `"mini_lesson"`) {
		return kindLesson
	}
	return kindVerdict
}

// ProviderScriptEntry defines a single scripted generation response.
type ProviderScriptEntry struct {
	Text  string // raw model output returned by Generate
	Error error  // returned instead of Text when set
}

// ScriptedProvider implements llm.Provider with per-kind scripts: the
// pipeline interleaves classifier, verdict, and lesson prompts, so entries
// are routed by prompt kind rather than consumed in one global order. A
// kind with no remaining entries falls back to a canned default, so
// scenarios only script the calls they assert on.
type ScriptedProvider struct {
	name string

	mu      sync.Mutex
	down    bool
	scripts map[promptKind][]ProviderScriptEntry
	index   map[promptKind]int
	calls   []string // every prompt seen, in call order
}

// NewScriptedProvider creates a provider that answers from scripts.
func NewScriptedProvider(name string) *ScriptedProvider {
	return &ScriptedProvider{
		name:    name,
		scripts: make(map[promptKind][]ProviderScriptEntry),
		index:   make(map[promptKind]int),
	}
}

// AddClassifier appends a scripted response for classifier prompts.
func (p *ScriptedProvider) AddClassifier(entry ProviderScriptEntry) {
	p.add(kindClassifier, entry)
}

// AddVerdict appends a scripted response for verdict prompts.
func (p *ScriptedProvider) AddVerdict(entry ProviderScriptEntry) {
	p.add(kindVerdict, entry)
}

// AddLesson appends a scripted response for mini-lesson prompts.
func (p *ScriptedProvider) AddLesson(entry ProviderScriptEntry) {
	p.add(kindLesson, entry)
}

func (p *ScriptedProvider) add(kind promptKind, entry ProviderScriptEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scripts[kind] = append(p.scripts[kind], entry)
}

// SetDown simulates an outage: Generate fails and Available reports false
// until the flag is cleared.
func (p *ScriptedProvider) SetDown(down bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.down = down
}

// CallCount returns how many Generate calls the provider has served,
// including failed ones.
func (p *ScriptedProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

// Name implements llm.Provider.
func (p *ScriptedProvider) Name() string { return p.name }

// Available implements llm.Provider.
func (p *ScriptedProvider) Available(_ context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.down
}

// Generate implements llm.Provider.
func (p *ScriptedProvider) Generate(_ context.Context, prompt string, opts llm.Options) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, prompt)

	if p.down {
		return "", fmt.Errorf("%s: connection refused", p.name)
	}

	kind := kindOf(prompt, opts)
	entries := p.scripts[kind]
	i := p.index[kind]
	if i >= len(entries) {
		return defaultResponse(kind), nil
	}
	p.index[kind] = i + 1

	entry := entries[i]
	if entry.Error != nil {
		return "", entry.Error
	}
	return entry.Text, nil
}

// defaultResponse keeps unscripted calls moving: a neutral score for the
// classifier and well-formed placeholder JSON for the generation prompts.
func defaultResponse(kind promptKind) string {
	switch kind {
	case kindClassifier:
		return "0.5"
	case kindLesson:
		return `{"mini_lesson":"Claims that promise free money usually want yours.",` +
			`"tips":["Check the sender before you reply.","Real prizes never ask for a fee."],` +
			`"quiz":{"question":"What should you do first?",` +
			`"options":["A) Verify the source","B) Pay the fee","C) Forward it","D) Reply with your details"],` +
			`"answer":"A"}}`
	default:
		return `{"verdict":"UNVERIFIED","trust_score":50,"confidence":40,` +
			`"reasons":["No scripted verdict for this prompt."],` +
			`"evidence_list":[],"one_line_tip":"Cross-check before sharing."}`
	}
}
