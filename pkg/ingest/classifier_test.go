package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/pkg/llm"
	"github.com/factforge/factforge/pkg/models"
)

// fakeGenerator returns a scripted completion and captures the call.
type fakeGenerator struct {
	out    string
	err    error
	prompt string
	opts   llm.Options
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, opts llm.Options) (string, error) {
	f.prompt = prompt
	f.opts = opts
	return f.out, f.err
}

func TestLLMClassifierScore(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want float64
	}{
		{"bare number", "0.93", 0.93},
		{"number in prose", "Score: 0.7 because of urgency cues", 0.7},
		{"clamped above one", "7", 1},
		{"no number degrades to neutral", "definitely a scam", NeutralScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLLMClassifier(&fakeGenerator{out: tt.out}, nil)

			score, err := c.Score(context.Background(), "free money now", models.LanguageEnglish)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, score, 1e-9)
		})
	}
}

func TestLLMClassifierPromptShape(t *testing.T) {
	gen := &fakeGenerator{out: "0.5"}
	c := NewLLMClassifier(gen, nil)

	_, err := c.Score(context.Background(), "win a lottery now", models.LanguageTamil)
	require.NoError(t, err)

	assert.Contains(t, gen.prompt, "win a lottery now")
	assert.Contains(t, gen.prompt, "Language: Tamil")
	assert.InDelta(t, classifierTemperature, gen.opts.Temperature, 1e-6)
	assert.False(t, gen.opts.JSONOutput)
}

func TestLLMClassifierGenerationFailureIsNeutral(t *testing.T) {
	c := NewLLMClassifier(&fakeGenerator{err: errors.New("all llm providers failed")}, nil)

	score, err := c.Score(context.Background(), "text", models.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, NeutralScore, score)
}

func TestLLMClassifierPropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewLLMClassifier(&fakeGenerator{err: context.Canceled}, nil)

	_, err := c.Score(ctx, "text", models.LanguageEnglish)
	assert.ErrorIs(t, err, context.Canceled)
}
