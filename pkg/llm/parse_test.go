package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/pkg/models"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.VerdictResult
	}{
		{
			name: "clean json",
			raw: `{"verdict":"FALSE","trust_score":12,"confidence":90,` +
				`"reasons":["known hoax"],"evidence_list":["https://a.example"],` +
				`"one_line_tip":"Do not share."}`,
			want: models.VerdictResult{
				Verdict:      models.VerdictFalse,
				TrustScore:   12,
				Confidence:   90,
				Reasons:      []string{"known hoax"},
				EvidenceList: []string{"https://a.example"},
				OneLineTip:   "Do not share.",
			},
		},
		{
			name: "markdown fenced json",
			raw: "```json\n" +
				`{"verdict":"TRUE","trust_score":95,"confidence":80,"reasons":[],"evidence_list":[],"one_line_tip":"ok"}` +
				"\n```",
			want: models.VerdictResult{
				Verdict:      models.VerdictTrue,
				TrustScore:   95,
				Confidence:   80,
				Reasons:      []string{},
				EvidenceList: []string{},
				OneLineTip:   "ok",
			},
		},
		{
			name: "json wrapped in prose",
			raw: `Here is my analysis: {"verdict":"MISLEADING","trust_score":40,"confidence":60,` +
				`"reasons":["half true"],"evidence_list":[],"one_line_tip":"check dates"} Hope this helps!`,
			want: models.VerdictResult{
				Verdict:      models.VerdictMisleading,
				TrustScore:   40,
				Confidence:   60,
				Reasons:      []string{"half true"},
				EvidenceList: []string{},
				OneLineTip:   "check dates",
			},
		},
		{
			name: "lowercase verdict normalized",
			raw:  `{"verdict":"partially true","trust_score":55,"confidence":50}`,
			want: models.VerdictResult{
				Verdict:      models.VerdictPartiallyTrue,
				TrustScore:   55,
				Confidence:   50,
				Reasons:      []string{},
				EvidenceList: []string{},
			},
		},
		{
			name: "unknown verdict becomes unverified",
			raw:  `{"verdict":"MAYBE","trust_score":50,"confidence":50}`,
			want: models.VerdictResult{
				Verdict:      models.VerdictUnverified,
				TrustScore:   50,
				Confidence:   50,
				Reasons:      []string{},
				EvidenceList: []string{},
			},
		},
		{
			name: "scores clamped",
			raw:  `{"verdict":"TRUE","trust_score":150,"confidence":140}`,
			want: models.VerdictResult{
				Verdict:      models.VerdictTrue,
				TrustScore:   100,
				Confidence:   100,
				Reasons:      []string{},
				EvidenceList: []string{},
			},
		},
		{
			name: "unparseable output falls back",
			raw:  "I cannot determine this.",
			want: FallbackVerdict(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVerdict(tt.raw))
		})
	}
}

func TestParseLesson(t *testing.T) {
	t.Run("valid lesson with answer normalization", func(t *testing.T) {
		raw := `{"mini_lesson":"Lottery scams promise free money.","tips":["Never pay to claim a prize"],` +
			`"quiz":{"question":"What is a red flag?","options":["A) News","B) Weather","C) Free money","D) Sports"],"answer":"c)"}}`
		got := ParseLesson(raw)
		assert.Equal(t, "Lottery scams promise free money.", got.MiniLesson)
		assert.Equal(t, []string{"Never pay to claim a prize"}, got.Tips)
		assert.Equal(t, "C", got.Quiz.Answer)
	})

	t.Run("garbage falls back with answer B", func(t *testing.T) {
		got := ParseLesson("sorry, I can't do that")
		assert.Equal(t, FallbackLesson(), got)
		assert.Equal(t, "B", got.Quiz.Answer)
		assert.Len(t, got.Quiz.Options, 4)
	})

	t.Run("empty lesson body falls back", func(t *testing.T) {
		got := ParseLesson(`{"mini_lesson":"  ","tips":[]}`)
		assert.Equal(t, FallbackLesson(), got)
	})

	t.Run("missing quiz keeps lesson text and borrows canned quiz", func(t *testing.T) {
		got := ParseLesson(`{"mini_lesson":"Check the source.","tips":["tip"]}`)
		assert.Equal(t, "Check the source.", got.MiniLesson)
		assert.Equal(t, FallbackLesson().Quiz, got.Quiz)
	})
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "bare number", raw: "0.85", want: 0.85},
		{name: "number with prose", raw: "Score: 0.3 based on the content", want: 0.3},
		{name: "above range clamped", raw: "2.5", want: 1},
		{name: "negative clamped", raw: "-1", want: 0},
		{name: "no number", raw: "no digits here", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScore(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestFallbackVerdict(t *testing.T) {
	fb := FallbackVerdict()
	assert.Equal(t, models.VerdictUnverified, fb.Verdict)
	assert.Zero(t, fb.TrustScore)
	assert.Zero(t, fb.Confidence)
	assert.NotEmpty(t, fb.Reasons)
	assert.NotEmpty(t, fb.OneLineTip)
}
