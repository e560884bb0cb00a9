package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/factforge/factforge/pkg/models"
)

func TestBuildVerdictPrompt(t *testing.T) {
	evidence := []models.Evidence{
		{URL: "https://scam.example/offer", Label: "scam", TextSample: "free money guaranteed"},
		{URL: "https://news.example/story", Label: "benign"},
	}
	prompt := BuildVerdictPrompt(models.LanguageHindi, "RBI is giving away ₹5000", evidence)

	assert.Contains(t, prompt, "RBI is giving away ₹5000")
	assert.Contains(t, prompt, "1. [scam] https://scam.example/offer :: free money guaranteed")
	assert.Contains(t, prompt, "2. [benign] https://news.example/story")
	assert.Contains(t, prompt, `"verdict"`)
	assert.Contains(t, prompt, "PARTIALLY TRUE")
	assert.Contains(t, prompt, "Hindi")
}

func TestBuildVerdictPromptNoEvidence(t *testing.T) {
	prompt := BuildVerdictPrompt(models.LanguageEnglish, "some claim", nil)
	assert.Contains(t, prompt, "No similar previously-seen content")
	assert.Contains(t, prompt, "English")
}

func TestBuildVerdictPromptUnknownLanguageFallsBackToEnglish(t *testing.T) {
	prompt := BuildVerdictPrompt(models.Language("fr"), "some claim", nil)
	assert.Contains(t, prompt, "English")
}

func TestBuildLessonPrompt(t *testing.T) {
	result := models.VerdictResult{
		Verdict: models.VerdictFalse,
		Reasons: []string{"official denial exists"},
	}
	prompt := BuildLessonPrompt(models.LanguageTamil, "claim text", result)

	assert.Contains(t, prompt, "FALSE")
	assert.Contains(t, prompt, "claim text")
	assert.Contains(t, prompt, "official denial exists")
	assert.Contains(t, prompt, `"mini_lesson"`)
	assert.Contains(t, prompt, "Tamil")
}

func TestBuildClassifierPrompt(t *testing.T) {
	prompt := BuildClassifierPrompt(models.LanguageHindi, "win a lottery now")
	assert.Contains(t, prompt, "win a lottery now")
	assert.Contains(t, prompt, "ONLY a number")
	assert.Contains(t, prompt, "Language: Hindi")
	assert.Contains(t, prompt, "Urgency")
}
