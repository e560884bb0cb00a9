package llm

import (
	"fmt"
	"strings"

	"github.com/factforge/factforge/pkg/models"
)

// Free-text fields come back in the user's language; the JSON keys stay
// English so one parser covers all four languages.
var answerLanguageLines = map[models.Language]string{
	models.LanguageEnglish: "Write the reasons, one_line_tip, and all other free text in English.",
	models.LanguageHindi:   "Write the reasons, one_line_tip, and all other free text in Hindi (हिन्दी).",
	models.LanguageTamil:   "Write the reasons, one_line_tip, and all other free text in Tamil (தமிழ்).",
	models.LanguageKannada: "Write the reasons, one_line_tip, and all other free text in Kannada (ಕನ್ನಡ).",
}

var lessonLanguageLines = map[models.Language]string{
	models.LanguageEnglish: "Write every field in English.",
	models.LanguageHindi:   "Write every field in Hindi (हिन्दी).",
	models.LanguageTamil:   "Write every field in Tamil (தமிழ்).",
	models.LanguageKannada: "Write every field in Kannada (ಕನ್ನಡ).",
}

func answerLanguageLine(m map[models.Language]string, lang models.Language) string {
	if line, ok := m[lang]; ok {
		return line
	}
	return m[models.LanguageEnglish]
}

var languageNames = map[models.Language]string{
	models.LanguageEnglish: "English",
	models.LanguageHindi:   "Hindi",
	models.LanguageTamil:   "Tamil",
	models.LanguageKannada: "Kannada",
}

func languageName(lang models.Language) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return "English"
}

// BuildVerdictPrompt renders the fact-check instruction for one claim with
// the retrieved evidence numbered in retrieval order.
func BuildVerdictPrompt(lang models.Language, claim string, evidence []models.Evidence) string {
	var b strings.Builder
	b.WriteString("You are a careful fact-checking assistant for online content circulating in India.\n\n")
	b.WriteString("Claim to check:\n")
	b.WriteString(strings.TrimSpace(claim))
	b.WriteString("\n\n")

	if len(evidence) == 0 {
		b.WriteString("No similar previously-seen content was found.\n\n")
	} else {
		b.WriteString("Similar previously-seen content, closest first:\n")
		for i, ev := range evidence {
			fmt.Fprintf(&b, "%d. [%s] %s", i+1, ev.Label, ev.URL)
			if ev.TextSample != "" {
				fmt.Fprintf(&b, " :: %s", ev.TextSample)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Judge the claim against the evidence and your own knowledge.\n")
	b.WriteString("Respond with ONLY a JSON object, no prose before or after, in exactly this shape:\n")
	b.WriteString(`{"verdict":"TRUE|FALSE|MISLEADING|UNVERIFIED|PARTIALLY TRUE",` +
		`"trust_score":0,"confidence":0,"reasons":["..."],` +
		`"evidence_list":["url of each evidence item you relied on"],` +
		`"one_line_tip":"..."}` + "\n")
	b.WriteString("trust_score is 0-100 where 100 means fully trustworthy. confidence is 0-100 where 100 means completely confident.\n")
	b.WriteString(answerLanguageLine(answerLanguageLines, lang))
	b.WriteString("\n")
	return b.String()
}

// BuildLessonPrompt renders the mini-lesson instruction for a claim already
// judged FALSE or MISLEADING.
func BuildLessonPrompt(lang models.Language, claim string, result models.VerdictResult) string {
	var b strings.Builder
	b.WriteString("You teach everyday readers how to spot misinformation.\n\n")
	fmt.Fprintf(&b, "A claim was just judged %s:\n", result.Verdict)
	b.WriteString(strings.TrimSpace(claim))
	b.WriteString("\n\n")

	if len(result.Reasons) > 0 {
		b.WriteString("The fact-check gave these reasons:\n")
		for _, r := range result.Reasons {
			b.WriteString("- ")
			b.WriteString(r)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Write a short lesson that helps the reader recognize this kind of claim next time.\n")
	b.WriteString("Respond with ONLY a JSON object, no prose before or after, in exactly this shape:\n")
	b.WriteString(`{"mini_lesson":"2-3 sentences","tips":["...","..."],` +
		`"quiz":{"question":"...","options":["A) ...","B) ...","C) ...","D) ..."],"answer":"A"}}` + "\n")
	b.WriteString("The quiz answer must be the single letter A, B, C, or D.\n")
	b.WriteString(answerLanguageLine(lessonLanguageLines, lang))
	b.WriteString("\n")
	return b.String()
}

// BuildClassifierPrompt renders the scam-likelihood scoring instruction used
// by the ingest classifier. The model returns a bare number.
func BuildClassifierPrompt(lang models.Language, text string) string {
	var b strings.Builder
	b.WriteString("Rate how likely the following content is a scam or deliberate misinformation.\n")
	b.WriteString("Respond with ONLY a number between 0.0 and 1.0 where 1.0 means certainly a scam. No other text.\n\n")
	b.WriteString("Content:\n")
	b.WriteString(strings.TrimSpace(text))
	b.WriteString("\n\nLanguage: ")
	b.WriteString(languageName(lang))
	b.WriteString("\n\nConsider these factors:\n")
	b.WriteString("- Urgency and pressure tactics\n")
	b.WriteString("- Promises of easy money or prizes\n")
	b.WriteString("- Requests for personal information or payment\n")
	b.WriteString("- Suspicious URLs or contact methods\n")
	b.WriteString("- Grammatical errors or unprofessional language\n")
	return b.String()
}
