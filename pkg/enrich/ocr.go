package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/factforge/factforge/pkg/models"
)

// OCR extracts text from a screenshot image.
type OCR interface {
	ExtractText(ctx context.Context, imagePath string, lang models.Language, translit bool) (string, error)
}

// ocrLanguages maps content languages to tesseract traineddata codes.
var ocrLanguages = map[models.Language]string{
	models.LanguageHindi:   "hin",
	models.LanguageTamil:   "tam",
	models.LanguageKannada: "kan",
	models.LanguageEnglish: "eng",
}

// Tesseract shells out to the tesseract binary. The process boundary keeps
// a crashing recognizer from taking the worker down with it.
type Tesseract struct {
	binPath string
	logger  *slog.Logger
}

// NewTesseract creates an OCR backed by the tesseract binary at binPath.
// An empty binPath resolves "tesseract" from PATH.
func NewTesseract(binPath string, logger *slog.Logger) *Tesseract {
	if logger == nil {
		panic("enrich.NewTesseract: logger must not be nil")
	}
	if binPath == "" {
		binPath = "tesseract"
	}
	return &Tesseract{
		binPath: binPath,
		logger:  logger.With("component", "enrich.ocr"),
	}
}

// ExtractText implements OCR. Screenshots of transliterated content mix
// Latin and Devanagari, so those also run the Hindi recognizer and the
// longer result wins.
func (t *Tesseract) ExtractText(ctx context.Context, imagePath string, lang models.Language, translit bool) (string, error) {
	code, ok := ocrLanguages[lang]
	if !ok {
		code = "eng"
	}
	codes := []string{code}
	if translit && code != "hin" {
		codes = append(codes, "hin")
	}

	var best string
	var lastErr error
	for _, c := range codes {
		out, err := t.run(ctx, imagePath, c)
		if err != nil {
			lastErr = err
			continue
		}
		if len(out) > len(best) {
			best = out
		}
	}
	if best == "" && lastErr != nil {
		return "", lastErr
	}
	return best, nil
}

func (t *Tesseract) run(ctx context.Context, imagePath, langCode string) (string, error) {
	cmd := exec.CommandContext(ctx, t.binPath, imagePath, "stdout", "-l", langCode)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("tesseract -l %s failed: %s", langCode, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("tesseract -l %s failed: %w", langCode, err)
	}
	return strings.TrimSpace(string(out)), nil
}
