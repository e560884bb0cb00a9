package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/langdetect"
	"github.com/factforge/factforge/pkg/models"
	"github.com/factforge/factforge/pkg/signals"
)

// ItemStore persists enriched items.
type ItemStore interface {
	UpsertEnriched(ctx context.Context, in models.EnrichedItem) (*ent.CrawledItem, error)
}

// Enricher runs the full enrichment pass over one crawl message: text
// extraction, OCR, language detection, fraud signals, WHOIS, image hashes,
// persistence, and the handoff to the ingest queue.
type Enricher struct {
	files     *FileStore
	store     ItemStore
	publisher broker.Publisher
	ocr       OCR
	domains   DomainResolver
	logger    *slog.Logger
}

// NewEnricher creates an enricher. ocr and domains may be nil, which
// disables those passes.
func NewEnricher(files *FileStore, store ItemStore, publisher broker.Publisher, ocr OCR, domains DomainResolver, logger *slog.Logger) *Enricher {
	if files == nil {
		panic("enrich.NewEnricher: files must not be nil")
	}
	if store == nil {
		panic("enrich.NewEnricher: store must not be nil")
	}
	if publisher == nil {
		panic("enrich.NewEnricher: publisher must not be nil")
	}
	if logger == nil {
		panic("enrich.NewEnricher: logger must not be nil")
	}
	return &Enricher{
		files:     files,
		store:     store,
		publisher: publisher,
		ocr:       ocr,
		domains:   domains,
		logger:    logger.With("component", "enrich"),
	}
}

// Enrich processes one crawl message end to end. Auxiliary pass failures
// (OCR, WHOIS, hashing) degrade to missing fields; persistence and queue
// handoff failures are returned so the delivery can be rejected.
func (e *Enricher) Enrich(ctx context.Context, msg models.CrawlItemMessage) error {
	log := e.logger.With("url", msg.URL)

	text, title := e.extractText(log, msg)
	lang, conf := langdetect.Detect(text)
	translit := langdetect.IsTransliteratedHindi(text)

	// OCR can surface the real content when the HTML was a script shell,
	// so language runs again over the combined text.
	if ocrText := e.runOCR(ctx, log, msg, lang, translit); ocrText != "" {
		if text == "" {
			text = ocrText
		} else {
			text = text + "\n" + ocrText
		}
		lang, conf = langdetect.Detect(text)
		translit = langdetect.IsTransliteratedHindi(text)
	}

	extraction := signals.Extract(text)

	var whoisData map[string]any
	var ageDays *int
	if e.domains != nil && msg.Domain != "" {
		info, err := e.domains.Lookup(ctx, msg.Domain)
		if err != nil {
			log.Warn("whois lookup failed", "domain", msg.Domain, "error", err)
		} else {
			whoisData = info.Map()
			ageDays = info.AgeDays
		}
	}

	score := signals.HeuristicScore(signals.ScoreInput{
		Text:          text,
		Language:      lang,
		Extraction:    extraction,
		DomainAgeDays: ageDays,
	})

	var hashes []string
	if msg.ScreenshotPath != "" {
		abs, err := e.files.Abs(msg.ScreenshotPath)
		if err == nil {
			hashes, err = HashImageFile(abs)
		}
		if err != nil {
			log.Warn("screenshot hashing failed", "path", msg.ScreenshotPath, "error", err)
			hashes = nil
		}
	}

	metadata := map[string]any{}
	if title != "" {
		metadata["title"] = title
	}
	if msg.CrawlTimestamp > 0 {
		metadata["crawl_timestamp"] = msg.CrawlTimestamp
	}
	if len(extraction.PaymentHandles) > 0 {
		metadata["payment_handles"] = extraction.PaymentHandles
	}
	if len(extraction.PhoneNumbers) > 0 {
		metadata["phone_numbers"] = extraction.PhoneNumbers
	}
	if len(extraction.CurrencyAmounts) > 0 {
		metadata["currency_amounts"] = extraction.CurrencyAmounts
	}

	item, err := e.store.UpsertEnriched(ctx, models.EnrichedItem{
		URL:            msg.URL,
		Domain:         msg.Domain,
		RawHTMLPath:    msg.HTMLPath,
		ScreenshotPath: msg.ScreenshotPath,
		CleanText:      text,
		Language:       lang,
		LangConfidence: conf,
		HeuristicScore: score,
		Translit:       translit,
		ImageHashes:    hashes,
		WhoisData:      whoisData,
		Metadata:       metadata,
	})
	if err != nil {
		return fmt.Errorf("failed to persist enriched item: %w", err)
	}

	payload, err := json.Marshal(models.IngestMessage{
		URL:            msg.URL,
		Language:       lang,
		HeuristicScore: score,
		Timestamp:      float64(time.Now().UnixMilli()) / 1000,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal ingest message: %w", err)
	}
	if err := e.publisher.Publish(ctx, broker.QueueIngest, payload); err != nil {
		return fmt.Errorf("failed to forward %s to %s: %w", msg.URL, broker.QueueIngest, err)
	}

	log.Info("item enriched",
		"item_id", item.ID,
		"language", lang,
		"lang_confidence", conf,
		"heuristic_score", score,
		"translit", translit)
	return nil
}

// extractText prefers the stored raw HTML and falls back to the inline
// message text.
func (e *Enricher) extractText(log *slog.Logger, msg models.CrawlItemMessage) (text, title string) {
	if msg.HTMLPath == "" {
		return msg.Text, ""
	}
	raw, err := e.files.Read(msg.HTMLPath)
	if err != nil {
		log.Warn("failed to read raw html, using inline text", "path", msg.HTMLPath, "error", err)
		return msg.Text, ""
	}
	extracted, err := ExtractHTML(bytes.NewReader(raw))
	if err != nil {
		log.Warn("failed to parse raw html, using inline text", "path", msg.HTMLPath, "error", err)
		return msg.Text, ""
	}
	if extracted.Text == "" {
		return msg.Text, extracted.Title
	}
	return extracted.Text, extracted.Title
}

func (e *Enricher) runOCR(ctx context.Context, log *slog.Logger, msg models.CrawlItemMessage, lang models.Language, translit bool) string {
	if e.ocr == nil || msg.ScreenshotPath == "" {
		return ""
	}
	abs, err := e.files.Abs(msg.ScreenshotPath)
	if err != nil {
		log.Warn("invalid screenshot path", "path", msg.ScreenshotPath, "error", err)
		return ""
	}
	out, err := e.ocr.ExtractText(ctx, abs, lang, translit)
	if err != nil {
		log.Warn("ocr failed", "path", msg.ScreenshotPath, "error", err)
		return ""
	}
	return out
}
