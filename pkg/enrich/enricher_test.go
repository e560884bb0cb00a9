package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/pkg/broker"
	"github.com/factforge/factforge/pkg/models"
)

type fakeStore struct {
	mu    sync.Mutex
	items []models.EnrichedItem
	err   error
}

func (s *fakeStore) UpsertEnriched(_ context.Context, in models.EnrichedItem) (*ent.CrawledItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.items = append(s.items, in)
	return &ent.CrawledItem{ID: "item-1", URL: in.URL}, nil
}

func (s *fakeStore) all() []models.EnrichedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.EnrichedItem, len(s.items))
	copy(out, s.items)
	return out
}

type fakeOCR struct {
	mu       sync.Mutex
	text     string
	err      error
	gotPath  string
	gotLang  models.Language
	wasAsked bool
}

func (o *fakeOCR) ExtractText(_ context.Context, imagePath string, lang models.Language, _ bool) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.wasAsked = true
	o.gotPath = imagePath
	o.gotLang = lang
	return o.text, o.err
}

type fakeResolver struct {
	info *DomainInfo
	err  error
}

func (r *fakeResolver) Lookup(_ context.Context, _ string) (*DomainInfo, error) {
	return r.info, r.err
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, string, []byte) error {
	return errors.New("broker unavailable")
}

func writeArtifact(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func TestEnrichHappyPath(t *testing.T) {
	root := t.TempDir()
	url := "https://fraud.example/offer"
	htmlPath := HTMLPath(url)
	writeArtifact(t, root, htmlPath,
		`<html><head><title>Special Offer</title></head><body><p>Send ₹5000 to winner@paytm today</p></body></html>`)

	age := 45
	store := &fakeStore{}
	mem := broker.NewMemBroker()
	enricher := NewEnricher(NewFileStore(root), store, mem, nil,
		&fakeResolver{info: &DomainInfo{Registrar: "Example Registrar", AgeDays: &age}}, slog.Default())

	err := enricher.Enrich(t.Context(), models.CrawlItemMessage{
		URL:            url,
		Domain:         "fraud.example",
		HTMLPath:       htmlPath,
		CrawlTimestamp: 1756100000.5,
	})
	require.NoError(t, err)

	items := store.all()
	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, url, item.URL)
	assert.Equal(t, "Send ₹5000 to winner@paytm today", item.CleanText)
	assert.Equal(t, models.LanguageEnglish, item.Language)
	assert.False(t, item.Translit)

	// winner keyword (2.0) + payment handle (3.0) + one currency amount
	// (1.0) + 45-day-old domain (2.0), times ten.
	assert.InDelta(t, 80.0, item.HeuristicScore, 0.001)

	assert.Equal(t, 45, item.WhoisData["age_days"])
	assert.Equal(t, "Example Registrar", item.WhoisData["registrar"])
	assert.Equal(t, "Special Offer", item.Metadata["title"])
	assert.Equal(t, 1756100000.5, item.Metadata["crawl_timestamp"])
	assert.Equal(t, []string{"winner@paytm"}, item.Metadata["payment_handles"])
	assert.Equal(t, []string{"₹5000"}, item.Metadata["currency_amounts"])
	assert.NotContains(t, item.Metadata, "phone_numbers")

	require.Equal(t, 1, mem.Pending(broker.QueueIngest))
	deliveries, err := mem.Consume(t.Context(), broker.QueueIngest)
	require.NoError(t, err)
	d := <-deliveries

	var forwarded models.IngestMessage
	require.NoError(t, json.Unmarshal(d.Body, &forwarded))
	assert.Equal(t, url, forwarded.URL)
	assert.Equal(t, models.LanguageEnglish, forwarded.Language)
	assert.InDelta(t, 80.0, forwarded.HeuristicScore, 0.001)
	assert.Greater(t, forwarded.Timestamp, 0.0)
}

func TestEnrichFallsBackToInlineText(t *testing.T) {
	store := &fakeStore{}
	mem := broker.NewMemBroker()
	enricher := NewEnricher(NewFileStore(t.TempDir()), store, mem, nil, nil, slog.Default())

	err := enricher.Enrich(t.Context(), models.CrawlItemMessage{
		URL:      "https://a.example/post",
		Domain:   "a.example",
		HTMLPath: "raw_html/not-there.html",
		Text:     "Free money guaranteed, act now",
	})
	require.NoError(t, err)

	items := store.all()
	require.Len(t, items, 1)
	assert.Equal(t, "Free money guaranteed, act now", items[0].CleanText)
	assert.NotContains(t, items[0].Metadata, "title")
	assert.Nil(t, items[0].WhoisData)
}

func TestEnrichUsesOCRText(t *testing.T) {
	root := t.TempDir()
	ocr := &fakeOCR{text: "तुरंत पैसे भेजो ₹10000"}
	store := &fakeStore{}
	mem := broker.NewMemBroker()
	enricher := NewEnricher(NewFileStore(root), store, mem, ocr, nil, slog.Default())

	shot := "screenshots/abc.png"
	err := enricher.Enrich(t.Context(), models.CrawlItemMessage{
		URL:            "https://scam.example/img",
		Domain:         "scam.example",
		ScreenshotPath: shot,
	})
	require.NoError(t, err)

	require.True(t, ocr.wasAsked)
	assert.Equal(t, filepath.Join(root, shot), ocr.gotPath)

	items := store.all()
	require.Len(t, items, 1)
	assert.Equal(t, "तुरंत पैसे भेजो ₹10000", items[0].CleanText)
	// Language is re-detected after OCR so the Devanagari output wins.
	assert.Equal(t, models.LanguageHindi, items[0].Language)
	// The screenshot file never existed, so hashing degraded to no hashes.
	assert.Nil(t, items[0].ImageHashes)
}

func TestEnrichPersistFailureReturnsError(t *testing.T) {
	store := &fakeStore{err: errors.New("database down")}
	mem := broker.NewMemBroker()
	enricher := NewEnricher(NewFileStore(t.TempDir()), store, mem, nil, nil, slog.Default())

	err := enricher.Enrich(t.Context(), models.CrawlItemMessage{
		URL:    "https://a.example",
		Domain: "a.example",
		Text:   "anything",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist")
	assert.Zero(t, mem.Pending(broker.QueueIngest), "no handoff after failed persist")
}

func TestEnrichPublishFailureReturnsError(t *testing.T) {
	store := &fakeStore{}
	enricher := NewEnricher(NewFileStore(t.TempDir()), store, failingPublisher{}, nil, nil, slog.Default())

	err := enricher.Enrich(t.Context(), models.CrawlItemMessage{
		URL:    "https://a.example",
		Domain: "a.example",
		Text:   "anything",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest.queue")
}

func TestEnrichWhoisFailureDegrades(t *testing.T) {
	store := &fakeStore{}
	mem := broker.NewMemBroker()
	enricher := NewEnricher(NewFileStore(t.TempDir()), store, mem, nil,
		&fakeResolver{err: errors.New("registry timeout")}, slog.Default())

	err := enricher.Enrich(t.Context(), models.CrawlItemMessage{
		URL:    "https://b.example",
		Domain: "b.example",
		Text:   "hello there",
	})
	require.NoError(t, err)

	items := store.all()
	require.Len(t, items, 1)
	assert.Nil(t, items[0].WhoisData)
	assert.Equal(t, 1, mem.Pending(broker.QueueIngest))
}
