package models

// EnrichedItem is everything enrichment learned about one crawled URL,
// ready to persist. Nil maps and slices mean the corresponding pass was
// skipped or failed, which persistence stores as absent rather than empty.
type EnrichedItem struct {
	URL            string
	Domain         string
	RawHTMLPath    string
	ScreenshotPath string
	CleanText      string
	Language       Language
	LangConfidence float64
	HeuristicScore float64
	Translit       bool
	ImageHashes    []string
	WhoisData      map[string]any
	Metadata       map[string]any
}
