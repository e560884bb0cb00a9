package models

// CrawlItemMessage is the payload the fetcher publishes to crawl.items.
// Paths are relative to the shared storage root, named by MD5 of the URL.
// Consumers must tolerate unknown extra fields.
type CrawlItemMessage struct {
	URL            string  `json:"url"`
	Domain         string  `json:"domain"`
	HTMLPath       string  `json:"html_path,omitempty"`
	ScreenshotPath string  `json:"screenshot_path,omitempty"`
	Text           string  `json:"text,omitempty"`
	CrawlTimestamp float64 `json:"crawl_timestamp,omitempty"`
}

// IngestMessage is the payload enrichment forwards to ingest.queue.
type IngestMessage struct {
	URL            string   `json:"url"`
	Language       Language `json:"language"`
	HeuristicScore float64  `json:"heuristic_score"`
	Timestamp      float64  `json:"timestamp"`
}
