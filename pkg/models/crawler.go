package models

// CrawlerStatus mirrors the counters the crawler fleet publishes to Redis.
type CrawlerStatus struct {
	IsRunning     bool   `json:"is_running"`
	LastRun       string `json:"last_run,omitempty"`
	URLsProcessed int    `json:"urls_processed"`
	Errors        int    `json:"errors"`
	ActiveWorkers int    `json:"active_workers"`
}
