// Package naver provides a client for the upstream public finance site:
// the siseJson time-series endpoint, the index pages, and the economy news
// section. The scraped formats carry no stability guarantee; everything here
// is best-effort parsing of a loosely-typed upstream.
package naver

import (
	"os"
	"time"
)

// Config holds configuration for the upstream client.
type Config struct {
	APIBaseURL   string        // siseJson host (e.g. "https://api.finance.naver.com")
	IndexBaseURL string        // index pages host (e.g. "https://finance.naver.com")
	NewsBaseURL  string        // news host (e.g. "https://news.naver.com")
	Timeout      time.Duration // HTTP request timeout
}

// LoadConfig loads the upstream client configuration from environment
// variables, with the public hosts as defaults.
func LoadConfig() Config {
	cfg := Config{
		APIBaseURL:   "https://api.finance.naver.com",
		IndexBaseURL: "https://finance.naver.com",
		NewsBaseURL:  "https://news.naver.com",
		Timeout:      10 * time.Second,
	}
	if v := os.Getenv("NAVER_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("NAVER_INDEX_BASE_URL"); v != "" {
		cfg.IndexBaseURL = v
	}
	if v := os.Getenv("NAVER_NEWS_BASE_URL"); v != "" {
		cfg.NewsBaseURL = v
	}
	return cfg
}
