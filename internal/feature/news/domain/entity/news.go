// Package entity defines the domain models for the news feature.
package entity

// Article is one scraped news headline. Press and Ts are best-effort:
// empty when the surrounding markup did not carry them.
type Article struct {
	Title string
	Link  string
	Press string
	Ts    string
}

// Summary is one generated daily news digest.
type Summary struct {
	Date        string // "YYYY-MM-DD"
	GeneratedAt string // RFC3339-ish local timestamp
	Summary     string
	Count       int // number of articles the digest was built from
}
