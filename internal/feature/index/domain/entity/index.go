// Package entity defines the domain models for the index feature.
package entity

// IndexQuote is a market index snapshot scraped from the upstream page.
// Change and ChangeRate are nil when the page fragment could not be parsed;
// Price is always present (a quote without it is an error, not a value).
type IndexQuote struct {
	Price      float64
	Change     *float64
	ChangeRate *float64
}

// DailyPoint is one reduced (date, close) point of an index series.
// Points are always derived live from the upstream and never persisted.
type DailyPoint struct {
	T string  // calendar date, "YYYY-MM-DD"
	V float64 // closing value
}
