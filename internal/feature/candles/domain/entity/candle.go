// Package entity defines the domain models for the candles feature.
package entity

// Timeframe tags the granularity of a candle series.
type Timeframe string

const (
	Timeframe1Min   Timeframe = "1m" // intraday, persisted via the push endpoint
	Timeframe1Day   Timeframe = "1d"
	Timeframe1Week  Timeframe = "1w"
	Timeframe1Month Timeframe = "1M"
)

// Candle represents one OHLCV (Open, High, Low, Close, Volume) bar for an
// instrument code at a point in time.
//
// T is the time key. For Timeframe1Min it is the opaque string supplied by
// the pusher (assumed lexically sortable, e.g. "09:30"); for every other
// timeframe it is a calendar date in "YYYY-MM-DD". (Code, Timeframe, T) is
// unique: a later write with the same key replaces the prior value.
type Candle struct {
	Code      string    // 6-digit instrument code (e.g. "005930")
	Timeframe Timeframe // granularity tag
	T         string    // time key, lexically sortable within one series
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    *float64 // nil when the source series has no volume column
}
