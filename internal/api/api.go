// Package api defines the shared HTTP request/response types for the public API.
package api

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse acknowledges a successful write with no payload.
type StatusResponse struct {
	Status string `json:"status"`
}

// CandleItem is one OHLCV bar as exposed over HTTP.
// Volume is null when the upstream series carries no volume column.
type CandleItem struct {
	Time   string   `json:"time"`
	Open   float64  `json:"open"`
	High   float64  `json:"high"`
	Low    float64  `json:"low"`
	Close  float64  `json:"close"`
	Volume *float64 `json:"volume"`
}

// CandlesResponse is the body of GET /api/stocks/candles.
type CandlesResponse struct {
	Code    string       `json:"code"`
	Name    string       `json:"name"`
	Tf      string       `json:"tf"`
	Candles []CandleItem `json:"candles"`
}

// PushCandle is one raw candle in an ingestion request. Numeric fields are
// left untyped so that tolerant coercion can decide per candle.
type PushCandle struct {
	T string `json:"t"`
	O any    `json:"o"`
	H any    `json:"h"`
	L any    `json:"l"`
	C any    `json:"c"`
	V any    `json:"v"`
}

// PushCandlesRequest is the body of POST /api/internal/push/candles.
type PushCandlesRequest struct {
	Code    string       `json:"code"`
	Candles []PushCandle `json:"candles"`
}
