// Package usecase はローソク足データ操作のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrInvalidCode is returned when an instrument code does not match the
	// fixed 6-digit pattern. The message doubles as the HTTP error body.
	ErrInvalidCode = errors.New("code must be 6 digits")

	// ErrEmptyCandles is returned when an ingestion request carries no candles.
	ErrEmptyCandles = errors.New("candles must be a non-empty list")

	// ErrUnknownTimeframe is returned for timeframe tokens outside
	// {1m, 1d, 1w, 1M}. Callers wrap it with the offending token.
	ErrUnknownTimeframe = errors.New("unknown tf")
)
