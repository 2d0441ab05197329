// Package usecase はnewsフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrNoSummary is returned when no summary has been generated yet.
	ErrNoSummary = errors.New("no summary yet")

	// ErrSummaryCorrupt is returned when the persisted summary exists but
	// cannot be decoded. Distinguished from ErrNoSummary so callers can tell
	// "nothing there" from "something broken".
	ErrSummaryCorrupt = errors.New("stored summary is corrupt")
)
