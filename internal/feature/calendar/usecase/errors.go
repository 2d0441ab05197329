// Package usecase はcalendarフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrMissingFields is returned when an event lacks its required
	// date or title.
	ErrMissingFields = errors.New("date and title are required")

	// ErrStoreCorrupt is returned when the persisted calendar file exists
	// but cannot be decoded. A missing file is not an error (empty calendar);
	// this is the "something broken" case callers may want to surface.
	ErrStoreCorrupt = errors.New("calendar store is corrupt")
)
