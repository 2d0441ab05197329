// Package adapters はcalendarフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"market_backend/internal/feature/calendar/domain/entity"
	"market_backend/internal/feature/calendar/usecase"
)

// eventFile persists the whole calendar as one JSON document keyed by date.
// The document is small (personal-calendar scale), so load-modify-save per
// operation is fine; writes go through temp file + rename.
type eventFile struct {
	path string
}

var _ usecase.EventStore = (*eventFile)(nil)

// NewEventStore creates a file-backed EventStore at the given path.
func NewEventStore(path string) *eventFile {
	return &eventFile{path: path}
}

// Load reads the full calendar. A missing file is an empty calendar, not an
// error; undecodable contents map to ErrStoreCorrupt; other failures are
// I/O errors.
func (s *eventFile) Load() (map[string][]entity.Event, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string][]entity.Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read calendar: %w", err)
	}

	var data map[string][]entity.Event
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrStoreCorrupt, err)
	}
	if data == nil {
		data = map[string][]entity.Event{}
	}
	return data, nil
}

// Save writes the full calendar atomically.
func (s *eventFile) Save(data map[string][]entity.Event) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace calendar: %w", err)
	}
	return nil
}
