// Package adapters はnewsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"market_backend/internal/feature/news/domain/entity"
	"market_backend/internal/feature/news/usecase"
)

// summaryFile persists the latest generated summary as a single JSON file.
// Writes go through a temp file + rename so readers never observe a partial
// document.
type summaryFile struct {
	path string
}

var _ usecase.SummaryStore = (*summaryFile)(nil)

// NewSummaryStore creates a file-backed SummaryStore at the given path.
func NewSummaryStore(path string) *summaryFile {
	return &summaryFile{path: path}
}

// summaryDoc is the on-disk JSON shape.
type summaryDoc struct {
	Date        string `json:"date"`
	GeneratedAt string `json:"generatedAt"`
	Summary     string `json:"summary"`
	Count       int    `json:"count"`
}

// Save writes the summary atomically, replacing any previous one.
func (s *summaryFile) Save(summary entity.Summary) error {
	doc := summaryDoc(summary)
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace summary: %w", err)
	}
	return nil
}

// Load returns the last saved summary. A missing file maps to ErrNoSummary;
// undecodable contents map to ErrSummaryCorrupt so the caller can tell the
// two apart; other failures surface as I/O errors.
func (s *summaryFile) Load() (entity.Summary, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return entity.Summary{}, usecase.ErrNoSummary
	}
	if err != nil {
		return entity.Summary{}, fmt.Errorf("read summary: %w", err)
	}

	var doc summaryDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return entity.Summary{}, fmt.Errorf("%w: %v", usecase.ErrSummaryCorrupt, err)
	}
	return entity.Summary(doc), nil
}
