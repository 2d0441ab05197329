// Package adapters はsearchフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"encoding/json"
	"errors"
	"os"

	"market_backend/internal/feature/search/domain/entity"
	"market_backend/internal/feature/search/usecase"
)

// masterFile reads the optional stocks master list from a JSON file
// ([{"code":"005930","name":"삼성전자"}, ...]). Name search is a
// best-effort convenience: a missing file just means an empty list.
type masterFile struct {
	path string
}

var _ usecase.SymbolRepository = (*masterFile)(nil)

// NewSymbolRepository creates a file-backed symbol repository.
func NewSymbolRepository(path string) *masterFile {
	return &masterFile{path: path}
}

// ListAll returns every symbol in the master file, or an empty slice when
// the file does not exist.
func (r *masterFile) ListAll() ([]entity.Symbol, error) {
	b, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entity.Symbol{}, nil
	}
	if err != nil {
		return nil, err
	}

	var symbols []entity.Symbol
	if err := json.Unmarshal(b, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}
