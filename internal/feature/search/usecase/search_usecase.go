// Package usecase は銘柄検索のビジネスロジックを実装します。
package usecase

import (
	"log/slog"
	"regexp"
	"strings"

	"market_backend/internal/feature/search/domain/entity"
)

// MaxResults は名前検索の最大返却件数です。
const MaxResults = 20

// codeInQuery はクエリ文字列に含まれる6桁コードを拾います。
var codeInQuery = regexp.MustCompile(`(\d{6})`)

// SymbolRepository は銘柄マスタの読み取りを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SymbolRepository interface {
	ListAll() ([]entity.Symbol, error)
}

// SearchUsecase は銘柄検索のユースケースを定義します。
type SearchUsecase struct {
	repo SymbolRepository
}

// NewSearchUsecase はSearchUsecaseの新しいインスタンスを生成します。
func NewSearchUsecase(repo SymbolRepository) *SearchUsecase {
	return &SearchUsecase{repo: repo}
}

// Search はクエリに一致する銘柄を返します。
//
// クエリに6桁の数字が含まれていればそのコードをそのまま返します
// （名前解決は行わず、nameにはコードが入ります）。それ以外は銘柄マスタに
// 対する部分一致検索で、マスタが無ければ空リストです。
func (u *SearchUsecase) Search(q string) []entity.Symbol {
	q = strings.TrimSpace(q)
	items := []entity.Symbol{}

	if m := codeInQuery.FindStringSubmatch(q); m != nil {
		code := m[1]
		return append(items, entity.Symbol{Code: code, Name: code})
	}
	if q == "" {
		return items
	}

	symbols, err := u.repo.ListAll()
	if err != nil {
		// マスタが読めないのは検索結果ゼロと同じ扱い（ベストエフォート）
		slog.Warn("stocks master unavailable", "error", err)
		return items
	}

	qLow := strings.ToLower(q)
	for _, s := range symbols {
		if strings.Contains(strings.ToLower(s.Name), qLow) {
			items = append(items, s)
			if len(items) >= MaxResults {
				break
			}
		}
	}
	return items
}
