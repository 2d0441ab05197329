// Package usecase は指数（KOSPI/KOSDAQ）関連のビジネスロジックを実装します。
package usecase

import (
	"context"

	"market_backend/internal/feature/index/domain/entity"
)

// DefaultSeriesDays は日次ポイント系列のデフォルト件数です。
const DefaultSeriesDays = 60

// IndexCodes は配信対象の指数コードです。
var IndexCodes = []string{"KOSPI", "KOSDAQ"}

// IndexRepository は上流サイトからの指数取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type IndexRepository interface {
	// CurrentQuote は指数の現在値スナップショットを返します。
	CurrentQuote(ctx context.Context, code string) (entity.IndexQuote, error)
	// DailyPoints は直近days件の日次終値ポイントを日付昇順で返します。
	DailyPoints(ctx context.Context, symbol string, days int) ([]entity.DailyPoint, error)
}

// IndexUsecase は指数クエリのユースケースを定義します。
type IndexUsecase struct {
	market IndexRepository
}

// NewIndexUsecase はIndexUsecaseの新しいインスタンスを生成します。
func NewIndexUsecase(market IndexRepository) *IndexUsecase {
	return &IndexUsecase{market: market}
}

// CurrentQuotes は全対象指数の現在値をまとめて取得します。
// 1つでも取得に失敗した場合はエラーを返します（リトライは呼び出し元の判断）。
func (u *IndexUsecase) CurrentQuotes(ctx context.Context) (map[string]entity.IndexQuote, error) {
	out := make(map[string]entity.IndexQuote, len(IndexCodes))
	for _, code := range IndexCodes {
		q, err := u.market.CurrentQuote(ctx, code)
		if err != nil {
			return nil, err
		}
		out[code] = q
	}
	return out, nil
}

// DailySeries は全対象指数の日次ポイント系列を取得します。
// days が0以下のときはデフォルト件数を使用します。
func (u *IndexUsecase) DailySeries(ctx context.Context, days int) (map[string][]entity.DailyPoint, error) {
	if days <= 0 {
		days = DefaultSeriesDays
	}
	out := make(map[string][]entity.DailyPoint, len(IndexCodes))
	for _, code := range IndexCodes {
		pts, err := u.market.DailyPoints(ctx, code, days)
		if err != nil {
			return nil, err
		}
		out[code] = pts
	}
	return out, nil
}
