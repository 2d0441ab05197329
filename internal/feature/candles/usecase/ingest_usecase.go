package usecase

import (
	"context"
	"log/slog"

	"market_backend/internal/feature/candles/domain/entity"
	"market_backend/internal/shared/coerce"
)

// RawCandle は外部プッシャーから受け取った未検証の1本分のデータです。
// 数値フィールドは数値と数値文字列のどちらでも受け付けます。
type RawCandle struct {
	T             string
	O, H, L, C, V any
}

// IngestUsecase は分足ローソク足のプッシュ受け口のビジネスロジックです。
// 受理したローソク足はすべて timeframe=1m でストアにupsertされます。
type IngestUsecase struct {
	candle CandleRepository
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(candle CandleRepository) *IngestUsecase {
	return &IngestUsecase{candle: candle}
}

// PushCandles は1回のプッシュ分のローソク足を検証・変換してストアへ適用し、
// 受理した件数を返します。
//
// コード不正（ErrInvalidCode）・空リスト（ErrEmptyCandles）は副作用なしで
// 失敗します。個々のローソク足の変換失敗はその1本だけをスキップし、
// 整形済みのサブセットが適用されれば呼び出しは成功扱いです。
func (iu *IngestUsecase) PushCandles(ctx context.Context, code string, raws []RawCandle) (int, error) {
	if !codePattern.MatchString(code) {
		return 0, ErrInvalidCode
	}
	if len(raws) == 0 {
		return 0, ErrEmptyCandles
	}

	cs := make([]entity.Candle, 0, len(raws))
	for _, raw := range raws {
		c, ok := convertRaw(code, raw)
		if !ok {
			// 変換できない1本は黙って落とし、残りの処理を続ける
			slog.Warn("skipping malformed candle", "code", code, "t", raw.T)
			continue
		}
		cs = append(cs, c)
	}

	if len(cs) == 0 {
		return 0, nil
	}
	if err := iu.candle.UpsertBatch(ctx, cs); err != nil {
		return 0, err
	}
	return len(cs), nil
}

// convertRaw は1本分の生データをエンティティへ変換します。
// t が空、または o/h/l/c/v のいずれかが数値に変換できなければ失敗します。
func convertRaw(code string, raw RawCandle) (entity.Candle, bool) {
	if raw.T == "" {
		return entity.Candle{}, false
	}
	o, err := coerce.Float(raw.O)
	if err != nil {
		return entity.Candle{}, false
	}
	h, err := coerce.Float(raw.H)
	if err != nil {
		return entity.Candle{}, false
	}
	l, err := coerce.Float(raw.L)
	if err != nil {
		return entity.Candle{}, false
	}
	c, err := coerce.Float(raw.C)
	if err != nil {
		return entity.Candle{}, false
	}
	v, err := coerce.Float(raw.V)
	if err != nil {
		return entity.Candle{}, false
	}

	return entity.Candle{
		Code:      code,
		Timeframe: entity.Timeframe1Min,
		T:         raw.T,
		Open:      o,
		High:      h,
		Low:       l,
		Close:     c,
		Volume:    &v,
	}, true
}
