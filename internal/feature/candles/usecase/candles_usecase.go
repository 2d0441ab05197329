package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"market_backend/internal/feature/candles/domain/entity"
)

const (
	// DefaultCount はローソク足クエリのデフォルト返却件数です。
	DefaultCount = 300
	// MinLiveCount / MaxLiveCount はライブ取得時のcountのクランプ範囲です。
	MinLiveCount = 30
	MaxLiveCount = 1200
	// minLookbackDays はライブ取得時に遡る最低日数です。週足・月足でも
	// 十分な本数が得られるよう、count*3日とのうち大きい方を使用します。
	minLookbackDays = 1200
)

// codePattern は銘柄コードの固定フォーマット（数字6桁）です。
var codePattern = regexp.MustCompile(`^\d{6}$`)

// liveTimeframes はライブ取得する時間足と上流APIのトークンの対応表です。
// 1m はここに載らず、常にストアから配信されます。
var liveTimeframes = map[entity.Timeframe]string{
	entity.Timeframe1Day:   "day",
	entity.Timeframe1Week:  "week",
	entity.Timeframe1Month: "month",
}

// CandleRepository はローソク足の永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CandleRepository interface {
	// UpsertBatch は (code, timeframe, t) をキーに挿入または置換します。
	// 1回の呼び出し分はひとまとまりとして適用されます。
	UpsertBatch(ctx context.Context, candles []entity.Candle) error
	// Find は t 昇順のローソク足を返し、末尾 limit 件に切り詰めます。
	Find(ctx context.Context, code string, timeframe entity.Timeframe, limit int) ([]entity.Candle, error)
}

// MarketRepository は上流サイトからの時系列取得を抽象化します。
type MarketRepository interface {
	// GetTimeSeries は [start, end] の期間のローソク足を日付昇順で返します。
	// timeframe は上流ネイティブのトークン（day/week/month）です。
	GetTimeSeries(ctx context.Context, code, timeframe string, start, end time.Time) ([]entity.Candle, error)
}

// CandlesUsecase はタイムフレームごとに配信元（ストア or ライブ取得）を
// 振り分けるルーターです。
type CandlesUsecase struct {
	candle CandleRepository
	market MarketRepository
}

// NewCandlesUsecase はCandlesUsecaseの新しいインスタンスを生成します。
func NewCandlesUsecase(candle CandleRepository, market MarketRepository) *CandlesUsecase {
	return &CandlesUsecase{candle: candle, market: market}
}

// GetCandles は指定された銘柄・時間足のローソク足を返します。
//
//   - 1m: ストアから末尾count件。行が無ければ空スライス（エラーではない）。
//   - 1d/1w/1M: 上流からライブ取得し、末尾count件に切り詰め。
//   - それ以外: ErrUnknownTimeframe。上流呼び出しは行わない。
//
// 上流呼び出しの失敗はそのまま呼び出し元へ返します（リトライしない）。
func (cu *CandlesUsecase) GetCandles(ctx context.Context, code, tf string, count int) ([]entity.Candle, error) {
	if !codePattern.MatchString(code) {
		return nil, ErrInvalidCode
	}
	if count <= 0 {
		count = DefaultCount
	}

	timeframe := entity.Timeframe(tf)
	if timeframe == entity.Timeframe1Min {
		return cu.candle.Find(ctx, code, timeframe, count)
	}
	if _, ok := liveTimeframes[timeframe]; ok {
		return cu.fetchLive(ctx, code, timeframe, count)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTimeframe, tf)
}

// fetchLive は上流から時系列を取得し、ストアを経由せずそのまま返します。
// ライブ取得の結果は永続化もキャッシュもしません。
func (cu *CandlesUsecase) fetchLive(ctx context.Context, code string, timeframe entity.Timeframe, count int) ([]entity.Candle, error) {
	if count < MinLiveCount {
		count = MinLiveCount
	}
	if count > MaxLiveCount {
		count = MaxLiveCount
	}

	lookback := count * 3
	if lookback < minLookbackDays {
		lookback = minLookbackDays
	}
	end := time.Now()
	start := end.AddDate(0, 0, -lookback)

	cs, err := cu.market.GetTimeSeries(ctx, code, liveTimeframes[timeframe], start, end)
	if err != nil {
		return nil, err
	}
	for i := range cs {
		cs[i].Code = code
		cs[i].Timeframe = timeframe
	}
	// 上流は日付昇順を保証するので、末尾countがそのまま直近count件になる
	return tail(cs, count), nil
}

// tail は昇順スライスの末尾n件（＝直近n件）を返します。
func tail(cs []entity.Candle, n int) []entity.Candle {
	if len(cs) <= n {
		return cs
	}
	return cs[len(cs)-n:]
}
