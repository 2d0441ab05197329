// Package adapters はcandlesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"market_backend/internal/feature/candles/domain/entity"
	"market_backend/internal/feature/candles/usecase"
)

type candleGorm struct {
	db *gorm.DB
}

var _ usecase.CandleRepository = (*candleGorm)(nil)

// NewCandleRepository は指定されたDB接続でローソク足リポジトリを生成します。
func NewCandleRepository(db *gorm.DB) *candleGorm {
	return &candleGorm{db: db}
}

// CandleModel はcandlesテーブルの1行です。tはテキストとして保存され、
// 同一シリーズ内では辞書順が時系列順と一致することを呼び出し側が保証します。
type CandleModel struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:16;not null;uniqueIndex:candle_code_tf_t,priority:1"`
	Timeframe string `gorm:"size:8;not null;uniqueIndex:candle_code_tf_t,priority:2"`
	T         string `gorm:"size:32;not null;uniqueIndex:candle_code_tf_t,priority:3"`

	O float64 `gorm:"not null"`
	H float64 `gorm:"not null"`
	L float64 `gorm:"not null"`
	C float64 `gorm:"not null"`
	V float64 `gorm:"not null;default:0"`
}

func (CandleModel) TableName() string {
	return "candles"
}

func toModel(e entity.Candle) CandleModel {
	m := CandleModel{
		Code:      e.Code,
		Timeframe: string(e.Timeframe),
		T:         e.T,
		O:         e.Open,
		H:         e.High,
		L:         e.Low,
		C:         e.Close,
	}
	if e.Volume != nil {
		m.V = *e.Volume
	}
	return m
}

func toEntity(m CandleModel) entity.Candle {
	v := m.V
	return entity.Candle{
		Code:      m.Code,
		Timeframe: entity.Timeframe(m.Timeframe),
		T:         m.T,
		Open:      m.O,
		High:      m.H,
		Low:       m.L,
		Close:     m.C,
		Volume:    &v,
	}
}

// UpsertBatch は (code, timeframe, t) の衝突時にOHLCVを置換します（last-write-wins）。
// 1回の呼び出し分は1トランザクションで適用されます。
func (r *candleGorm) UpsertBatch(ctx context.Context, candles []entity.Candle) error {
	if len(candles) == 0 {
		return nil
	}
	ms := make([]CandleModel, 0, len(candles))
	for _, e := range candles {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}, {Name: "timeframe"}, {Name: "t"}},
			DoUpdates: clause.AssignmentColumns([]string{"o", "h", "l", "c", "v"}),
		}).Create(&ms).Error
	})
}

// Find は t 昇順のローソク足を返します。limit が正のときは末尾 limit 件
// （＝直近 limit 件）に切り詰めます。該当行が無ければ空スライスを返します。
func (r *candleGorm) Find(ctx context.Context, code string, timeframe entity.Timeframe, limit int) ([]entity.Candle, error) {
	var rows []CandleModel
	q := r.db.WithContext(ctx).
		Where("code = ? AND timeframe = ?", code, string(timeframe)).
		Order("t DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	// DESC LIMIT で直近分を取り、昇順に並べ直して返す
	out := make([]entity.Candle, len(rows))
	for i, m := range rows {
		out[len(rows)-1-i] = toEntity(m)
	}
	return out, nil
}
