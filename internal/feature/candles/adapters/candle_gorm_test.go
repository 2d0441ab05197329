package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"market_backend/internal/feature/candles/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&CandleModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// minuteCandle はテスト用の1mローソク足を生成します。
func minuteCandle(code, tkey string, open float64) entity.Candle {
	v := 1000.0
	return entity.Candle{
		Code:      code,
		Timeframe: entity.Timeframe1Min,
		T:         tkey,
		Open:      open,
		High:      open + 10,
		Low:       open - 10,
		Close:     open + 5,
		Volume:    &v,
	}
}

func TestNewCandleRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewCandleRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

// TestCandleGorm_UpsertBatch_InsertAndReplace は同一キーへの再書き込みが
// 行を増やさず値を置換すること（last-write-wins）を検証します。
func TestCandleGorm_UpsertBatch_InsertAndReplace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewCandleRepository(db)

	err := repo.UpsertBatch(ctx, []entity.Candle{
		minuteCandle("005930", "09:30", 100),
		minuteCandle("005930", "09:31", 101),
	})
	require.NoError(t, err)

	// 同じ (code, timeframe, t) で値だけ変えて再プッシュ
	err = repo.UpsertBatch(ctx, []entity.Candle{
		minuteCandle("005930", "09:31", 200),
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&CandleModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count, "upsert must not create duplicate rows")

	got, err := repo.Find(ctx, "005930", entity.Timeframe1Min, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 100.0, got[0].Open)
	assert.Equal(t, 200.0, got[1].Open, "later write must replace the prior value")
}

// TestCandleGorm_UpsertBatch_KeyIsolation は別コード・別時間足の同じtが
// 衝突しないことを検証します。
func TestCandleGorm_UpsertBatch_KeyIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewCandleRepository(db)

	a := minuteCandle("005930", "09:30", 100)
	b := minuteCandle("000660", "09:30", 300)
	c := minuteCandle("005930", "2024-01-05", 500)
	c.Timeframe = entity.Timeframe1Day

	require.NoError(t, repo.UpsertBatch(ctx, []entity.Candle{a, b, c}))

	var count int64
	require.NoError(t, db.Model(&CandleModel{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	got, err := repo.Find(ctx, "005930", entity.Timeframe1Min, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].Open)
}

// TestCandleGorm_UpsertBatch_Empty は空バッチがno-opであることを検証します。
func TestCandleGorm_UpsertBatch_Empty(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCandleRepository(db)

	require.NoError(t, repo.UpsertBatch(context.Background(), nil))

	var count int64
	require.NoError(t, db.Model(&CandleModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

// TestCandleGorm_Find は末尾limit件が昇順で返ることを検証します。
func TestCandleGorm_Find(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewCandleRepository(db)

	seed := []entity.Candle{
		minuteCandle("005930", "09:30", 100),
		minuteCandle("005930", "09:31", 101),
		minuteCandle("005930", "09:32", 102),
		minuteCandle("005930", "09:33", 103),
		minuteCandle("005930", "09:34", 104),
	}
	require.NoError(t, repo.UpsertBatch(ctx, seed))

	tests := []struct {
		name  string
		limit int
		wantT []string
	}{
		{
			name:  "limit smaller than stored count returns most recent tail",
			limit: 3,
			wantT: []string{"09:32", "09:33", "09:34"},
		},
		{
			name:  "limit larger than stored count returns everything",
			limit: 100,
			wantT: []string{"09:30", "09:31", "09:32", "09:33", "09:34"},
		},
		{
			name:  "zero limit returns everything",
			limit: 0,
			wantT: []string{"09:30", "09:31", "09:32", "09:33", "09:34"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Find(ctx, "005930", entity.Timeframe1Min, tt.limit)
			require.NoError(t, err)

			keys := make([]string, len(got))
			for i, c := range got {
				keys[i] = c.T
			}
			assert.Equal(t, tt.wantT, keys)
		})
	}
}

// TestCandleGorm_Find_NoRows は該当行なしが空スライス（エラーではない）で
// あることを検証します。
func TestCandleGorm_Find_NoRows(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCandleRepository(db)

	got, err := repo.Find(context.Background(), "999999", entity.Timeframe1Min, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
