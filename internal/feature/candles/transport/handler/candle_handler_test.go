package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"market_backend/internal/feature/candles/adapters"
	"market_backend/internal/feature/candles/domain/entity"
	"market_backend/internal/feature/candles/transport/handler"
	"market_backend/internal/feature/candles/usecase"
	"market_backend/internal/platform/pushauth"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// mockCandlesUsecase はCandlesUsecaseインターフェースのモック実装です。
type mockCandlesUsecase struct {
	GetCandlesFunc func(ctx context.Context, code, tf string, count int) ([]entity.Candle, error)
}

func (m *mockCandlesUsecase) GetCandles(ctx context.Context, code, tf string, count int) ([]entity.Candle, error) {
	return m.GetCandlesFunc(ctx, code, tf, count)
}

// mockIngestUsecase はIngestUsecaseインターフェースのモック実装です。
type mockIngestUsecase struct {
	PushCandlesFunc func(ctx context.Context, code string, raws []usecase.RawCandle) (int, error)
}

func (m *mockIngestUsecase) PushCandles(ctx context.Context, code string, raws []usecase.RawCandle) (int, error) {
	return m.PushCandlesFunc(ctx, code, raws)
}

// TestCandlesHandler_GetCandles はGetCandlesのHTTPリクエスト/レスポンス処理をテストします。
func TestCandlesHandler_GetCandles(t *testing.T) {
	vol := 1000.0

	tests := []struct {
		name           string
		url            string
		mockGetCandles func(ctx context.Context, code, tf string, count int) ([]entity.Candle, error)
		expectedStatus int
		expectedBody   string // JSON文字列として比較
	}{
		{
			name: "success: all parameters specified",
			url:  "/api/stocks/candles?code=005930&tf=1m&count=10",
			mockGetCandles: func(ctx context.Context, code, tf string, count int) ([]entity.Candle, error) {
				assert.Equal(t, "005930", code)
				assert.Equal(t, "1m", tf)
				assert.Equal(t, 10, count)
				return []entity.Candle{
					{Code: code, Timeframe: entity.Timeframe1Min, T: "09:30", Open: 100, High: 110, Low: 90, Close: 105, Volume: &vol},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"code":"005930","name":"005930","tf":"1m","candles":[{"time":"09:30","open":100,"high":110,"low":90,"close":105,"volume":1000}]}`,
		},
		{
			name: "success: default parameter values",
			url:  "/api/stocks/candles?code=005930",
			mockGetCandles: func(ctx context.Context, code, tf string, count int) ([]entity.Candle, error) {
				assert.Equal(t, "1d", tf)    // デフォルト値
				assert.Equal(t, 300, count)  // デフォルト値
				return []entity.Candle{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"code":"005930","name":"005930","tf":"1d","candles":[]}`,
		},
		{
			name: "success: nil volume serializes as null",
			url:  "/api/stocks/candles?code=005930&tf=1d&count=1",
			mockGetCandles: func(ctx context.Context, code, tf string, count int) ([]entity.Candle, error) {
				return []entity.Candle{
					{Code: code, Timeframe: entity.Timeframe1Day, T: "2024-01-05", Open: 100, High: 110, Low: 90, Close: 105},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"code":"005930","name":"005930","tf":"1d","candles":[{"time":"2024-01-05","open":100,"high":110,"low":90,"close":105,"volume":null}]}`,
		},
		{
			name: "error: invalid code",
			url:  "/api/stocks/candles?code=12",
			mockGetCandles: func(ctx context.Context, code, tf string, count int) ([]entity.Candle, error) {
				return nil, usecase.ErrInvalidCode
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"code must be 6 digits"}`,
		},
		{
			name: "error: unknown timeframe",
			url:  "/api/stocks/candles?code=005930&tf=1h",
			mockGetCandles: func(ctx context.Context, code, tf string, count int) ([]entity.Candle, error) {
				return nil, usecase.ErrUnknownTimeframe
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"unknown tf"}`,
		},
		{
			name: "error: upstream failure maps to 500",
			url:  "/api/stocks/candles?code=005930&tf=1d",
			mockGetCandles: func(ctx context.Context, code, tf string, count int) ([]entity.Candle, error) {
				return nil, errors.New("naver siseJson http 503")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"naver siseJson http 503"}`,
		},
		{
			name: "edge case: invalid count string passes 0 to usecase",
			url:  "/api/stocks/candles?code=005930&count=invalid",
			mockGetCandles: func(ctx context.Context, code, tf string, count int) ([]entity.Candle, error) {
				// デフォルト値への変換はusecaseレイヤーで処理される
				assert.Equal(t, 0, count)
				return []entity.Candle{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"code":"005930","name":"005930","tf":"1d","candles":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewCandlesHandler(
				&mockCandlesUsecase{GetCandlesFunc: tt.mockGetCandles},
				&mockIngestUsecase{},
			)

			router := gin.New()
			router.GET("/api/stocks/candles", h.GetCandles)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestCandlesHandler_PushCandles はPushCandlesのHTTPリクエスト/レスポンス処理をテストします。
func TestCandlesHandler_PushCandles(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		mockPushCandles func(ctx context.Context, code string, raws []usecase.RawCandle) (int, error)
		expectedStatus  int
		expectedBody    string
	}{
		{
			name: "success: candles accepted",
			body: `{"code":"005930","candles":[{"t":"09:30","o":100,"h":110,"l":90,"c":105,"v":"1,000"}]}`,
			mockPushCandles: func(ctx context.Context, code string, raws []usecase.RawCandle) (int, error) {
				assert.Equal(t, "005930", code)
				require.Len(t, raws, 1)
				assert.Equal(t, "09:30", raws[0].T)
				assert.Equal(t, "1,000", raws[0].V) // 数値型の解釈はusecase側
				return 1, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name: "error: invalid code",
			body: `{"code":"12","candles":[{"t":"09:30","o":100,"h":110,"l":90,"c":105,"v":0}]}`,
			mockPushCandles: func(ctx context.Context, code string, raws []usecase.RawCandle) (int, error) {
				return 0, usecase.ErrInvalidCode
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"code must be 6 digits"}`,
		},
		{
			name: "error: empty candle list",
			body: `{"code":"005930","candles":[]}`,
			mockPushCandles: func(ctx context.Context, code string, raws []usecase.RawCandle) (int, error) {
				return 0, usecase.ErrEmptyCandles
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"candles must be a non-empty list"}`,
		},
		{
			name: "error: store failure maps to 500",
			body: `{"code":"005930","candles":[{"t":"09:30","o":100,"h":110,"l":90,"c":105,"v":0}]}`,
			mockPushCandles: func(ctx context.Context, code string, raws []usecase.RawCandle) (int, error) {
				return 0, errors.New("database is locked")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database is locked"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewCandlesHandler(
				&mockCandlesUsecase{},
				&mockIngestUsecase{PushCandlesFunc: tt.mockPushCandles},
			)

			router := gin.New()
			router.POST("/api/internal/push/candles", h.PushCandles)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/internal/push/candles", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestCandlesHandler_PushCandles_MalformedJSON は壊れたボディが空の
// リクエストとして扱われ、コード検証のエラーで400になることをテストします。
func TestCandlesHandler_PushCandles_MalformedJSON(t *testing.T) {
	h := handler.NewCandlesHandler(&mockCandlesUsecase{}, &mockIngestUsecase{
		PushCandlesFunc: func(ctx context.Context, code string, raws []usecase.RawCandle) (int, error) {
			// ボディが読めなくても通常の検証パスに入る
			assert.Equal(t, "", code)
			assert.Empty(t, raws)
			return 0, usecase.ErrInvalidCode
		},
	})

	router := gin.New()
	router.POST("/api/internal/push/candles", h.PushCandles)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/internal/push/candles", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"code must be 6 digits"}`, w.Body.String())
}

// setupIngestRouter は実物のsqliteストア・usecase・認証ミドルウェアを束ねた
// ルーターを組み立てます。プッシュから参照までの結合テスト用です。
func setupIngestRouter(t *testing.T, pushToken string) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&adapters.CandleModel{}))

	repo := adapters.NewCandleRepository(db)
	h := handler.NewCandlesHandler(
		usecase.NewCandlesUsecase(repo, nil),
		usecase.NewIngestUsecase(repo),
	)

	router := gin.New()
	router.GET("/api/stocks/candles", h.GetCandles)
	internal := router.Group("/api/internal", pushauth.TokenRequired(pushToken))
	internal.POST("/push/candles", h.PushCandles)
	return router, db
}

// TestPushThenQuery はプッシュした1m足がクエリで読み戻せることの結合テストです。
func TestPushThenQuery(t *testing.T) {
	router, _ := setupIngestRouter(t, "secret")

	body := `{"code":"005930","candles":[
		{"t":"09:30","o":100,"h":110,"l":90,"c":105,"v":1000},
		{"t":"09:31","o":"105","h":"112","l":"104","c":"110","v":"2,000"}
	]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/internal/push/candles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(pushauth.HeaderName, "secret")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/stocks/candles?code=005930&tf=1m", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":"005930","name":"005930","tf":"1m","candles":[
		{"time":"09:30","open":100,"high":110,"low":90,"close":105,"volume":1000},
		{"time":"09:31","open":105,"high":112,"low":104,"close":110,"volume":2000}
	]}`, w.Body.String())
}

// TestPushRejectedWithoutToken はトークン不一致のプッシュが403で拒否され、
// ストアに副作用が残らないことの結合テストです。
func TestPushRejectedWithoutToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		set   bool
	}{
		{name: "missing token", set: false},
		{name: "wrong token", token: "wrong", set: true},
		{name: "empty token value", token: "", set: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, db := setupIngestRouter(t, "secret")

			body := `{"code":"005930","candles":[{"t":"09:30","o":100,"h":110,"l":90,"c":105,"v":1000}]}`
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/internal/push/candles", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.set {
				req.Header.Set(pushauth.HeaderName, tt.token)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

			var count int64
			require.NoError(t, db.Model(&adapters.CandleModel{}).Count(&count).Error)
			assert.Equal(t, int64(0), count, "rejected push must not write anything")
		})
	}
}
