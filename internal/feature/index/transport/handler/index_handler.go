// Package handler はindexフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/feature/index/domain/entity"
	"market_backend/internal/feature/index/transport/http/dto"
	"market_backend/internal/feature/index/usecase"
)

// IndexUsecase は指数クエリのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type IndexUsecase interface {
	CurrentQuotes(ctx context.Context) (map[string]entity.IndexQuote, error)
	DailySeries(ctx context.Context, days int) (map[string][]entity.DailyPoint, error)
}

// IndexHandler は指数関連のHTTPリクエストを処理します。
type IndexHandler struct {
	uc IndexUsecase
}

// NewIndexHandler はIndexHandlerの新しいインスタンスを生成します。
func NewIndexHandler(uc IndexUsecase) *IndexHandler {
	return &IndexHandler{uc: uc}
}

// Current は GET /api/index/current を処理します。
// 取得に失敗した場合も指数ごとのキーは維持し、値をnullにしてエラーを添えます。
func (h *IndexHandler) Current(c *gin.Context) {
	quotes, err := h.uc.CurrentQuotes(c.Request.Context())
	if err != nil {
		slog.Warn("index quote fetch failed", "error", err)
		out := make(map[string]dto.QuoteItem, len(usecase.IndexCodes))
		for _, code := range usecase.IndexCodes {
			out[code] = dto.QuoteItem{Error: err.Error()}
		}
		c.JSON(http.StatusInternalServerError, out)
		return
	}

	out := make(map[string]dto.QuoteItem, len(quotes))
	for code, q := range quotes {
		price := q.Price
		out[code] = dto.QuoteItem{
			Price:      &price,
			Change:     q.Change,
			ChangeRate: q.ChangeRate,
		}
	}
	c.JSON(http.StatusOK, out)
}

// Minute は GET /api/index/minute を処理し、日次ポイント系列を返します。
func (h *IndexHandler) Minute(c *gin.Context) {
	series, err := h.uc.DailySeries(c.Request.Context(), usecase.DefaultSeriesDays)
	if err != nil {
		slog.Warn("index series fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make(map[string]dto.SeriesItem, len(series))
	for code, pts := range series {
		items := make([]dto.PointItem, 0, len(pts))
		for _, p := range pts {
			items = append(items, dto.PointItem{T: p.T, V: p.V})
		}
		out[code] = dto.SeriesItem{Points: items}
	}
	c.JSON(http.StatusOK, out)
}
