// Package handler はnewsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"market_backend/internal/api"
	"market_backend/internal/feature/news/domain/entity"
	"market_backend/internal/feature/news/transport/http/dto"
	"market_backend/internal/feature/news/usecase"
)

// newsSource はレスポンスに添える取得元の識別子です。
const newsSource = "naver_news_section_101"

// NewsUsecase はニュース関連のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type NewsUsecase interface {
	ListNews(ctx context.Context, limit int) ([]entity.Article, error)
	GenerateSummary(ctx context.Context) (entity.Summary, error)
	LatestSummary(ctx context.Context) (entity.Summary, error)
}

// NewsHandler はニュース関連のHTTPリクエストを処理します。
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler はNewsHandlerの新しいインスタンスを生成します。
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// List は GET /api/news を処理します。
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.uc.ListNews(c.Request.Context(), usecase.DefaultNewsLimit)
	if err != nil {
		slog.Warn("news fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.NewsResponse{
			Items: []dto.NewsItem{},
			Error: err.Error(),
		})
		return
	}

	out := make([]dto.NewsItem, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NewsItem{Title: n.Title, Link: n.Link, Press: n.Press, Ts: n.Ts})
	}
	c.JSON(http.StatusOK, dto.NewsResponse{
		Items:     out,
		Source:    newsSource,
		FetchedAt: time.Now().Format("2006-01-02T15:04:05"),
	})
}

// Summarize は GET /api/news/summary を処理します。
// 新しい要約を生成・保存して返します。
func (h *NewsHandler) Summarize(c *gin.Context) {
	summary, err := h.uc.GenerateSummary(c.Request.Context())
	if err != nil {
		slog.Warn("summary generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toSummaryResponse(summary))
}

// Latest は GET /api/news/summary/latest を処理します。
// まだ要約が無い場合は404を返します。
func (h *NewsHandler) Latest(c *gin.Context) {
	summary, err := h.uc.LatestSummary(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNoSummary) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Warn("latest summary load failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toSummaryResponse(summary))
}

func toSummaryResponse(s entity.Summary) dto.SummaryResponse {
	return dto.SummaryResponse{
		Date:        s.Date,
		GeneratedAt: s.GeneratedAt,
		Summary:     s.Summary,
		Count:       s.Count,
	}
}
