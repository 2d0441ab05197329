// Package handler はsearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/feature/search/domain/entity"
)

// SearchUsecase は銘柄検索のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SearchUsecase interface {
	Search(q string) []entity.Symbol
}

// SearchHandler は銘柄検索のHTTPリクエストを処理します。
type SearchHandler struct {
	uc SearchUsecase
}

// NewSearchHandler はSearchHandlerの新しいインスタンスを生成します。
func NewSearchHandler(uc SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search は GET /api/stocks/search?q= を処理します。
func (h *SearchHandler) Search(c *gin.Context) {
	items := h.uc.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"items": items})
}
