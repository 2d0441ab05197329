// Package handler はcalendarフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"market_backend/internal/api"
	"market_backend/internal/feature/calendar/domain/entity"
	"market_backend/internal/feature/calendar/transport/http/dto"
	"market_backend/internal/feature/calendar/usecase"
)

// CalendarUsecase は予定管理のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CalendarUsecase interface {
	Events(date, month string) (map[string][]entity.Event, error)
	Add(date, title, timeOfDay, note string) (entity.Event, error)
	Delete(date, eventID string) error
}

// CalendarHandler は予定管理のHTTPリクエストを処理します。
type CalendarHandler struct {
	uc CalendarUsecase
}

// NewCalendarHandler はCalendarHandlerの新しいインスタンスを生成します。
func NewCalendarHandler(uc CalendarUsecase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// List は GET /api/calendar/events?date=|month= を処理します。
func (h *CalendarHandler) List(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	month := strings.TrimSpace(c.Query("month"))

	items, err := h.uc.Events(date, month)
	if err != nil {
		slog.Warn("calendar load failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.EventsResponse{Items: items})
}

// Add は POST /api/calendar/events を処理します。
func (h *CalendarHandler) Add(c *gin.Context) {
	var req dto.AddEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrMissingFields.Error()})
		return
	}

	item, err := h.uc.Add(
		strings.TrimSpace(req.Date),
		strings.TrimSpace(req.Title),
		strings.TrimSpace(req.Time),
		strings.TrimSpace(req.Note),
	)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Warn("calendar add failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.AddEventResponse{OK: true, Item: item})
}

// Delete は DELETE /api/calendar/events/:date/:id を処理します。
// 存在しない予定の削除も成功として扱います。
func (h *CalendarHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Param("date"), c.Param("id")); err != nil {
		slog.Warn("calendar delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}
