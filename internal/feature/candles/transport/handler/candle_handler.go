// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"market_backend/internal/api"
	"market_backend/internal/feature/candles/domain/entity"
	"market_backend/internal/feature/candles/usecase"
)

// CandlesUsecase はローソク足クエリのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CandlesUsecase interface {
	GetCandles(ctx context.Context, code, tf string, count int) ([]entity.Candle, error)
}

// IngestUsecase はローソク足プッシュのユースケースインターフェースを定義します。
type IngestUsecase interface {
	PushCandles(ctx context.Context, code string, raws []usecase.RawCandle) (int, error)
}

// CandlesHandler はローソク足データのHTTPリクエストを処理します。
type CandlesHandler struct {
	candles CandlesUsecase
	ingest  IngestUsecase
}

// NewCandlesHandler は指定されたusecaseでCandlesHandlerの新しいインスタンスを生成します。
func NewCandlesHandler(candles CandlesUsecase, ingest IngestUsecase) *CandlesHandler {
	return &CandlesHandler{candles: candles, ingest: ingest}
}

// GetCandles は GET /api/stocks/candles?code=005930&tf=1d&count=300 を処理します。
//
// コード不正・未知のtfは400、上流取得の失敗は500を返します。
// 1mでストアに行が無い場合は空のcandles配列で200を返します。
func (h *CandlesHandler) GetCandles(c *gin.Context) {
	code := c.Query("code")
	tf := c.DefaultQuery("tf", "1d")
	countStr := c.DefaultQuery("count", "300")
	// 数値でないcountはusecase側でデフォルトに倒される
	count, _ := strconv.Atoi(countStr)

	candles, err := h.candles.GetCandles(c.Request.Context(), code, tf, count)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCode) || errors.Is(err, usecase.ErrUnknownTimeframe) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Warn("candle fetch failed", "code", code, "tf", tf, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]api.CandleItem, 0, len(candles))
	for _, x := range candles {
		out = append(out, api.CandleItem{
			Time:   x.T,
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}

	c.JSON(http.StatusOK, api.CandlesResponse{
		Code: code,
		// コード→銘柄名の解決は行わない。nameには常にコードをそのまま返す
		Name:    code,
		Tf:      tf,
		Candles: out,
	})
}

// PushCandles は POST /api/internal/push/candles を処理します。
// 共有シークレットの検証はルーター側のミドルウェアで済んでいます。
//
// コード不正・空リストは副作用なしで400。個々のローソク足の変換失敗は
// その1本だけスキップされ、レスポンス上は全件成功と区別されません。
func (h *CandlesHandler) PushCandles(c *gin.Context) {
	// 壊れたボディは空のリクエストに倒し、通常の検証（まずコード、次に
	// リスト）に同じ400を返させる
	var req api.PushCandlesRequest
	_ = c.ShouldBindJSON(&req)

	raws := make([]usecase.RawCandle, 0, len(req.Candles))
	for _, rc := range req.Candles {
		raws = append(raws, usecase.RawCandle{T: rc.T, O: rc.O, H: rc.H, L: rc.L, C: rc.C, V: rc.V})
	}

	accepted, err := h.ingest.PushCandles(c.Request.Context(), req.Code, raws)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCode) || errors.Is(err, usecase.ErrEmptyCandles) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("candle push failed", "code", req.Code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("candles pushed", "code", req.Code, "accepted", accepted, "received", len(req.Candles))
	c.JSON(http.StatusOK, api.StatusResponse{Status: "ok"})
}
