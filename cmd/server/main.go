package main

import (
	"context"
	"log"
	"time"

	"market_backend/internal/app/config"
	"market_backend/internal/app/di"
	"market_backend/internal/app/router"
	calendaradapters "market_backend/internal/feature/calendar/adapters"
	calendarhandler "market_backend/internal/feature/calendar/transport/handler"
	calendarusecase "market_backend/internal/feature/calendar/usecase"
	candleadapters "market_backend/internal/feature/candles/adapters"
	candlehandler "market_backend/internal/feature/candles/transport/handler"
	candleusecase "market_backend/internal/feature/candles/usecase"
	indexhandler "market_backend/internal/feature/index/transport/handler"
	indexusecase "market_backend/internal/feature/index/usecase"
	newsadapters "market_backend/internal/feature/news/adapters"
	"market_backend/internal/feature/news/adapters/gemini"
	newshandler "market_backend/internal/feature/news/transport/handler"
	newsusecase "market_backend/internal/feature/news/usecase"
	searchadapters "market_backend/internal/feature/search/adapters"
	searchhandler "market_backend/internal/feature/search/transport/handler"
	searchusecase "market_backend/internal/feature/search/usecase"
	"market_backend/internal/platform/cache"
	infradb "market_backend/internal/platform/db"
	infraredis "market_backend/internal/platform/redis"
)

// newsCacheTTL はニュース一覧キャッシュの保持期間です。みんなが同じ結果を
// 見るページなので、数分の鮮度で十分です。
const newsCacheTTL = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	// DB
	db := infradb.OpenDB(cfg.DBPath, cfg.DatabaseURL)

	// Redis（無くてもキャッシュなしで動く）
	rdb, err := infraredis.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Println("[WARN] Redis unavailable. Running without news cache.")
		rdb = nil
	}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 上流クライアント（siseJson・指数ページ・ニュース共用）
	upstream := di.NewUpstream()

	// Repository
	candleRepo := candleadapters.NewCandleRepository(db)
	summaryStore := newsadapters.NewSummaryStore(cfg.SummaryPath)
	eventStore := calendaradapters.NewEventStore(cfg.CalendarPath)
	symbolRepo := searchadapters.NewSymbolRepository(cfg.MasterPath)

	// ニュース取得はRedisキャッシュでラップ
	newsRepo := cache.NewCachingNewsRepository(rdb, newsCacheTTL, upstream, "news")

	// LLM要約（設定が無ければnilのまま簡易要約へフォールバック）
	var analyzer newsusecase.NewsAnalyzer
	if a, err := gemini.NewGeminiAnalyzer(context.Background()); err != nil {
		log.Println("[WARN] Gemini unavailable. Using headline summary only:", err)
	} else {
		analyzer = a
	}

	// Usecase
	candlesUC := candleusecase.NewCandlesUsecase(candleRepo, upstream)
	ingestUC := candleusecase.NewIngestUsecase(candleRepo)
	indexUC := indexusecase.NewIndexUsecase(upstream)
	newsUC := newsusecase.NewNewsUsecase(newsRepo, analyzer, summaryStore)
	calendarUC := calendarusecase.NewCalendarUsecase(eventStore)
	searchUC := searchusecase.NewSearchUsecase(symbolRepo)

	// Handler
	candlesH := candlehandler.NewCandlesHandler(candlesUC, ingestUC)
	indexH := indexhandler.NewIndexHandler(indexUC)
	newsH := newshandler.NewNewsHandler(newsUC)
	calendarH := calendarhandler.NewCalendarHandler(calendarUC)
	searchH := searchhandler.NewSearchHandler(searchUC)

	// ルータ生成
	r := router.NewRouter(cfg.PushToken, candlesH, indexH, newsH, calendarH, searchH)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
