package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	calendarhandler "market_backend/internal/feature/calendar/transport/handler"
	candlehandler "market_backend/internal/feature/candles/transport/handler"
	indexhandler "market_backend/internal/feature/index/transport/handler"
	newshandler "market_backend/internal/feature/news/transport/handler"
	searchhandler "market_backend/internal/feature/search/transport/handler"
	platformhandler "market_backend/internal/platform/http/handler"
	"market_backend/internal/platform/pushauth"
)

// NewRouter は全エンドポイントのルーティングを構築します。
// pushToken はプッシュ系エンドポイントの共有シークレットで、起動時の
// 設定から渡されます。
func NewRouter(
	pushToken string,
	candles *candlehandler.CandlesHandler,
	index *indexhandler.IndexHandler,
	news *newshandler.NewsHandler,
	calendar *calendarhandler.CalendarHandler,
	search *searchhandler.SearchHandler,
) *gin.Engine {
	r := gin.Default()

	// Webフロントエンドからの呼び出し用
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")
	{
		// 株価・検索
		api.GET("/stocks/candles", candles.GetCandles)
		api.GET("/stocks/search", search.Search)

		// 指数
		api.GET("/index/current", index.Current)
		api.GET("/index/minute", index.Minute)

		// ニュース
		api.GET("/news", news.List)
		api.GET("/news/summary", news.Summarize)
		api.GET("/news/summary/latest", news.Latest)

		// カレンダー
		api.GET("/calendar/events", calendar.List)
		api.POST("/calendar/events", calendar.Add)
		api.DELETE("/calendar/events/:date/:id", calendar.Delete)

		// 共有シークレット必須のプッシュ受け口
		push := api.Group("/internal", pushauth.TokenRequired(pushToken))
		push.POST("/push/candles", candles.PushCandles)
	}

	return r
}
