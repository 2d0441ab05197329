package naver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	candleentity "market_backend/internal/feature/candles/domain/entity"
	candlesusecase "market_backend/internal/feature/candles/usecase"
	indexentity "market_backend/internal/feature/index/domain/entity"
	platformhttp "market_backend/internal/platform/http"
	"market_backend/internal/shared/ratelimiter"
)

// Client は上流金融サイトへのアクセスをまとめたクライアントです。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// ClientがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ candlesusecase.MarketRepository = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// limiter が nil の場合はレート制限なしで動作します。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// fetchTable はsiseJsonエンドポイントを呼び出し、パース済みテーブルを返します。
func (c *Client) fetchTable(ctx context.Context, symbol, timeframe string, start, end time.Time) (*Table, error) {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("requestType", "1")
	q.Set("startTime", start.Format(upstreamDateLayout))
	q.Set("endTime", end.Format(upstreamDateLayout))
	q.Set("timeframe", timeframe)

	u := fmt.Sprintf("%s/siseJson.naver?%s", c.cfg.APIBaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", platformhttp.DefaultUserAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("naver siseJson: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("naver siseJson http %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("naver siseJson: %w", err)
	}
	return ParseTable(string(body))
}

// GetTimeSeries は [start, end] の期間のローソク足を日付昇順で取得します。
// timeframe は上流ネイティブのトークン（day/week/month）です。
// CodeとTimeframeは未設定のまま返すので、呼び出し側が割り当てます。
func (c *Client) GetTimeSeries(ctx context.Context, code, timeframe string, start, end time.Time) ([]candleentity.Candle, error) {
	t, err := c.fetchTable(ctx, code, timeframe, start, end)
	if err != nil {
		return nil, err
	}
	return candlesFromTable(t)
}

// DailyPoints は指数シンボルの日次終値ポイントを直近days件返します。
// 休場日を考慮してdaysの2倍の期間を取得し、末尾days件に切り詰めます。
func (c *Client) DailyPoints(ctx context.Context, symbol string, days int) ([]indexentity.DailyPoint, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days*2)

	t, err := c.fetchTable(ctx, symbol, "day", start, end)
	if err != nil {
		return nil, err
	}
	pts, err := pointsFromTable(t)
	if err != nil {
		return nil, err
	}
	if len(pts) > days {
		pts = pts[len(pts)-days:]
	}
	return pts, nil
}
