package naver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	indexentity "market_backend/internal/feature/index/domain/entity"
	platformhttp "market_backend/internal/platform/http"
	"market_backend/internal/shared/coerce"
)

// 指数ページのHTMLから現在値・前日比・騰落率を拾う正規表現。
// マークアップは予告なく変わるため、id指定とラベル近傍のフォールバックを併用します。
var (
	reNowValue    = regexp.MustCompile(`id="now_value"[^>]*>\s*([0-9.,]+)\s*<`)
	reNowFallback = regexp.MustCompile(`(?s)현재지수</span>\s*<em[^>]*>\s*<span[^>]*>([0-9.,]+)</span>`)
	reChangeValue = regexp.MustCompile(`id="change_value"[^>]*>\s*([0-9.,]+)\s*<`)
	reChangeFall  = regexp.MustCompile(`(?s)전일대비</span>.*?<span[^>]*class="tah">([0-9.,]+)</span>`)
	reChangeRate  = regexp.MustCompile(`id="change_rate"[^>]*>\s*([0-9.,]+)\s*<`)
	reChangeRFall = regexp.MustCompile(`(?s)등락률</span>.*?<span[^>]*class="tah">([0-9.,]+)</span>`)
)

// findFloat は主パターン→フォールバックの順にHTMLへ適用し、最初に取れた
// 数値を返します。どちらも当たらなければnilです。
func findFloat(html string, primary, fallback *regexp.Regexp) *float64 {
	m := primary.FindStringSubmatch(html)
	if m == nil {
		m = fallback.FindStringSubmatch(html)
	}
	if m == nil {
		return nil
	}
	f, err := coerce.Float(m[1])
	if err != nil {
		return nil
	}
	return &f
}

// CurrentQuote は指数（KOSPI/KOSDAQ）の現在値をHTMLページから取得します。
// 現在値が取れなければエラー、前日比・騰落率は取れた分だけ返します。
func (c *Client) CurrentQuote(ctx context.Context, code string) (indexentity.IndexQuote, error) {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	u := fmt.Sprintf("%s/sise/sise_index.naver?code=%s", c.cfg.IndexBaseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return indexentity.IndexQuote{}, err
	}
	req.Header.Set("User-Agent", platformhttp.DefaultUserAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return indexentity.IndexQuote{}, fmt.Errorf("naver index page: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return indexentity.IndexQuote{}, fmt.Errorf("naver index page http %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return indexentity.IndexQuote{}, fmt.Errorf("naver index page: %w", err)
	}
	html := string(body)

	price := findFloat(html, reNowValue, reNowFallback)
	if price == nil {
		return indexentity.IndexQuote{}, fmt.Errorf("failed to parse %s now value", code)
	}

	q := indexentity.IndexQuote{
		Price:      *price,
		Change:     findFloat(html, reChangeValue, reChangeFall),
		ChangeRate: findFloat(html, reChangeRate, reChangeRFall),
	}

	// ページ上の数値は絶対値のみで、下落はマーカークラスで示される
	if strings.Contains(html, "no_down") {
		if q.Change != nil {
			v := -abs(*q.Change)
			q.Change = &v
		}
		if q.ChangeRate != nil {
			v := -abs(*q.ChangeRate)
			q.ChangeRate = &v
		}
	}
	return q, nil
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
