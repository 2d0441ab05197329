package naver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	newsentity "market_backend/internal/feature/news/domain/entity"
	platformhttp "market_backend/internal/platform/http"
)

// econNewsSection は経済ニュースのセクションページです。
const econNewsSection = "/section/101"

// FetchNews は経済ニュースセクションから直近の記事を最大limit件取得します。
// 言論社・時刻は同じカード内から拾い、取れなければ空のままにします。
func (c *Client) FetchNews(ctx context.Context, limit int) ([]newsentity.Article, error) {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	u := c.cfg.NewsBaseURL + econNewsSection
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", platformhttp.DefaultUserAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("naver news: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("naver news http %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("naver news: %w", err)
	}

	items := make([]newsentity.Article, 0, limit)
	doc.Find("a.sa_text_title").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title := strings.TrimSpace(a.Text())
		link := strings.TrimSpace(a.AttrOr("href", ""))
		if title == "" || link == "" {
			return true
		}

		card := a.Parent()
		article := newsentity.Article{
			Title: title,
			Link:  link,
			Press: strings.TrimSpace(card.Find(".sa_text_press").First().Text()),
			Ts:    strings.TrimSpace(card.Find(".sa_text_datetime").First().Text()),
		}

		items = append(items, article)
		return len(items) < limit
	})

	return items, nil
}
