// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"market_backend/internal/feature/news/domain/entity"
	"market_backend/internal/feature/news/usecase"
)

// CachingNewsRepository decorates a NewsRepository with Redis caching.
// Scraping the news section is the slowest upstream call and its result is
// the same for every reader, so a short TTL takes most of the load off.
// Candle and index-point queries are deliberately NOT cached: those results
// belong to the caller for one request only.
type CachingNewsRepository struct {
	inner     usecase.NewsRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.NewsRepository = (*CachingNewsRepository)(nil)

// NewCachingNewsRepository decorates a NewsRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "news".
// A nil redis client turns the decorator into a pass-through.
func NewCachingNewsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.NewsRepository, namespace string) *CachingNewsRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "news"
	}
	return &CachingNewsRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FetchNews retrieves articles, checking cache first then falling back to
// the live scraper. Cache failures are best effort and never fail the call.
func (c *CachingNewsRepository) FetchNews(ctx context.Context, limit int) ([]entity.Article, error) {
	if c.rdb == nil {
		return c.inner.FetchNews(ctx, limit)
	}

	key := fmt.Sprintf("%s:%d", c.namespace, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Article
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the live scraper
	out, err := c.inner.FetchNews(ctx, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
