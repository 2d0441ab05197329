// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	infrahttp "market_backend/internal/platform/http"
	"market_backend/internal/platform/naver"
	"market_backend/internal/shared/ratelimiter"
)

// upstreamCallsPerMinute caps how often we hit the upstream finance site.
const upstreamCallsPerMinute = 30

// NewUpstream creates a fully configured upstream client with a bounded
// HTTP timeout and a per-minute rate limit.
func NewUpstream() *naver.Client {
	cfg := naver.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(upstreamCallsPerMinute, time.Minute)
	return naver.NewClient(cfg, httpClient, limiter)
}
