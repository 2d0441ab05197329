// Package http は外部サイト呼び出し用に設定済みのHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultUserAgent は上流の金融サイトがデフォルトのGoクライアントUAを
// 弾くことがあるため、ブラウザ相当のUA文字列を使用します。
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// NewHTTPClient は上流サイト呼び出し用に設定されたHTTPクライアントを作成します。
//
// 注意:
//   - http.DefaultClient にはタイムアウトがないため、常にこのクライアントを使用すること。
//     ハングした上流呼び出しはタイムアウトで失敗として扱う。
//   - Transport は接続の安定性とリソース管理のために明示的に設定。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
