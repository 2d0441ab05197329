// Package dto はnewsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// NewsItem は1記事分のレスポンスです。
type NewsItem struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Press string `json:"press,omitempty"`
	Ts    string `json:"ts,omitempty"`
}

// NewsResponse は GET /api/news のレスポンスです。
type NewsResponse struct {
	Items     []NewsItem `json:"items"`
	Source    string     `json:"source,omitempty"`
	FetchedAt string     `json:"fetchedAt,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// SummaryResponse は要約系エンドポイントのレスポンスです。
type SummaryResponse struct {
	Date        string `json:"date"`
	GeneratedAt string `json:"generatedAt"`
	Summary     string `json:"summary"`
	Count       int    `json:"count"`
}
