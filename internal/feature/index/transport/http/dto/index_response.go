// Package dto はindexフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// QuoteItem は1指数分の現在値レスポンスです。取得失敗時は値がnullになり、
// Errorに理由が入ります。
type QuoteItem struct {
	Price      *float64 `json:"price"`
	Change     *float64 `json:"change"`
	ChangeRate *float64 `json:"changeRate"`
	Error      string   `json:"error,omitempty"`
}

// PointItem は日次ポイント系列の1点です。
type PointItem struct {
	T string  `json:"t"`
	V float64 `json:"v"`
}

// SeriesItem は1指数分のポイント系列です。
type SeriesItem struct {
	Points []PointItem `json:"points"`
}
