// Package dto はcalendarフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "market_backend/internal/feature/calendar/domain/entity"

// AddEventReq は POST /api/calendar/events のリクエストボディです。
type AddEventReq struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Time  string `json:"time"`
	Note  string `json:"note"`
}

// EventsResponse は予定一覧のレスポンスです。
type EventsResponse struct {
	Items map[string][]entity.Event `json:"items"`
}

// AddEventResponse は予定追加のレスポンスです。
type AddEventResponse struct {
	OK   bool         `json:"ok"`
	Item entity.Event `json:"item"`
}

// OKResponse は削除などの単純な成功レスポンスです。
type OKResponse struct {
	OK bool `json:"ok"`
}
