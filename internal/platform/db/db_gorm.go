// Package db はgormデータベース接続のオープンとマイグレーションを提供します。
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	candleadapters "market_backend/internal/feature/candles/adapters"
)

// OpenDB はローソク足ストア用のDB接続を開きます。
//
// databaseURL が設定されていればPostgres、それ以外はsqliteファイル
// （デフォルトのデプロイ形態）を使用します。candlesテーブルは常に
// マイグレーションします（冪等）。接続できない場合はプロセスを落とします。
func OpenDB(dbPath, databaseURL string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if databaseURL != "" {
		// コンテナ起動直後はDB側の準備ができていないことがあるためリトライ
		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite db %q: %v", dbPath, err)
		}
	}

	if err := db.AutoMigrate(&candleadapters.CandleModel{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
