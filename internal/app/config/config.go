// Package config loads and validates process configuration at startup.
// Components receive the values they need through constructors; nothing
// reads the environment mid-request.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the server needs.
type Config struct {
	Addr         string // listen address for the HTTP server
	PushToken    string // shared secret for the candle ingestion endpoint
	DBPath       string // sqlite file path (default backend)
	DatabaseURL  string // postgres DSN; overrides sqlite when set
	RedisAddr    string // optional redis for the news cache
	CalendarPath string // flat-file calendar store
	SummaryPath  string // flat-file latest news summary
	MasterPath   string // optional stocks master file for name search
}

// ErrPushTokenMissing is returned when PUSH_TOKEN is not set. The ingestion
// endpoint cannot authenticate anything without it, so startup fails.
var ErrPushTokenMissing = errors.New("PUSH_TOKEN not set")

// Load reads an optional .env file, then the process environment, and
// validates the result once. It is the only place configuration is read.
func Load() (Config, error) {
	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := Config{
		Addr:         getenv("ADDR", ":8080"),
		PushToken:    os.Getenv("PUSH_TOKEN"),
		DBPath:       getenv("CANDLES_DB_PATH", "candles.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		CalendarPath: getenv("CALENDAR_STORE", "calendar_events.json"),
		SummaryPath:  getenv("NEWS_SUMMARY_STORE", "daily_news_summary.json"),
		MasterPath:   getenv("STOCKS_MASTER_PATH", "stocks_master.json"),
	}

	if cfg.PushToken == "" {
		return Config{}, ErrPushTokenMissing
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
