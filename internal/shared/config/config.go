package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	StorageDriver   string // "sqlite" (default) or "postgres"
	DatabaseURL     string
	SQLitePath      string
	BaseURL         string
	DefaultIndustry string
	Locale          string
	AssistantDelay  time.Duration
	RunwayFloor     float64 // months; runway below this keeps the critical alert active
	MonitorSchedule string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:            os.Getenv("PORT"),
		Env:             os.Getenv("ENV"),
		StorageDriver:   os.Getenv("STORAGE_DRIVER"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      os.Getenv("SQLITE_PATH"),
		BaseURL:         os.Getenv("BASE_URL"),
		DefaultIndustry: os.Getenv("DEFAULT_INDUSTRY"),
		Locale:          os.Getenv("LOCALE"),
		MonitorSchedule: os.Getenv("MONITOR_SCHEDULE"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = "sqlite"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "pocket-cfo.db"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}
	if cfg.DefaultIndustry == "" {
		cfg.DefaultIndustry = "tourism"
	}
	if cfg.Locale == "" {
		cfg.Locale = "en-NZ"
	}
	if cfg.MonitorSchedule == "" {
		cfg.MonitorSchedule = "*/15 * * * *"
	}

	cfg.AssistantDelay = envDurationMs("ASSISTANT_DELAY_MS", 1500*time.Millisecond)
	cfg.RunwayFloor = envFloat("RUNWAY_ALERT_FLOOR", 9.0)

	return cfg
}

func envDurationMs(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("⚠️ Invalid %s=%q, using default", key, raw)
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using default", key, raw)
		return fallback
	}
	return v
}
