package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Provider      string
	SourceLang    string
	TargetLang    string
	BatchSize     int
	BatchDelay    time.Duration
	MaxConcurrent int

	BaiduAppID  string
	BaiduSecret string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	CacheBackend string
	CachePath    string
	RedisURL     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		Provider:      getEnv("HANSCAN_PROVIDER", "google"),
		SourceLang:    getEnv("SOURCE_LANG", "zh"),
		TargetLang:    getEnv("TARGET_LANG", "en"),
		BatchSize:     getEnvInt("BATCH_SIZE", 10),
		BatchDelay:    getEnvMillis("BATCH_DELAY_MS", 1000),
		MaxConcurrent: getEnvInt("MAX_CONCURRENT_REQUESTS", 5),
		BaiduAppID:    getEnv("BAIDU_APP_ID", ""),
		BaiduSecret:   getEnv("BAIDU_APP_SECRET", ""),
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		CacheBackend:  getEnv("CACHE_BACKEND", "bolt"),
		CachePath:     getEnv("CACHE_PATH", ""),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvMillis(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Millisecond
}
