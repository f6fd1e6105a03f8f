package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	JWTSecret              string
	TokenTTLMinutes        int
	RateLimit              int
	RedisAddr              string
	RedisEnabled           bool
	CacheTTLMinutes        int
	LogDir                 string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "taskhive.db"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		TokenTTLMinutes:        getEnvAsInt("TOKEN_TTL_MINUTES", 60),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisEnabled:           getEnv("REDIS_ENABLED", "false") == "true",
		CacheTTLMinutes:        getEnvAsInt("CACHE_TTL_MINUTES", 60),
		LogDir:                 getEnv("LOG_DIR", "logs"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must not be empty")
	}
	if cfg.TokenTTLMinutes <= 0 {
		log.Fatal("TOKEN_TTL_MINUTES must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.CacheTTLMinutes <= 0 {
		log.Fatal("CACHE_TTL_MINUTES must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
