package config

import (
	"os"
	"strconv"

	"charity_farm/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string

	// Redis for rate limiting (optional, limiter is fail-open without it)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Per-user limits for economy actions (tap/donate/purchase)
	ActionRateLimit  int
	ActionRateWindow int
}

// Загрузка конфига из env
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	// Tap cooldown is 1s, so 120/min leaves headroom for the other actions
	actionRateLimit := 120
	if v := os.Getenv("ACTION_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			actionRateLimit = n
		}
	}

	actionRateWindow := 60
	if v := os.Getenv("ACTION_RATE_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			actionRateWindow = n
		}
	}

	return &Config{
		AppPort:          port,
		DatabaseURL:      dbURL,
		JWTSecret:        jwtSecret,
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          redisDB,
		ActionRateLimit:  actionRateLimit,
		ActionRateWindow: actionRateWindow,
	}
}
