package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port         string        // HTTP listen port
	GinMode      string        // gin mode (debug/release/test)
	LogLevel     string        // logrus level name
	JWTSecret    []byte        // JWT signing key
	TokenTTL     time.Duration // session token lifetime
	PaymentDelay time.Duration // simulated payment processing time
}

// Load reads configuration from the environment, with a .env file if present.
func Load() *Config {
	_ = godotenv.Load()
	delayMS, err := strconv.Atoi(getEnv("PAYMENT_DELAY_MS", "2000"))
	if err != nil || delayMS < 0 {
		delayMS = 2000
	}
	return &Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		JWTSecret:    []byte(getEnv("JWT_SECRET", "farm_market_demo_secret_2024")),
		TokenTTL:     24 * time.Hour,
		PaymentDelay: time.Duration(delayMS) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
