package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	GatewayURL string
	GatewayKey string

	SweepInterval time.Duration
	TableStale    time.Duration // occupancy window before the sweeper frees a table
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "restro.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        getDuration("JWT_TTL_HOURS", 24) * time.Hour,
		GatewayURL:    getEnv("PAYMENT_GATEWAY_URL", ""),
		GatewayKey:    os.Getenv("PAYMENT_GATEWAY_KEY"),
		SweepInterval: getDuration("SWEEP_INTERVAL_MINUTES", 10) * time.Minute,
		TableStale:    2 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback int) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
