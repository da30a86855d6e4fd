package config

import (
	"os"
	"strings"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/money"
)

type Config struct {
	Port        string
	DatabaseDSN string

	// RedisAddr is optional; without it carts are cached in process memory.
	RedisAddr string

	// RabbitURL is optional; without it order events are not published.
	RabbitURL string

	TaxRateTenthBps int64
}

func Load() Config {
	return Config{
		Port:            getenv("PORT", "8084"),
		DatabaseDSN:     getenv("POS_DB_DSN", ""),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		RabbitURL:       getenv("RABBITMQ_URL", ""),
		TaxRateTenthBps: parseTaxRate(getenv("TAX_RATE_BPS", "887.5")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseTaxRate(v string) int64 {
	rate, err := money.ParseRateBps(v)
	if err != nil {
		return money.DefaultTaxRateTenthBps
	}
	return rate
}
