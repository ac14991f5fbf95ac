package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string
	JWTTTL      time.Duration
	CORSOrigins []string

	FineRate            decimal.Decimal
	SuspensionThreshold int
	LoanPeriodDays      int
	OverdueScanInterval time.Duration
	Location            *time.Location
	Seed                int64
	DemoPassword        string
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Env:          fallback(os.Getenv("APP_ENV"), "production"),
		Port:         fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:    strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:    fallback(os.Getenv("JWT_ISSUER"), "campus-library"),
		CORSOrigins:  parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		DemoPassword: fallback(os.Getenv("DEMO_PASSWORD"), "library123"),
	}

	cfg.JWTTTL = time.Duration(positiveInt("JWT_TTL_MINUTES", 60)) * time.Minute
	cfg.SuspensionThreshold = positiveInt("SUSPENSION_THRESHOLD_DAYS", 7)
	cfg.LoanPeriodDays = positiveInt("LOAN_PERIOD_DAYS", 14)
	cfg.OverdueScanInterval = time.Duration(positiveInt("OVERDUE_SCAN_MINUTES", 60)) * time.Minute

	rate, err := decimal.NewFromString(fallback(os.Getenv("FINE_RATE"), "10"))
	if err != nil || rate.IsNegative() {
		return Config{}, fmt.Errorf("invalid FINE_RATE %q", os.Getenv("FINE_RATE"))
	}
	cfg.FineRate = rate

	loc, err := time.LoadLocation(fallback(os.Getenv("LIBRARY_TIMEZONE"), "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LIBRARY_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	seed, err := strconv.ParseInt(fallback(os.Getenv("SEED"), "1"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SEED: %w", err)
	}
	cfg.Seed = seed

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// Development reports whether human-readable logs were requested.
func (c Config) Development() bool {
	return c.Env == "development"
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func positiveInt(key string, def int) int {
	if n, err := strconv.Atoi(fallback(os.Getenv(key), strconv.Itoa(def))); err == nil && n > 0 {
		return n
	}
	return def
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
