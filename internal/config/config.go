package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

var ErrInsecureSecret = errors.New("JWT_SECRET must be set in production environment")

// Limits bounds what callers may request from the generator.
type Limits struct {
	DefaultLength int
	MinLength     int
	MaxLength     int
	MaxCount      int
}

type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	JWTSecret      string
	JWTExpiry      time.Duration
	Limits         Limits
	RateLimitRPS   float64
	RateLimitBurst int
}

// DefaultLimits mirrors the length slider of the desktop app: 6 to 30, starting at 6.
func DefaultLimits() Limits {
	return Limits{
		DefaultLength: 6,
		MinLength:     6,
		MaxLength:     30,
		MaxCount:      50,
	}
}

// Load reads the configuration from the environment. Callers load .env first.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passgen?parseTime=true"),
		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:      getEnvDuration("JWT_EXPIRY", 24*time.Hour),
		Limits:         LoadLimits(),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return cfg, ErrInsecureSecret
	}

	return cfg, nil
}

// LoadLimits reads the PASSGEN_* length and count bounds from the environment.
func LoadLimits() Limits {
	d := DefaultLimits()
	l := Limits{
		DefaultLength: getEnvInt("PASSGEN_DEFAULT_LENGTH", d.DefaultLength),
		MinLength:     getEnvInt("PASSGEN_MIN_LENGTH", d.MinLength),
		MaxLength:     getEnvInt("PASSGEN_MAX_LENGTH", d.MaxLength),
		MaxCount:      getEnvInt("PASSGEN_MAX_COUNT", d.MaxCount),
	}
	return l.normalize()
}

// normalize repairs inconsistent limits by falling back to the defaults.
func (l Limits) normalize() Limits {
	d := DefaultLimits()
	if l.MinLength < 1 || l.MaxLength < l.MinLength {
		slog.Warn("invalid password length bounds, using defaults",
			"min", l.MinLength, "max", l.MaxLength)
		l.MinLength, l.MaxLength = d.MinLength, d.MaxLength
	}
	if l.DefaultLength < l.MinLength || l.DefaultLength > l.MaxLength {
		slog.Warn("default password length out of bounds, using minimum", "length", l.DefaultLength)
		l.DefaultLength = l.MinLength
	}
	if l.MaxCount < 1 {
		l.MaxCount = d.MaxCount
	}
	return l
}

// Clamp pins length into [MinLength, MaxLength].
func (l Limits) Clamp(length int) int {
	return min(max(length, l.MinLength), l.MaxLength)
}

// Contains reports whether length is within bounds.
func (l Limits) Contains(length int) bool {
	return length >= l.MinLength && length <= l.MaxLength
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
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}
