package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config centralizes console settings loaded from the environment.
type Config struct {
	APIBaseURL      string
	HTTPTimeout     time.Duration
	SessionTTL      time.Duration
	SessionMaxStale time.Duration
	StateDir        string
	RateLimit       RateLimitConfig
}

// RateLimitConfig throttles outbound requests client-side.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads environment variables and applies safe defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.APIBaseURL = strings.TrimSpace(getEnv("AYOQSH_API_URL", ""))
	if cfg.APIBaseURL == "" {
		return nil, errors.New("AYOQSH_API_URL talab qilinadi")
	}

	timeout, err := parseDurationEnv("AYOQSH_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	sessionTTL, err := parseDurationEnv("AYOQSH_SESSION_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = sessionTTL

	maxStale, err := parseDurationEnv("AYOQSH_SESSION_MAX_STALE", 12*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.SessionMaxStale = maxStale

	cfg.StateDir = strings.TrimSpace(getEnv("AYOQSH_STATE_DIR", ""))
	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.New("AYOQSH_STATE_DIR aniqlanmadi: " + err.Error())
		}
		cfg.StateDir = filepath.Join(base, "ayoqsh")
	}

	rps, err := parseFloatEnv("AYOQSH_RPS", 10)
	if err != nil {
		return nil, err
	}
	burst, err := parseIntEnv("AYOQSH_BURST", 20)
	if err != nil {
		return nil, err
	}
	cfg.RateLimit = RateLimitConfig{RequestsPerSecond: rps, Burst: burst}

	return cfg, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil || dur <= 0 {
		return 0, errors.New(key + " noto'g'ri")
	}
	return dur, nil
}

func parseFloatEnv(key string, def float64) (float64, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f < 0 {
		return 0, errors.New(key + " noto'g'ri")
	}
	return f, nil
}

func parseIntEnv(key string, def int) (int, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, errors.New(key + " noto'g'ri")
	}
	return n, nil
}
