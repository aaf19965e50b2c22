// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // LoadLocation works in minimal containers without zoneinfo

	"github.com/pkordes/travel-assistant/backend/internal/domain"
	"github.com/pkordes/travel-assistant/backend/internal/timeline"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// Location is the zone booking dates and times are interpreted in and
	// analysis windows are computed in. TIMEZONE, defaults to UTC.
	Location *time.Location

	// MinFreeSlotMinutes is the shortest gap reported as a free slot.
	// MIN_FREE_SLOT_MINUTES, defaults to 30.
	MinFreeSlotMinutes int

	// WindowPolicy is ANALYSIS_WINDOW: "rest_of_day" (default) or "full_day".
	WindowPolicy timeline.WindowPolicy

	// DayStart and DayEnd bound the waking day (DAY_START / DAY_END,
	// defaults 08:00 and 22:00).
	DayStart domain.TimeOfDay
	DayEnd   domain.TimeOfDay

	// MaxBodyBytes caps request bodies. MAX_BODY_BYTES, defaults to 1 MiB.
	MaxBodyBytes int64

	// RateLimitRPS and RateLimitBurst configure the per-client token bucket.
	RateLimitRPS   float64
	RateLimitBurst int

	// FetchTimeout bounds the booking repository fetch.
	// BOOKING_FETCH_TIMEOUT, defaults to 5s.
	FetchTimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first variable whose value cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	var err error

	tz := getEnv("TIMEZONE", "UTC")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return Config{}, fmt.Errorf("TIMEZONE: invalid zone %q: %w", tz, err)
	}

	if cfg.MinFreeSlotMinutes, err = getInt("MIN_FREE_SLOT_MINUTES", timeline.DefaultMinFreeSlotMinutes); err != nil {
		return Config{}, err
	}
	if cfg.MinFreeSlotMinutes < 1 {
		return Config{}, fmt.Errorf("MIN_FREE_SLOT_MINUTES: must be at least 1")
	}

	if cfg.WindowPolicy, err = timeline.ParseWindowPolicy(getEnv("ANALYSIS_WINDOW", string(timeline.PolicyRestOfDay))); err != nil {
		return Config{}, fmt.Errorf("ANALYSIS_WINDOW: %w", err)
	}

	if cfg.DayStart, err = getTimeOfDay("DAY_START", "08:00"); err != nil {
		return Config{}, err
	}
	if cfg.DayEnd, err = getTimeOfDay("DAY_END", "22:00"); err != nil {
		return Config{}, err
	}
	if cfg.DayEnd <= cfg.DayStart {
		return Config{}, fmt.Errorf("DAY_END (%s) must be after DAY_START (%s)", cfg.DayEnd, cfg.DayStart)
	}

	maxBody, err := getInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxBodyBytes = int64(maxBody)

	rps := getEnv("RATE_LIMIT_RPS", "10")
	if cfg.RateLimitRPS, err = strconv.ParseFloat(rps, 64); err != nil || cfg.RateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: want a positive number, got %q", rps)
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: must be at least 1")
	}

	timeout := getEnv("BOOKING_FETCH_TIMEOUT", "5s")
	if cfg.FetchTimeout, err = time.ParseDuration(timeout); err != nil {
		return Config{}, fmt.Errorf("BOOKING_FETCH_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// Window returns the analysis window policy described by cfg.
func (c Config) Window() timeline.WindowConfig {
	return timeline.WindowConfig{
		Policy:   c.WindowPolicy,
		DayStart: c.DayStart,
		DayEnd:   c.DayEnd,
		Location: c.Location,
	}
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getInt is getEnv for integer values.
func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: want an integer, got %q", key, v)
	}
	return n, nil
}

func getTimeOfDay(key, fallback string) (domain.TimeOfDay, error) {
	t, err := domain.ParseTimeOfDay(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return t, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
