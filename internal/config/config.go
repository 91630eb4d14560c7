package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// durationSeconds parses env as time.Duration: "10s", "5m" or bare number = seconds (e.g. "10" -> 10s).
type durationSeconds time.Duration

// SetValue implements cleanenv.Setter.
func (d *durationSeconds) SetValue(data string) error {
	v, err := parseDuration(data)
	if err != nil {
		return err
	}
	*d = durationSeconds(v)
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	// Strip optional surrounding quotes: "10s" or '10s'
	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	// Bare number first (e.g. HTTP_READ_TIMEOUT=10) — so "10s" never goes to ParseInt
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration must be like 10s, 5m or a number of seconds: %w", err)
	}
	return d, nil
}

func (d durationSeconds) Duration() time.Duration { return time.Duration(d) }

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	PG   PGConfig
	CORS CORSConfig
}

type AppConfig struct {
	Env     string `env:"APP_ENV" env-default:"dev"`
	Version string `env:"VERSION" env-default:"dev"`
}

type HTTPConfig struct {
	// The original service listened on :5000; the dev frontend expects it there.
	Port string `env:"HTTP_PORT" env-default:"5000"`

	// Value: "10s", "5m" or a number of seconds without a suffix (e.g. 10).
	ReadTimeout  durationSeconds `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout durationSeconds `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  durationSeconds `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`

	// RequestTimeout bounds each request's context, database round trip included.
	RequestTimeout durationSeconds `env:"HTTP_REQUEST_TIMEOUT" env-default:"5s"`
}

type PGConfig struct {
	DSN string `env:"DATABASE_URL" env-required:"true"`
}

type CORSConfig struct {
	// Origin is the single allowed cross-origin client (the browser frontend).
	// Exactly one origin, never a wildcard.
	Origin string `env:"CORS_ORIGIN" env-default:"http://localhost:5173"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if strings.TrimSpace(cfg.PG.DSN) == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	return cfg, nil
}
