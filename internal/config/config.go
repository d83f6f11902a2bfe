package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Redis struct {
		Addr     string `yaml:"addr" env:"TRIVIA_REDIS_ADDR"`
		Password string `yaml:"password" env:"TRIVIA_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"TRIVIA_REDIS_DB"`
		TTL      string `yaml:"ttl" env:"TRIVIA_REDIS_TTL"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url" env:"TRIVIA_POSTGRES_URL"`
	} `yaml:"postgres"`
	Catalog struct {
		TTL string `yaml:"ttl" env:"TRIVIA_CATALOG_TTL"`
	} `yaml:"catalog"`
	Game struct {
		RevealDelay  string `yaml:"revealDelay" env:"TRIVIA_REVEAL_DELAY"`
		AnswerWindow string `yaml:"answerWindow" env:"TRIVIA_ANSWER_WINDOW"`
		Seed         int64  `yaml:"seed" env:"TRIVIA_SEED"`
	} `yaml:"game"`
	Audio struct {
		Enabled bool `yaml:"enabled" env:"TRIVIA_AUDIO"`
	} `yaml:"audio"`
	Scoreboard struct {
		Addr string `yaml:"addr" env:"TRIVIA_SCOREBOARD_ADDR"`
	} `yaml:"scoreboard"`
	Log struct {
		Level string `yaml:"level" env:"TRIVIA_LOG_LEVEL"`
	} `yaml:"log"`
}

// Default returns the settings used when no file or variable overrides them.
func Default() Config {
	cfg := Config{}
	cfg.Catalog.TTL = "10m"
	cfg.Redis.TTL = "30m"
	cfg.Game.RevealDelay = "2s"
	cfg.Game.AnswerWindow = "20s"
	cfg.Audio.Enabled = true
	cfg.Log.Level = "warn"
	return cfg
}

// Load reads YAML config from path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// LogLevel maps the configured level name to a slog level, defaulting to warn.
func (c Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}
