package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Graph    GraphConfig    `yaml:"graph"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
}

// AnalysisConfig tunes the uniqueness pipeline.
type AnalysisConfig struct {
	Workers      int  `yaml:"workers" validate:"gte=0"`
	InvertLabels bool `yaml:"invert_labels"`
}

// GraphConfig selects the malformed-input policy of core.New.
type GraphConfig struct {
	DropInvalid bool `yaml:"drop_invalid"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// ServerConfig configures `relgraph serve`.
type ServerConfig struct {
	Addr         string `yaml:"addr" validate:"required"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" validate:"gt=0"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{Addr: ":8080", MaxBodyBytes: 4 << 20},
	}
}

var validate = validator.New()

// Load merges defaults, the YAML file at path (skipped when path is "")
// and environment overrides, then validates.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("RELGRAPH_WORKERS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			c.Analysis.Workers = i
		}
	}
	if v := os.Getenv("RELGRAPH_INVERT_LABELS"); v != "" {
		c.Analysis.InvertLabels = v == "true" || v == "1"
	}
	if v := os.Getenv("RELGRAPH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("RELGRAPH_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("RELGRAPH_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// Logger builds a slog.Logger writing to w.
func (c LogConfig) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
