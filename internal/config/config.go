// SPDX-License-Identifier: MIT

// Package config loads pathkit settings with priority env > file > defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete pathkit configuration.
type Config struct {
	Log       LogConfig       `yaml:"log" json:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry"`
	Search    SearchConfig    `yaml:"search" json:"search"`
	Grid      GridConfig      `yaml:"grid" json:"grid"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" json:"level"`
	// Format is text or json.
	Format string `yaml:"format" json:"format"`
}

// TelemetryConfig selects OpenTelemetry exporters.
type TelemetryConfig struct {
	ServiceName    string `yaml:"service_name" json:"service_name"`
	ServiceVersion string `yaml:"service_version" json:"service_version"`
	// TraceExporter is stdout or none.
	TraceExporter string `yaml:"trace_exporter" json:"trace_exporter"`
	// MetricExporter is stdout or none.
	MetricExporter string `yaml:"metric_exporter" json:"metric_exporter"`
}

// SearchConfig holds search budgets. Zero disables a budget.
type SearchConfig struct {
	MaxCost      int64 `yaml:"max_cost" json:"max_cost"`
	MaxFinalized int   `yaml:"max_finalized" json:"max_finalized"`
}

// GridConfig holds defaults for the grid command.
type GridConfig struct {
	Start    string `yaml:"start" json:"start"`
	Goal     string `yaml:"goal" json:"goal"`
	Walls    string `yaml:"walls" json:"walls"`
	Diagonal bool   `yaml:"diagonal" json:"diagonal"`
}

// Default returns the built-in configuration: info text logs, telemetry off,
// unbounded search, 'S' to 'E' with '#' walls on a 4-connected grid.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Telemetry: TelemetryConfig{
			ServiceName:    "pathkit",
			ServiceVersion: "0.1.0",
			TraceExporter:  "none",
			MetricExporter: "none",
		},
		Grid: GridConfig{Start: "S", Goal: "E", Walls: "#"},
	}
}

// Load starts from Default, overlays the YAML file at path when path is not
// empty, then applies environment overrides and validates the result.
// A missing file is an error: the path was asked for explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overrides cfg from PATHKIT_* and the standard OTEL_* variables.
// Unparsable numeric values are ignored.
func applyEnv(cfg *Config) {
	cfg.Log.Level = getEnvOr("PATHKIT_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnvOr("PATHKIT_LOG_FORMAT", cfg.Log.Format)
	cfg.Telemetry.TraceExporter = getEnvOr("OTEL_TRACES_EXPORTER", cfg.Telemetry.TraceExporter)
	cfg.Telemetry.MetricExporter = getEnvOr("OTEL_METRICS_EXPORTER", cfg.Telemetry.MetricExporter)

	if v := os.Getenv("PATHKIT_MAX_COST"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Search.MaxCost = i
		}
	}
	if v := os.Getenv("PATHKIT_MAX_FINALIZED"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Search.MaxFinalized = i
		}
	}
}

// getEnvOr returns the environment variable value or the fallback.
func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// Validate checks every field and reports the first problem wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	for name, exp := range map[string]string{
		"telemetry.trace_exporter":  c.Telemetry.TraceExporter,
		"telemetry.metric_exporter": c.Telemetry.MetricExporter,
	} {
		if exp != "stdout" && exp != "none" {
			return fmt.Errorf("%w: %s %q (want stdout or none)", ErrInvalidConfig, name, exp)
		}
	}
	if c.Search.MaxCost < 0 {
		return fmt.Errorf("%w: search.max_cost %d is negative", ErrInvalidConfig, c.Search.MaxCost)
	}
	if c.Search.MaxFinalized < 0 {
		return fmt.Errorf("%w: search.max_finalized %d is negative", ErrInvalidConfig, c.Search.MaxFinalized)
	}
	if len([]rune(c.Grid.Start)) != 1 || len([]rune(c.Grid.Goal)) != 1 {
		return fmt.Errorf("%w: grid.start and grid.goal must be single characters", ErrInvalidConfig)
	}

	return nil
}
