package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/lightgrid/internal/lightgrid"
	"github.com/specialistvlad/lightgrid/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
// Exactly one of PlanPath and InputPath is set.
type Config struct {
	PlanPath  string // hcl file or directory
	InputPath string // text instruction file
	Backends  []lightgrid.Kind

	Shards  int
	Workers int

	LogFormat string
	LogLevel  string
	Output    report.Format
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	switch {
	case cfg.PlanPath == "" && cfg.InputPath == "":
		return nil, errors.New("either a plan path or an input path is required")
	case cfg.PlanPath != "" && cfg.InputPath != "":
		return nil, errors.New("a plan path and an input path cannot be used together")
	}

	if cfg.InputPath != "" && len(cfg.Backends) == 0 {
		cfg.Backends = append([]lightgrid.Kind(nil), lightgrid.Kinds...)
	}
	for _, k := range cfg.Backends {
		if _, err := lightgrid.ParseKind(string(k)); err != nil {
			return nil, err
		}
	}

	if cfg.Shards < 0 {
		return nil, fmt.Errorf("shards must not be negative, got %d", cfg.Shards)
	}
	if cfg.Shards == 0 {
		cfg.Shards = 1
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	if cfg.Output == "" {
		cfg.Output = report.FormatText
	}
	if _, err := report.ParseFormat(string(cfg.Output)); err != nil {
		return nil, err
	}

	return &cfg, nil
}
