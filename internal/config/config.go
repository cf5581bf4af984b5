package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/rostercost/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config defines rostercost configuration.
type Config struct {
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Report ReportConfig `yaml:"report"`
	Cost   CostConfig   `yaml:"cost"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ReportConfig struct {
	// Workers bounds how many projects the report computes at once.
	Workers int `yaml:"workers"`
}

type CostConfig struct {
	// CycleCheck is "graph" (any cycle) or "reciprocal" (two-node only).
	CycleCheck string `yaml:"cycle_check"`
	// FallbackWorkCodes count as worked while no shift types are defined.
	FallbackWorkCodes []string `yaml:"fallback_work_codes"`
}

// Default returns the built-in configuration. The database lives at
// ~/.rostercost/rostercost.db.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DB:     DBConfig{Path: filepath.Join(home, ".rostercost", "rostercost.db")},
		Log:    LogConfig{Level: "warn"},
		Report: ReportConfig{Workers: 1},
		Cost: CostConfig{
			CycleCheck:        string(domain.CycleGraph),
			FallbackWorkCodes: append([]string(nil), domain.DefaultWorkShiftCodes...),
		},
	}, nil
}

// Load reads configuration from defaults, then an optional YAML file named
// by ROSTERCOST_CONFIG, then environment variables.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if path := os.Getenv("ROSTERCOST_CONFIG"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("ROSTERCOST_DB"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("ROSTERCOST_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if workersStr := os.Getenv("ROSTERCOST_REPORT_WORKERS"); workersStr != "" {
		workers, err := strconv.Atoi(workersStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ROSTERCOST_REPORT_WORKERS: %w", err)
		}
		cfg.Report.Workers = workers
	}
	if check := os.Getenv("ROSTERCOST_CYCLE_CHECK"); check != "" {
		cfg.Cost.CycleCheck = check
	}
	if codes := os.Getenv("ROSTERCOST_FALLBACK_WORK_CODES"); codes != "" {
		cfg.Cost.FallbackWorkCodes = splitCodes(codes)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot use.
func (c Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path is required")
	}
	if c.Report.Workers < 1 {
		return fmt.Errorf("report.workers must be at least 1, got %d", c.Report.Workers)
	}
	if !domain.ValidCyclePolicies[c.Cost.CycleCheck] {
		return fmt.Errorf("cost.cycle_check must be %q or %q, got %q", domain.CycleGraph, domain.CycleReciprocal, c.Cost.CycleCheck)
	}
	if len(c.Cost.FallbackWorkCodes) == 0 {
		return fmt.Errorf("cost.fallback_work_codes must not be empty")
	}
	return nil
}

// CyclePolicy returns the configured cycle policy.
func (c Config) CyclePolicy() domain.CyclePolicy {
	return domain.CyclePolicy(c.Cost.CycleCheck)
}

// SlogLevel maps the configured level name to a slog level. Unknown names
// mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitCodes(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
