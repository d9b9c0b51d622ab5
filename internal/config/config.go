package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvLogLevel     = "CHEQUESPLIT_LOG_LEVEL"
	EnvCollision    = "CHEQUESPLIT_COLLISION"
	EnvXLSCharset   = "CHEQUESPLIT_XLS_CHARSET"
	EnvOutputSuffix = "CHEQUESPLIT_OUTPUT_SUFFIX"
)

// Config holds the settings of one chequesplit run.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// Month sheets: "overwrite" or "split", checked by usecase.ParseCollisionPolicy
	Collision string `yaml:"collision"`

	// Input
	XLSCharset string `yaml:"xls_charset"`

	// Output file name: <input base><suffix>.xlsx when no output path is given
	OutputSuffix string `yaml:"output_suffix"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		Collision:    "overwrite",
		XLSCharset:   "utf-8",
		OutputSuffix: "_processed",
	}
}

// Load builds the configuration from defaults, then the optional YAML file at
// path, then a .env file in the working directory, then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Load .env for local runs; a missing file is fine.
	_ = godotenv.Load()

	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.Collision = getEnv(EnvCollision, cfg.Collision)
	cfg.XLSCharset = getEnv(EnvXLSCharset, cfg.XLSCharset)
	cfg.OutputSuffix = getEnv(EnvOutputSuffix, cfg.OutputSuffix)

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	if strings.TrimSpace(c.XLSCharset) == "" {
		problems = append(problems, "xls charset must not be empty")
	}

	if strings.ContainsAny(c.OutputSuffix, `/\`) {
		problems = append(problems, fmt.Sprintf("invalid output suffix %q: must not contain path separators", c.OutputSuffix))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
