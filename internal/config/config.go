// Package config loads the graphops YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/logging"
)

// Defaults applied before the file is read.
const (
	DefaultPath     = "graphops.yaml"
	DefaultDataFile = ".graph_data.json"
	DefaultLogLevel = "info"
	DefaultPrompt   = "(graph)>>"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full runtime configuration of graphops.
type Config struct {
	// DataFile is the JSON file the graph is saved to and loaded from.
	DataFile string `yaml:"data_file"`
	// Autosave saves the graph on exit and after `graphops exec`.
	Autosave bool `yaml:"autosave"`
	// Trace prints the fringe/explored table before each search result.
	Trace bool `yaml:"trace"`
	// Watch reloads the graph when DataFile changes on disk.
	Watch bool `yaml:"watch"`
	// MetricsAddr, when set, serves Prometheus metrics at /metrics.
	MetricsAddr string `yaml:"metrics_addr"`
	// Prompt is the interactive shell prompt.
	Prompt string `yaml:"prompt"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DataFile: DefaultDataFile,
		Autosave: true,
		Prompt:   DefaultPrompt,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: logging.FormatConsole,
		},
	}
}

// Load reads path on top of Default. A missing file yields the defaults
// unless mustExist is set. The result is validated.
func Load(path string, mustExist bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !mustExist:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields and enumerations.
func (c *Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.DataFile) == "" {
		errs = append(errs, "data_file is required")
	}
	switch c.Log.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Sprintf("log.format %q must be %q or %q", c.Log.Format, logging.FormatConsole, logging.FormatJSON))
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q is not a known level", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}

	return nil
}
