package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/cargobump/internal/core"
	"github.com/indaco/cargobump/internal/logging"
	"github.com/indaco/cargobump/internal/tui"
)

// DefaultFileName is the config file looked up in the project root.
const DefaultFileName = ".cargobump.yaml"

// EnvConfigPath names an environment variable pointing at a config file.
const EnvConfigPath = "CARGOBUMP_CONFIG"

// Inspector modes.
const (
	InspectorAuto   = "auto"
	InspectorCargo  = "cargo"
	InspectorNative = "native"
)

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW

// Config is the cargobump configuration file.
type Config struct {
	// Inspector selects workspace discovery: auto, cargo or native.
	Inspector string `yaml:"inspector,omitempty"`

	// CargoPath overrides the cargo executable.
	CargoPath string `yaml:"cargo-path,omitempty"`

	// AtomicWrites writes manifests through a temporary file and rename.
	AtomicWrites bool `yaml:"atomic-writes,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log-level,omitempty"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log-format,omitempty"`

	// Theme names the TUI theme used for interactive prompts.
	Theme string `yaml:"theme,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Inspector: InspectorAuto,
		LogLevel:  logging.LevelWarn,
		LogFormat: logging.FormatText,
	}
}

// LoadFn is a function variable so tests can stub configuration loading.
var LoadFn = Load

// Load reads the configuration for root.
//
// Priority: explicitPath, then $CARGOBUMP_CONFIG, then root/.cargobump.yaml.
// A missing default file yields Default(); a missing explicit file is an error.
func Load(root, explicitPath string) (*Config, error) {
	path := explicitPath
	required := true
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = filepath.Join(root, DefaultFileName)
		required = false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills fields left empty by the file. An empty or
// comments-only file decodes to a zero Config and ends up as Default().
func (c *Config) applyDefaults() {
	def := Default()
	if c.Inspector == "" {
		c.Inspector = def.Inspector
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Inspector {
	case "", InspectorAuto, InspectorCargo, InspectorNative:
	default:
		return fmt.Errorf("inspector must be one of %s, %s, %s; got %q", InspectorAuto, InspectorCargo, InspectorNative, c.Inspector)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("log-format must be %s or %s; got %q", logging.FormatText, logging.FormatJSON, c.LogFormat)
	}
	if c.Theme != "" && !tui.IsValidTheme(c.Theme) {
		return fmt.Errorf("theme must be one of %s; got %q", strings.Join(tui.ValidThemes, ", "), c.Theme)
	}
	return nil
}
