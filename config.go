package proxyinfo

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cybergodev/proxyinfo/internal/validation"
)

// Built-in source names for Config.Sources.
const (
	SourceAndroid     = "android"
	SourceScutil      = "scutil"
	SourceRegistry    = "registry"
	SourceEnvironment = "environment"
	SourceEnvFile     = "envfile"
	SourceSnapshot    = "snapshot"
)

var builtinSources = []string{
	SourceAndroid,
	SourceScutil,
	SourceRegistry,
	SourceEnvironment,
	SourceEnvFile,
	SourceSnapshot,
}

const maxCommandTimeout = time.Minute

// Config controls which settings stores a Detector reads and how.
type Config struct {
	// Sources lists built-in source names in lookup order. Empty selects
	// the platform default (see DefaultSources).
	Sources []string `yaml:"sources"`

	// CommandTimeout bounds each `settings` or `scutil` invocation.
	// Zero means no timeout beyond the caller's context.
	CommandTimeout time.Duration `yaml:"command_timeout"`

	// EnvFile is the dotenv file read by the envfile source.
	EnvFile string `yaml:"env_file"`

	// SnapshotFile is the YAML settings snapshot read by the snapshot source.
	SnapshotFile string `yaml:"snapshot_file"`

	// IncludeDiagnostics attaches the raw settings to every Result.
	IncludeDiagnostics bool `yaml:"include_diagnostics"`

	// Logger receives debug dumps of raw settings and lookup failures.
	// Nil uses logrus.StandardLogger().
	Logger logrus.FieldLogger `yaml:"-"`
}

// DefaultConfig returns the configuration used by New() without arguments.
func DefaultConfig() *Config {
	return &Config{
		CommandTimeout:     5 * time.Second,
		IncludeDiagnostics: false,
	}
}

// ValidateConfig validates the configuration with reasonable limits
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}

	seen := make(map[string]bool, len(cfg.Sources))
	for _, name := range cfg.Sources {
		if err := validation.ValidateSourceName(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if !slices.Contains(builtinSources, name) {
			return fmt.Errorf("%w: %q", ErrUnknownSource, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: source %q listed twice", ErrInvalidConfig, name)
		}
		seen[name] = true
	}

	if cfg.CommandTimeout < 0 {
		return fmt.Errorf("%w: CommandTimeout cannot be negative, got %v", ErrInvalidConfig, cfg.CommandTimeout)
	}
	if cfg.CommandTimeout > maxCommandTimeout {
		return fmt.Errorf("%w: CommandTimeout too large (max %v), got %v", ErrInvalidConfig, maxCommandTimeout, cfg.CommandTimeout)
	}

	if err := validation.ValidateFilePath(cfg.EnvFile, "env file"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := validation.ValidateFilePath(cfg.SnapshotFile, "snapshot file"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if seen[SourceEnvFile] && cfg.EnvFile == "" {
		return fmt.Errorf("%w: source %q requires EnvFile", ErrInvalidConfig, SourceEnvFile)
	}
	if seen[SourceSnapshot] && cfg.SnapshotFile == "" {
		return fmt.Errorf("%w: source %q requires SnapshotFile", ErrInvalidConfig, SourceSnapshot)
	}

	return nil
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig:
//
//	sources: [environment, snapshot]
//	command_timeout: 2s
//	snapshot_file: device.yaml
//	include_diagnostics: true
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// deepCopyConfig copies the configuration so a Detector is not affected by
// later changes to the caller's Config.
func deepCopyConfig(src *Config) *Config {
	dst := *src
	dst.Sources = slices.Clone(src.Sources)
	return &dst
}
