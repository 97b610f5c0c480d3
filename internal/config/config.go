package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/conductor/internal/hostapi"
)

// FeaturesConfig mirrors hostapi.Features but in YAML-friendly form, so an
// operator running the CLI can flip optional behaviors without the host
// manager's own feature-flag plumbing.
type FeaturesConfig struct {
	// REDmodAutoconvertArchives folds legacy archive-only mods into a
	// synthesized REDmod module at install time.
	REDmodAutoconvertArchives bool `yaml:"redmod_autoconvert_archives"`
}

// KnownPathsConfig lets an operator extend the built-in known-basename and
// non-overridable-DLL tables without a code change, for game updates that
// add a config file or plugin DLL between releases of this tool.
type KnownPathsConfig struct {
	// ExtraJSONPaths adds to (never replaces) layout.KnownJSONPaths.
	ExtraJSONPaths map[string]string `yaml:"extra_json_paths"`

	// ExtraNonOverridableDLLs adds to layout.NonOverridableDLLs.
	ExtraNonOverridableDLLs []string `yaml:"extra_non_overridable_dlls"`
}

// Config is the top-level configuration for the v2077mod CLI.
type Config struct {
	// LogLevel sets the console logger's verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory persistent log files are written to. Empty
	// disables file logging and logs to the console only.
	LogDir string `yaml:"log_dir"`

	// CacheDir holds the sqlite testSupported decision cache. Empty
	// disables the cache.
	CacheDir string `yaml:"cache_dir"`

	// Features toggles optional installer behaviors.
	Features FeaturesConfig `yaml:"features"`

	// KnownPaths extends the built-in known-path tables.
	KnownPaths KnownPathsConfig `yaml:"known_paths"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		LogDir:   ".v2077mod/logs",
		CacheDir: ".v2077mod/cache",
		Features: FeaturesConfig{
			REDmodAutoconvertArchives: false,
		},
	}
}

// ToHostFeatures converts the YAML-friendly feature flags into the
// hostapi.Features value detectors actually consult.
func (c *Config) ToHostFeatures() hostapi.Features {
	f := hostapi.FeatureDisabled
	if c.Features.REDmodAutoconvertArchives {
		f = hostapi.FeatureEnabled
	}
	return hostapi.Features{REDmodAutoconvertArchives: f}
}

// applyEnvOverrides applies environment variable overrides to cfg.
// Recognized variables:
//   - V2077MOD_LOG_LEVEL
//   - V2077MOD_LOG_DIR
//   - V2077MOD_CACHE_DIR
//   - V2077MOD_REDMOD_AUTOCONVERT ("true" or "1" to enable)
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("V2077MOD_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
	if val := os.Getenv("V2077MOD_LOG_DIR"); val != "" {
		cfg.LogDir = val
	}
	if val := os.Getenv("V2077MOD_CACHE_DIR"); val != "" {
		cfg.CacheDir = val
	}
	if val := os.Getenv("V2077MOD_REDMOD_AUTOCONVERT"); val != "" {
		cfg.Features.REDmodAutoconvertArchives = val == "true" || val == "1"
	}
}

// LoadConfig loads configuration from the specified file path. If the file
// doesn't exist, it returns default configuration (with env overrides
// applied) without error. If the file exists but is malformed YAML, it
// returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		applyEnvOverrides(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.CacheDir != "" {
		cfg.CacheDir = fileCfg.CacheDir
	}
	cfg.Features = fileCfg.Features
	if len(fileCfg.KnownPaths.ExtraJSONPaths) > 0 {
		cfg.KnownPaths.ExtraJSONPaths = fileCfg.KnownPaths.ExtraJSONPaths
	}
	if len(fileCfg.KnownPaths.ExtraNonOverridableDLLs) > 0 {
		cfg.KnownPaths.ExtraNonOverridableDLLs = fileCfg.KnownPaths.ExtraNonOverridableDLLs
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}
