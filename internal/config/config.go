/*
Package config manages the TOML config of the elemental command.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Output OutputConfig `toml:"output"`
	Dict   DictConfig   `toml:"dict"`
	Log    LogConfig    `toml:"log"`
	Run    RunConfig    `toml:"run"`
}

// OutputConfig has rendering options.
type OutputConfig struct {
	Format string `toml:"format"` // text, color, json or msgpack
	Banner bool   `toml:"banner"` // NOT POSSIBLE banner for text formats
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path string `toml:"path"` // CSV element table; empty selects the embedded table
}

// LogConfig holds logging options.
type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
}

// RunConfig holds options for the decomposition run.
type RunConfig struct {
	Strict bool `toml:"strict"` // fail if a word cannot be spelled completely
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			Banner: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// GetDefaultConfigPath returns the default path for config.toml,
// [UserConfigDir]/elemental/config.toml.
func GetDefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "elemental", "config.toml"), nil
}

// Load loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/elemental/config.toml
// 3. Builtin defaults
//
// A custom path which cannot be loaded is an error. A missing or broken file
// at the default path falls back to the builtin defaults. Progress and
// warnings go to l.
func Load(l *log.Logger, customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		config, err := LoadConfig(l, customConfigPath)
		if err != nil {
			return nil, "", err
		}
		l.Debugf("Loaded config from custom path: %s", customConfigPath)
		return config, customConfigPath, nil
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		l.Debugf("No default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}
	if _, err := os.Stat(defaultPath); err != nil {
		return DefaultConfig(), "", nil
	}
	config, err := LoadConfig(l, defaultPath)
	if err != nil {
		l.Warnf("Failed to load config from %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	l.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// LoadConfig loads from a TOML file. Keys missing in the file keep their
// default values.
func LoadConfig(l *log.Logger, configPath string) (*Config, error) {
	config := DefaultConfig()
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		l.Warnf("Ignoring unknown config keys in %s: %v", configPath, undecoded)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	return config, nil
}

// Validate checks values which cannot be checked by decoding alone.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "text", "color", "json", "msgpack":
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}
	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(config)
}
