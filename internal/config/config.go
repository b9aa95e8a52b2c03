// Package config loads todo configuration from .todo.yaml and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the user configuration file.
	FileName = ".todo.yaml"

	// EnvPrefix prefixes environment overrides, e.g. TODO_ADDR.
	EnvPrefix = "TODO"

	// Default configuration values
	DefaultAddr      = ":3000"
	DefaultServer    = "http://localhost:3000"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error", "fatal"}
	validFormats = []string{"text", "json", "logfmt"}
)

// Config represents user configuration.
type Config struct {
	// Addr is the listen address for `todo serve`.
	Addr string `mapstructure:"addr" yaml:"addr"`

	// Server is the base URL client commands talk to.
	Server string `mapstructure:"server" yaml:"server"`

	// Seed is an optional seed file loaded into the store at startup.
	Seed string `mapstructure:"seed" yaml:"seed,omitempty"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig controls logger output.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Addr:   DefaultAddr,
		Server: DefaultServer,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// DefaultSearchDirs returns the directories searched for .todo.yaml, in
// priority order: the working directory, then the home directory.
func DefaultSearchDirs() []string {
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// Load loads configuration from path, or from the first .todo.yaml found in
// DefaultSearchDirs when path is empty.
func Load(path string) (*Config, error) {
	return LoadFrom(path, DefaultSearchDirs())
}

// LoadFrom loads configuration from path, or from the first .todo.yaml in
// searchDirs when path is empty. A missing search file yields defaults; a
// missing explicit path is an error. Partial files are merged with defaults
// and TODO_* environment variables override both.
func LoadFrom(path string, searchDirs []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := path
	if file == "" {
		file = findConfigFile(searchDirs)
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("invalid config: addr must not be empty")
	}
	if strings.TrimSpace(c.Server) == "" {
		return fmt.Errorf("invalid config: server must not be empty")
	}
	if !contains(validLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("invalid config: log.level %q (want one of %s)", c.Log.Level, strings.Join(validLevels, ", "))
	}
	if !contains(validFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("invalid config: log.format %q (want one of %s)", c.Log.Format, strings.Join(validFormats, ", "))
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("addr", d.Addr)
	v.SetDefault("server", d.Server)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// findConfigFile returns the first existing .todo.yaml in dirs, or "".
func findConfigFile(dirs []string) string {
	for _, dir := range dirs {
		p := filepath.Join(dir, FileName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
