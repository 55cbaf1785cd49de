package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/kalender/foundation/core/errors"
	mdwlog "github.com/msto63/kalender/foundation/core/log"
	"github.com/msto63/kalender/foundation/utils/datex"
)

// EnvConfigPath names the environment variable holding an explicit config path
const EnvConfigPath = "KAL_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Calendar CalendarConfig `toml:"calendar" yaml:"calendar"`
	TUI      TUIConfig      `toml:"tui" yaml:"tui"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// CalendarConfig holds calendar layout settings
type CalendarConfig struct {
	// WeekStart is a weekday name such as "monday" or "sun"
	WeekStart string `toml:"week_start" yaml:"week_start"`

	// ReferenceDate is the day the calendar opens on and measures from.
	// Nil means today.
	ReferenceDate *datex.Date `toml:"reference_date,omitempty" yaml:"reference_date,omitempty"`
}

// TUIConfig holds settings for the interactive calendar
type TUIConfig struct {
	ShowDayCount bool `toml:"show_day_count" yaml:"show_day_count"`
	ShowWeekday  bool `toml:"show_weekday" yaml:"show_weekday"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{TUI: TUIConfig{ShowWeekday: true}}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("Load", err, "config file not found: "+path)
		}
		return nil, errors.ConfigError("Load", err, "failed to read config")
	}

	cfg := &Config{TUI: TUIConfig{ShowWeekday: true}}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, errors.ConfigError("Load", err, "failed to parse config")
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by KAL_CONFIG, or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	return []string{
		"./configs/kal.toml",
		"./kal.toml",
		filepath.Join(os.Getenv("HOME"), ".config/kal/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "kal"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Calendar.WeekStart == "" {
		c.Calendar.WeekStart = "monday"
	}
}

// Validate checks values that decode as plain strings
func (c *Config) Validate() error {
	if _, err := datex.ParseWeekday(c.Calendar.WeekStart); err != nil {
		return errors.ConfigError("Validate", err, "invalid calendar.week_start").
			WithDetail("value", c.Calendar.WeekStart)
	}
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return errors.ConfigError("Validate", err, "invalid general.log_level")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return errors.ConfigError("Validate", err, "invalid general.log_format")
	}
	return nil
}

// WeekStart returns the configured first day of the week
func (c *Config) WeekStart() datex.Weekday {
	w, err := datex.ParseWeekday(c.Calendar.WeekStart)
	if err != nil {
		return datex.Monday
	}
	return w
}

// Reference returns the configured reference date, or the calendar day of now
func (c *Config) Reference(now time.Time) (datex.Date, error) {
	if c.Calendar.ReferenceDate != nil {
		return *c.Calendar.ReferenceDate, nil
	}
	return datex.DateOf(now)
}

// Encode writes the configuration as TOML or, for format "yaml", as YAML
func (c *Config) Encode(w io.Writer, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return errors.ConfigError("Encode", err, "failed to encode config")
		}
		return enc.Close()
	case "toml", "":
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return errors.ConfigError("Encode", err, "failed to encode config")
		}
		return nil
	default:
		return errors.ConfigError("Encode", nil, "unknown config format: "+format)
	}
}
