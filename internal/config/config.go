// Package config loads the settings of the lunisolar command from YAML.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // Timezone must resolve on hosts without a zone database.

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rabitt1ove/lunisolar"
)

// EnvVar names the environment variable holding the default config path.
const EnvVar = "LUNISOLAR_CONFIG"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the command's settings. Zero fields take their defaults.
type Config struct {
	Variant  string `yaml:"variant"`   // traditional or simplified
	Format   string `yaml:"format"`    // text or json
	Timezone string `yaml:"timezone"`  // IANA name used for "today" and time inputs
	LogLevel string `yaml:"log_level"` // zerolog level name
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Variant:  lunisolar.Traditional.String(),
		Format:   FormatText,
		Timezone: "Asia/Shanghai",
		LogLevel: zerolog.WarnLevel.String(),
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := lunisolar.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("variant: %w", err)
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format: %q is not %q or %q", c.Format, FormatText, FormatJSON)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// LunisolarVariant returns the configured variant, or traditional if it is
// not valid.
func (c Config) LunisolarVariant() lunisolar.Variant {
	v, err := lunisolar.ParseVariant(c.Variant)
	if err != nil {
		return lunisolar.Traditional
	}
	return v
}

// Location loads the configured time zone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Level returns the configured log level.
func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

// JSON reports whether output should be JSON.
func (c Config) JSON() bool {
	return strings.EqualFold(c.Format, FormatJSON)
}
