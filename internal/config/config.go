// Package config loads runtime configuration for the soulformula CLI from
// a config file, SOULFORMULA_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/dispositor/ephemeris"
	"github.com/katalvlaran/dispositor/geocode"
	"github.com/katalvlaran/dispositor/zodiac"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SOULFORMULA"

// ErrInvalid is returned when a loaded value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all runtime configuration.
type Config struct {
	EphemerisURL  string        `mapstructure:"ephemeris_url"`
	GeocodeURL    string        `mapstructure:"geocode_url"`
	UserAgent     string        `mapstructure:"user_agent"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
	Lang          string        `mapstructure:"lang"`
	Verbose       bool          `mapstructure:"verbose"`
	ReferenceFile string        `mapstructure:"reference_file"`
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("ephemeris_url", ephemeris.DefaultBaseURL)
	v.SetDefault("geocode_url", geocode.DefaultBaseURL)
	v.SetDefault("user_agent", geocode.DefaultUserAgent)
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("lang", "en")
	v.SetDefault("verbose", false)
	v.SetDefault("reference_file", "")
}

// Init points v at the config file (or .soulformula.yaml in the working and
// home directories) and at the environment. A missing default config file
// is not an error; a missing explicit one is.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".soulformula")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", cfgFile, err)
	}

	return nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("%w: http_timeout must be positive, got %s", ErrInvalid, cfg.HTTPTimeout)
	}

	return cfg, nil
}

// Reference returns the reference tables named by ReferenceFile, or the
// embedded tables when it is empty.
func (c Config) Reference() (*zodiac.Reference, error) {
	if c.ReferenceFile == "" {
		return zodiac.Default(), nil
	}
	f, err := os.Open(c.ReferenceFile)
	if err != nil {
		return nil, fmt.Errorf("config: open reference: %w", err)
	}
	defer f.Close()

	ref, err := zodiac.LoadReference(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", c.ReferenceFile, err)
	}

	return ref, nil
}
