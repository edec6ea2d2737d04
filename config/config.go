// Package config loads the settings of the polyrecon tools
package config

import (
	"fmt"
	"strings"

	"github.com/shaih/go-polyrecon/primitives/shamir"
	log "github.com/sirupsen/logrus"
	viper2 "github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables overriding settings,
// for example POLYRECON_TOLERANCE
const EnvPrefix = "POLYRECON"

// Config holds all the settings
type Config struct {
	Arithmetic string  `mapstructure:"arithmetic"`
	Tolerance  float64 `mapstructure:"tolerance"`
	MaxShares  int     `mapstructure:"max_shares"`
	Listen     string  `mapstructure:"listen"`
	LogLevel   string  `mapstructure:"log_level"`
}

func setDefaults(viper *viper2.Viper) {
	viper.SetDefault("arithmetic", string(shamir.ArithmeticExact))
	viper.SetDefault("tolerance", shamir.DefaultTolerance)
	viper.SetDefault("max_shares", shamir.DefaultMaxShares)
	viper.SetDefault("listen", ":8080")
	viper.SetDefault("log_level", "info")
}

// Default returns the configuration used when no file nor environment variable is given
func Default() *Config {
	return &Config{
		Arithmetic: string(shamir.ArithmeticExact),
		Tolerance:  shamir.DefaultTolerance,
		MaxShares:  shamir.DefaultMaxShares,
		Listen:     ":8080",
		LogLevel:   "info",
	}
}

// Load reads the configuration file path (yaml, json or toml, by extension).
// If path is empty, only defaults and environment variables are used.
// Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	viper := viper2.New()
	setDefaults(viper)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read configuration %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("cannot parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if a setting is out of range
func (cfg *Config) Validate() error {
	if _, err := shamir.ParseArithmetic(cfg.Arithmetic); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !(cfg.Tolerance > 0) {
		return fmt.Errorf("invalid configuration: tolerance must be positive, got %v", cfg.Tolerance)
	}
	if cfg.MaxShares < 1 {
		return fmt.Errorf("invalid configuration: max_shares must be at least 1, got %d", cfg.MaxShares)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Options returns the reconstruction options of the configuration
func (cfg *Config) Options() shamir.Options {
	arith, err := shamir.ParseArithmetic(cfg.Arithmetic)
	if err != nil {
		// Validate has not been called
		arith = shamir.ArithmeticExact
	}
	return shamir.Options{
		Arithmetic: arith,
		Tolerance:  cfg.Tolerance,
		MaxShares:  cfg.MaxShares,
	}
}

// ApplyLogLevel sets the level of the standard logrus logger
func (cfg *Config) ApplyLogLevel() error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}
