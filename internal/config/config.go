// Package config loads server configuration from a config file, environment
// variables, and defaults. Precedence: explicit flags (applied by the CLI) >
// STACKSCOPE_* env vars > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete server configuration.
type Config struct {
	Addr               string   `json:"addr" mapstructure:"addr"`
	CatalogPath        string   `json:"catalogPath" mapstructure:"catalogPath"`
	CORSAllowedOrigins []string `json:"corsAllowedOrigins" mapstructure:"corsAllowedOrigins"`
	LogLevel           string   `json:"logLevel" mapstructure:"logLevel"`
}

// Load reads configuration from the given file path. An empty path looks for
// an optional stackscope.{json,yaml,toml} in the working directory; a missing
// optional file is not an error, a missing explicit one is.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("catalogPath", "")
	v.SetDefault("corsAllowedOrigins", []string{"*"})
	v.SetDefault("logLevel", "info")

	v.SetEnvPrefix("STACKSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("stackscope")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
