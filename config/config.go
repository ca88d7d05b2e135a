// Server configuration, read from a YAML config file via viper with sane
// defaults when no file is present.

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port           int
	DefaultQuantum int64
}

// Defaults applied when the config file omits a key or does not exist.
const (
	DefaultPort    = 9095
	DefaultRRSlice = 2
)

// Load reads the server config. An empty path looks for config.yaml in the
// working directory; a missing file yields the defaults, while a malformed
// one is an error.
func Load(path string) (*ServerConfig, error) {
	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("scheduler.round_robin.time_quantum", DefaultRRSlice)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &ServerConfig{
		Port:           v.GetInt("port"),
		DefaultQuantum: v.GetInt64("scheduler.round_robin.time_quantum"),
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("invalid port %d in config", cfg.Port)
	}
	if cfg.DefaultQuantum <= 0 {
		return nil, fmt.Errorf("invalid default quantum %d in config", cfg.DefaultQuantum)
	}
	return cfg, nil
}
