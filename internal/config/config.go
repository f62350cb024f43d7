package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the server's runtime settings.
type Config struct {
	Port     int
	Mode     string
	LogLevel string
	SeedDemo bool
}

// Load reads config.yaml from the given directory, if present, and applies
// POSTCOMMENTS_-prefixed environment overrides (e.g. POSTCOMMENTS_SERVER_PORT)
// on top of the defaults.
func Load(dir string) (*Config, error) {
	vp := viper.New()

	vp.SetDefault("server.port", 8080)
	vp.SetDefault("server.mode", "release")
	vp.SetDefault("log.level", "info")
	vp.SetDefault("seed.demo", true)

	vp.SetConfigName("config")
	vp.SetConfigType("yaml")
	vp.AddConfigPath(dir)

	vp.SetEnvPrefix("POSTCOMMENTS")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if err := vp.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// no config file is fine; defaults and env apply
	}

	return &Config{
		Port:     vp.GetInt("server.port"),
		Mode:     vp.GetString("server.mode"),
		LogLevel: vp.GetString("log.level"),
		SeedDemo: vp.GetBool("seed.demo"),
	}, nil
}
