package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	defaultPort     = "8080"
	defaultLogLevel = "info"
	defaultEnv      = "production"
)

// Config holds application configuration sourced from the environment and
// an optional configs/config.yml.
type Config struct {
	Port     string
	LogLevel string
	Env      string
}

// IsDev reports whether the server runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "development"
}

// Load reads .env, configs/config.yml and environment variables, in that
// order of increasing precedence.
func Load() (Config, error) {
	// Best-effort: a missing .env is fine, production injects real env.
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return load(viper.New(), "configs")
}

func load(v *viper.Viper, configDir string) (Config, error) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("app_env", defaultEnv)
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log_level"),
		Env:      v.GetString("app_env"),
	}

	return cfg, nil
}
