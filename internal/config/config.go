// Package config loads application settings from configs/config.yml,
// environment variables (LIGHTBNB_ prefix) and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	envPrefix = "LIGHTBNB"
)

type Config struct {
	Env      string         `mapstructure:"env" validate:"required"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"db"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// DatabaseConfig describes how to reach the store. Host/Port/User/Name are
// used by postgres; Path by sqlite.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	Host            string `mapstructure:"host" validate:"required_if=Driver postgres"`
	Port            int    `mapstructure:"port" validate:"required_if=Driver postgres"`
	User            string `mapstructure:"user" validate:"required_if=Driver postgres"`
	Password        string `mapstructure:"password"`
	Name            string `mapstructure:"name" validate:"required_if=Driver postgres"`
	SSLMode         string `mapstructure:"ssl_mode"`
	Path            string `mapstructure:"path" validate:"required_if=Driver sqlite"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"gte=0"` // seconds
	PingTimeout     int    `mapstructure:"ping_timeout" validate:"gte=0"`      // seconds
}

type SeedConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required_if=Enabled true"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("log.level", "info")

	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "vagrant")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "lightbnb")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.path", "lightbnb.db")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 300)
	v.SetDefault("db.ping_timeout", 10)

	v.SetDefault("seed.enabled", false)
	v.SetDefault("seed.path", "configs/seed.json")
}

// Load reads config.yml from the given directories (first match wins),
// overlays LIGHTBNB_* environment variables and validates the result.
// A missing config file is not an error; defaults and env still apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
