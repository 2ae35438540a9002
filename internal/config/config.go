package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nulzo/factory-method/internal/core/domain"
	"github.com/nulzo/factory-method/internal/platform/validator"
	"github.com/spf13/viper"
)

// DefaultLaunch is the creator sequence the demo runs when none is configured.
var DefaultLaunch = []string{"ConcreteCreator1", "ConcreteCreator2"}

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Log     LogConfig     `mapstructure:"log"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Launch  []string      `mapstructure:"launch" validate:"min=1,dive,required"`
}

type AppConfig struct {
	Name string `mapstructure:"name" validate:"required"`
	Env  string `mapstructure:"env" validate:"oneof=development production test"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig reads configuration from file or environment variables.
// An empty path searches the default locations for config.yaml.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Default Values
	v.SetDefault("app.name", "factory-method")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("launch", DefaultLaunch)

	// Environment Variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, domain.ConfigError("error reading config file", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, domain.ConfigError("unable to decode into struct", err)
	}

	// lower-cased to match how the logger parses LOG_LEVEL and LOG_FORMAT
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	errMap, err := validator.New().Struct(c)
	if err != nil {
		return domain.ConfigError("unable to validate config", err)
	}
	if len(errMap) > 0 {
		return domain.ConfigError(
			"config validation failed",
			fmt.Errorf("%w: %s", domain.ErrInvalidConfig, validator.Format(errMap)),
		)
	}
	return nil
}
