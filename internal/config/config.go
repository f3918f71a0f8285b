package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string   `mapstructure:"env"`      // current application environment (local, dev, production etc)
	Catalog  Catalog  `mapstructure:"catalog"`  // word catalog section
	Session  Session  `mapstructure:"session"`  // session rules section
	Telegram Telegram `mapstructure:"telegram"` // telegram front-end section
}

// Catalog points at an alternative word catalog.
type Catalog struct {
	Path string `mapstructure:"path"` // JSON catalog on disk; empty uses the built-in one
}

// Session contains the rules shared by every front-end.
type Session struct {
	TestLength        int `mapstructure:"test_length"`         // maximum number of questions in a test
	PointsPerQuestion int `mapstructure:"points_per_question"` // points awarded per correct test answer
}

// Telegram contains bot-related configuration parameters.
type Telegram struct {
	Token         string `mapstructure:"-"`              // bot API token loaded from environment
	Debug         bool   `mapstructure:"debug"`          // log raw bot API traffic
	UpdateTimeout int    `mapstructure:"update_timeout"` // long polling timeout in seconds
}

// BotToken returns the Telegram API token if it is configured.
func (t Telegram) BotToken() (string, error) {
	if t.Token == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return t.Token, nil
}

// Load reads configuration from ./config/config.yaml and environment variables.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from the given file, or from ./config/config.yaml
// when path is empty. A missing default file is not an error.
func LoadFile(path string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("catalog.path", "")
	v.SetDefault("session.test_length", 20)
	v.SetDefault("session.points_per_question", 5)
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.update_timeout", 60)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Session.TestLength <= 0 {
		return nil, fmt.Errorf("session.test_length must be positive, got %d", cfg.Session.TestLength)
	}
	if cfg.Session.PointsPerQuestion <= 0 {
		return nil, fmt.Errorf("session.points_per_question must be positive, got %d", cfg.Session.PointsPerQuestion)
	}

	// Load sensitive values from environment variables.
	cfg.Telegram.Token = v.GetString("telegram_api_token")

	return &cfg, nil
}
