package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultBaseURL = "https://www.bizcurrency.com:20200/api/v1"
const defaultCallerID = "819640E9-8DF1-4DB9-B13B-E9DCDDEEBA58"

// Config holds all runtime configuration derived from environment variables.
type Config struct {
	BaseURL         string
	CallerID        string
	Username        string
	Password        string
	DefaultCurrency string
	HTTPTimeout     time.Duration
	LogLevel        string
}

// Load reads environment variables using viper and returns a typed config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	bindEnv(v, "api_url", "WALLET_API_URL")
	bindEnv(v, "caller_id", "WALLET_CALLER_ID")
	bindEnv(v, "username", "WALLET_USERNAME")
	bindEnv(v, "password", "WALLET_PASSWORD")
	bindEnv(v, "default_currency", "WALLET_DEFAULT_CURRENCY")
	bindEnv(v, "http_timeout", "WALLET_HTTP_TIMEOUT")
	bindEnv(v, "log_level", "WALLET_LOG_LEVEL", "LOG_LEVEL")

	v.SetDefault("api_url", defaultBaseURL)
	v.SetDefault("caller_id", defaultCallerID)
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("default_currency", "USD")
	v.SetDefault("http_timeout", "30s")
	v.SetDefault("log_level", "info")

	timeout, err := time.ParseDuration(v.GetString("http_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid WALLET_HTTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		BaseURL:         strings.TrimRight(v.GetString("api_url"), "/"),
		CallerID:        v.GetString("caller_id"),
		Username:        v.GetString("username"),
		Password:        v.GetString("password"),
		DefaultCurrency: strings.ToUpper(strings.TrimSpace(v.GetString("default_currency"))),
		HTTPTimeout:     timeout,
		LogLevel:        v.GetString("log_level"),
	}

	if strings.TrimSpace(cfg.Username) == "" || strings.TrimSpace(cfg.Password) == "" {
		return nil, fmt.Errorf("WALLET_USERNAME and WALLET_PASSWORD are required")
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("WALLET_HTTP_TIMEOUT must be positive")
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "USD"
	}

	return cfg, nil
}

func bindEnv(v *viper.Viper, key string, names ...string) {
	args := append([]string{key}, names...)
	_ = v.BindEnv(args...)
}
