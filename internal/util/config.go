package util

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
//
// Each carrier API (identity, query, command, reference) has its own
// credential bundle. Completeness of a bundle is checked lazily on the first
// call that needs it, not here — a deployment that never creates shipments
// can run without command credentials.
type Config struct {
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`
	HTTPServerAddress string   `mapstructure:"HTTP_SERVER_ADDRESS"`

	SendeoIdentityBaseURL  string `mapstructure:"SENDEO_IDENTITY_BASE_URL"`
	SendeoQueryBaseURL     string `mapstructure:"SENDEO_QUERY_BASE_URL"`
	SendeoCommandBaseURL   string `mapstructure:"SENDEO_COMMAND_BASE_URL"`
	SendeoReferenceBaseURL string `mapstructure:"SENDEO_REFERENCE_BASE_URL"`

	SendeoIdentityClientID     string `mapstructure:"SENDEO_IDENTITY_CLIENT_ID"`
	SendeoIdentityClientSecret string `mapstructure:"SENDEO_IDENTITY_CLIENT_SECRET"`
	SendeoCustomerNumber       string `mapstructure:"SENDEO_CUSTOMER_NUMBER"`
	SendeoPassword             string `mapstructure:"SENDEO_PASSWORD"`

	SendeoQueryClientID     string `mapstructure:"SENDEO_QUERY_CLIENT_ID"`
	SendeoQueryClientSecret string `mapstructure:"SENDEO_QUERY_CLIENT_SECRET"`

	SendeoCommandClientID     string `mapstructure:"SENDEO_COMMAND_CLIENT_ID"`
	SendeoCommandClientSecret string `mapstructure:"SENDEO_COMMAND_CLIENT_SECRET"`

	SendeoReferenceClientID     string `mapstructure:"SENDEO_REFERENCE_CLIENT_ID"`
	SendeoReferenceClientSecret string `mapstructure:"SENDEO_REFERENCE_CLIENT_SECRET"`

	// Province to fall back to when a free-text city name cannot be resolved.
	// Defaults to 34 (İstanbul).
	SendeoDefaultCityCode int `mapstructure:"SENDEO_DEFAULT_CITY_CODE"`

	TrackingPollInterval time.Duration `mapstructure:"TRACKING_POLL_INTERVAL"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("SENDEO_IDENTITY_BASE_URL", "https://api.sendeo.com.tr/identity/api/v1")
	viper.SetDefault("SENDEO_QUERY_BASE_URL", "https://api.sendeo.com.tr/query/api/v1")
	viper.SetDefault("SENDEO_COMMAND_BASE_URL", "https://api.sendeo.com.tr/command/api/v1")
	viper.SetDefault("SENDEO_REFERENCE_BASE_URL", "https://api.sendeo.com.tr/reference/api/v1")
	viper.SetDefault("SENDEO_DEFAULT_CITY_CODE", 34)
	viper.SetDefault("TRACKING_POLL_INTERVAL", "10m")

	// Credential keys must be registered so AutomaticEnv can pick them up
	// even when no config file is present. Empty means "not configured".
	for _, key := range []string{
		"SENDEO_IDENTITY_CLIENT_ID", "SENDEO_IDENTITY_CLIENT_SECRET",
		"SENDEO_CUSTOMER_NUMBER", "SENDEO_PASSWORD",
		"SENDEO_QUERY_CLIENT_ID", "SENDEO_QUERY_CLIENT_SECRET",
		"SENDEO_COMMAND_CLIENT_ID", "SENDEO_COMMAND_CLIENT_SECRET",
		"SENDEO_REFERENCE_CLIENT_ID", "SENDEO_REFERENCE_CLIENT_SECRET",
	} {
		viper.SetDefault(key, "")
	}

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file if one exists; in deployed setups the credentials
	// usually come from the environment alone.
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return
		}
		err = nil
	}

	// Unmarshal config into struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.HTTPServerAddress == "" {
		return fmt.Errorf("HTTP_SERVER_ADDRESS is required")
	}
	if config.SendeoDefaultCityCode < 1 || config.SendeoDefaultCityCode > 81 {
		return fmt.Errorf("SENDEO_DEFAULT_CITY_CODE must be a province plate code between 1 and 81")
	}

	return nil
}
