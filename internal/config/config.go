// Package config loads runtime settings for the client. Settings come from
// configs/config.yml and MEATER_* environment variables; the persisted token
// state is a separate file owned by the session package.
package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/Zahlii/meater-api/internal/logger"
)

// Default API endpoints; overridable for tests.
const (
	DefaultAPIBase       = "https://api.cloud.meater.com"
	DefaultPublicAPIBase = "https://public-api.cloud.meater.com"
)

// Settings is everything the client needs at startup.
type Settings struct {
	Email    string
	Password string
	// DeviceID optionally pins the device identity; when empty a persisted or
	// freshly generated one is used.
	DeviceID      string
	StatePath     string
	LogLevel      string
	APIBase       string
	PublicAPIBase string
}

// Load reads configs/config.yml and the environment. A missing config file is
// fine as long as the required values arrive via environment variables.
func Load() (Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath("configs")
	v.SetEnvPrefix("meater")
	v.AutomaticEnv()

	v.SetDefault("state_path", "config.json")
	v.SetDefault("log_level", logger.InfoLevel)
	v.SetDefault("api_base", DefaultAPIBase)
	v.SetDefault("public_api_base", DefaultPublicAPIBase)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, err
		}
	}

	s := Settings{
		Email:         v.GetString("email"),
		Password:      v.GetString("password"),
		DeviceID:      v.GetString("device_id"),
		StatePath:     v.GetString("state_path"),
		LogLevel:      v.GetString("log_level"),
		APIBase:       v.GetString("api_base"),
		PublicAPIBase: v.GetString("public_api_base"),
	}
	return s, s.Validate()
}

// Validate checks that credentials are present.
func (s Settings) Validate() error {
	if s.Email == "" {
		return errors.New("email is required (config key 'email' or MEATER_EMAIL)")
	}
	if s.Password == "" {
		return errors.New("password is required (config key 'password' or MEATER_PASSWORD)")
	}
	return nil
}
