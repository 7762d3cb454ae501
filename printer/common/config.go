package common

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const configFilePath = "config.json"

// Config represents the application's configuration structure.
type Config struct {
	MiddlewareAddress string `json:"middleware-address" mapstructure:"middleware-address"`
	ChartsExchange    string `json:"charts-exchange" mapstructure:"charts-exchange"`
	ConsumerName      string `json:"consumer-name" mapstructure:"consumer-name"`
	LogLevel          string `json:"log-level" mapstructure:"log-level"`
}

var requiredFields = []string{
	"middleware-address",
}

// field: default value
var optionalFields = map[string]interface{}{
	"charts-exchange": "CHARTS",
	"consumer-name":   "CHARTS_printer",
	"log-level":       "INFO",
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file.
func InitConfig() (*Config, error) {
	return initConfig(configFilePath)
}

func initConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, field := range requiredFields {
		v.BindEnv(field)
	}
	for field, defaultValue := range optionalFields {
		v.BindEnv(field)
		v.SetDefault(field, defaultValue)
	}

	if err := v.ReadInConfig(); err != nil {
		// config file is optional
		if !strings.Contains(err.Error(), path) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	for _, field := range requiredFields {
		if !v.IsSet(field) {
			return nil, fmt.Errorf("missing required config field: %s", field)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	return &config, nil
}
