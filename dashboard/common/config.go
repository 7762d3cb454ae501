package common

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const configFilePath = "config.json"

// Config represents the application's configuration structure.
type Config struct {
	DatasetPath       string `json:"dataset-path" mapstructure:"dataset-path"`
	LogLevel          string `json:"log-level" mapstructure:"log-level"`
	HTTPAddress       string `json:"http-address" mapstructure:"http-address"`
	MiddlewareAddress string `json:"middleware-address" mapstructure:"middleware-address"`
	ChartsExchange    string `json:"charts-exchange" mapstructure:"charts-exchange"`
	TopCategories     int    `json:"top-categories" mapstructure:"top-categories"`
	TopSellers        int    `json:"top-sellers" mapstructure:"top-sellers"`
	MaxWords          int    `json:"max-words" mapstructure:"max-words"`
}

var requiredFields = []string{
	"dataset-path",
}

// field: default value
var optionalFields = map[string]interface{}{
	"log-level":          "INFO",
	"http-address":       ":8080",
	"middleware-address": "",
	"charts-exchange":    "CHARTS",
	"top-categories":     15,
	"top-sellers":        10,
	"max-words":          200,
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file.
func InitConfig() (*Config, error) {
	return initConfig(configFilePath)
}

func initConfig(path string) (*Config, error) {
	v := viper.New()

	// Set config file type and name
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
		// ignore error if config file is not found
		// as we can get all config from env vars
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

	if config.TopCategories <= 0 || config.TopSellers <= 0 || config.MaxWords <= 0 {
		return nil, fmt.Errorf("top-categories, top-sellers and max-words must be positive")
	}

	return &config, nil
}

func (c *Config) Options() Options {
	return Options{
		TopCategories: c.TopCategories,
		TopSellers:    c.TopSellers,
		MaxWords:      c.MaxWords,
	}
}

func (c *Config) PublishingEnabled() bool {
	return c.MiddlewareAddress != ""
}
