package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds the application configuration parameters.
// Each field corresponds to an expected environment variable.
type Config struct {
	EnvLogsLevel   string `env:"LOG_LEVEL" envDefault:"info"`             // Log level for the application (e.g., DEBUG, INFO)
	EnvLogFileName string `env:"LOG_FILE_NAME" envDefault:"RateAPI.log"`  // File's name for log
	HTTPServer     string `env:"HTTP_SERVER" envDefault:"localhost:8008"` // Loopback address of the rate API

	EnvCbrEndpoint    string `env:"CBR_ENDPOINT" envDefault:"https://www.cbr-xml-daily.ru/daily_json.js"`
	EnvRefreshSeconds int    `env:"REFRESH_SECONDS" envDefault:"3000"` // Currency refresh interval in seconds
}

// NewConfig initializes a new Config instance by loading environment variables from a .env file.
// It returns a pointer to the Config struct and an error if any of the environment variables are missing or invalid.
func NewConfig() (*Config, error) {
	// .env файл опционален, переменные окружения имеют приоритет
	_ = godotenv.Load("server.env")

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("new parse env: %w", err)
	}

	return config, nil
}
