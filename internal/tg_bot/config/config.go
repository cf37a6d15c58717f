package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds the application configuration parameters.
// Each field corresponds to an expected environment variable.
type Config struct {
	EnvLogsLevel   string `env:"LOG_LEVEL" envDefault:"info"`        // Log level for the application (e.g., DEBUG, INFO)
	EnvLogFileName string `env:"LOG_FILE_NAME" envDefault:"Bot.log"` // File's name for log
	EnvBotToken    string `env:"TOKEN_BOT"`                          // Telegram Bot Token for authentication with the Telegram API

	EnvWeatherApiKey string `env:"WEATHER_API_KEY"` // API Key for the weather provider
	EnvJokeToken     string `env:"JOKE_API_TOKEN"`  // Token for the joke provider
	EnvJokePid       string `env:"JOKE_PARTNER_ID"` // Partner id for the joke provider

	// EnvRatesEndpoint is the loopback address of the currency rate API.
	EnvRatesEndpoint   string `env:"RATES_ENDPOINT" envDefault:"http://localhost:8008"`
	EnvWeatherEndpoint string `env:"WEATHER_ENDPOINT" envDefault:"http://api.openweathermap.org/data/2.5/weather"`
	EnvJokeEndpoint    string `env:"JOKE_ENDPOINT" envDefault:"http://anecdotica.ru/api"`

	// EnvModelPath points at the serialized classifier artifact, read-only at startup.
	EnvModelPath string `env:"MODEL_PATH" envDefault:"trained_model.json"`
}

// NewConfig initializes a new Config instance by loading environment variables from a .env file.
// It returns a pointer to the Config struct and an error if any of the environment variables are missing or invalid.
func NewConfig() (*Config, error) {
	// .env файл опционален, переменные окружения имеют приоритет
	_ = godotenv.Load("bot.env")

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("new parse env: %w", err)
	}
	if config.EnvBotToken == "" {
		return nil, fmt.Errorf("TOKEN_BOT must be set")
	}

	return config, nil
}
