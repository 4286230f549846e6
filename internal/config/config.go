package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Feed Config
	FeedURL          string        `env:"FEED_URL"`
	FeedAPIKey       string        `env:"FEED_API_KEY"`
	FeedPollInterval time.Duration `env:"FEED_POLL_INTERVAL" envDefault:"60s"`
	FeedTimeout      time.Duration `env:"FEED_TIMEOUT" envDefault:"10s"`

	// Triage thresholds: интерактивная отправка мягче, чем автоматический опрос ленты
	TriageMinRelevance int `env:"TRIAGE_MIN_RELEVANCE" envDefault:"1"`
	FeedMinRelevance   int `env:"FEED_MIN_RELEVANCE" envDefault:"2"`

	// Simulation Config
	SimulationEnabled     bool          `env:"SIMULATION_ENABLED" envDefault:"false"`
	SimulationMinInterval time.Duration `env:"SIMULATION_MIN_INTERVAL" envDefault:"10s"`
	SimulationMaxInterval time.Duration `env:"SIMULATION_MAX_INTERVAL" envDefault:"30s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		FeedURL:               os.Getenv("FEED_URL"),
		FeedAPIKey:            os.Getenv("FEED_API_KEY"),
		FeedPollInterval:      getEnvAsDuration("FEED_POLL_INTERVAL", 60*time.Second),
		FeedTimeout:           getEnvAsDuration("FEED_TIMEOUT", 10*time.Second),
		TriageMinRelevance:    getEnvAsInt("TRIAGE_MIN_RELEVANCE", 1),
		FeedMinRelevance:      getEnvAsInt("FEED_MIN_RELEVANCE", 2),
		SimulationEnabled:     getEnvAsBool("SIMULATION_ENABLED", false),
		SimulationMinInterval: getEnvAsDuration("SIMULATION_MIN_INTERVAL", 10*time.Second),
		SimulationMaxInterval: getEnvAsDuration("SIMULATION_MAX_INTERVAL", 30*time.Second),
	}

	if cfg.SimulationMaxInterval < cfg.SimulationMinInterval {
		return nil, fmt.Errorf("SIMULATION_MAX_INTERVAL must not be less than SIMULATION_MIN_INTERVAL")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
