package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	ClickUp ClickUpConfig `mapstructure:"clickup"`
	Ollama  OllamaConfig  `mapstructure:"ollama"`
	Store   StoreConfig   `mapstructure:"store"`
	Server  ServerConfig  `mapstructure:"server"`
}

// ClickUpConfig holds everything needed to reach the ClickUp API
type ClickUpConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	TeamID  string `mapstructure:"team_id"`
}

// OllamaConfig holds the local model endpoint and model name
type OllamaConfig struct {
	Host  string `mapstructure:"host"`
	Model string `mapstructure:"model"`
}

// StoreConfig holds the record store location
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig holds the HTTP server bind address
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Best effort: running without a .env file is the normal production case
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("clickup.api_key", getEnv("CLICKUP_API_KEY", ""))
	v.SetDefault("clickup.base_url", getEnv("CLICKUP_API_URL", "https://api.clickup.com/api/v2"))
	v.SetDefault("clickup.team_id", getEnv("CLICKUP_TEAM_ID", "3342101"))
	v.SetDefault("ollama.host", getEnv("OLLAMA_HOST", "http://localhost:11434"))
	v.SetDefault("ollama.model", getEnv("OLLAMA_MODEL", "deepseek-r1:14b"))
	v.SetDefault("store.path", getEnv("DATA_FILE", "clickup_data.json"))
	v.SetDefault("server.host", getEnv("SERVER_HOST", "0.0.0.0"))
	v.SetDefault("server.port", getEnvInt("SERVER_PORT", 8080))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Addr returns the server bind address in host:port form
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// getEnv gets an environment variable with a fallback default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a fallback default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
