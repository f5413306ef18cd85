package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// Profile store configuration
	StoreBackend string
	StorePath    string

	// Redis configuration (used when StoreBackend is "redis")
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// OpenAI configuration. An empty APIKey is a recognized state: the AI
	// endpoints degrade gracefully instead of failing at startup.
	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string
}

// Load builds the configuration from environment variables, applying
// defaults for anything unset.
func Load() *Config {
	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StoreBackend:  getEnv("STORE_BACKEND", "bolt"),
		StorePath:     getEnv("STORE_PATH", "caloria.db"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		OpenAIAPIKey:  loadAPIKey(),
		OpenAIAPIURL:  getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	return cfg
}

// loadAPIKey reads the OpenAI credential from OPENAI_API_KEY, falling back
// to the file named by OPENAI_API_KEY_FILE. Missing credential yields "".
func loadAPIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	keyFile := os.Getenv("OPENAI_API_KEY_FILE")
	if keyFile == "" {
		return ""
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(data))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
