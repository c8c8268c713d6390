package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	LogLevel     string
	LLMProvider  string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	DatabaseDSN  string
	JWTSecret    string
}

var AppConfig *Config

// Load reads the optional .env file and builds the process configuration
// from environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		Logger().Debug("no .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		LLMProvider:  getEnvOrDefault("LLM_PROVIDER", "gemini"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnvOrDefault("OPENAI_MODEL", "gpt-4o"),
		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}

	return AppConfig
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
