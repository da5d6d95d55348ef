package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DatabaseURL  string // Consolidated DB Connection URL
	RedisURL     string
	OpenAIAPIKey string
	UWAPIKey     string // underwriting case-profile partner token
	FlowAPIKey   string // flow-orchestration partner key
	ImageHostURL string // public base URL where uploaded images are served from
	LangflowURL  string // flow-orchestration endpoint
	UploadDir    string
}

// LoadConfig reads configuration from environment variables (.env file)
func LoadConfig() (*Config, error) {
	// Load .env file. In production, env variables are often set directly.
	if err := godotenv.Load(); err != nil {
		// Don't fail if .env is not present, just log it
		// log.Printf("Warning: .env file not found, reading from environment")
	}

	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		RedisURL:     getEnv("REDIS_URL", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		UWAPIKey:     getEnv("UW_API_KEY", ""),
		FlowAPIKey:   getEnv("XAI_API_KEY", ""),
		ImageHostURL: getEnv("IMAGE_HOST_URL", ""),
		LangflowURL:  getEnv("LANGFLOW_URL", ""),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
	}, nil
}

// Helper function to get env var or return default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
