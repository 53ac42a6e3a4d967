package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, reading from environment variables")
	}
}

// getEnv returns a required env var. It will fail if the env var is not set.
func getEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	log.Fatalf("Error: Required environment variable %s is not set.", key)
	return "" // This line is never reached
}

func getEnvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// Load reads the server configuration from environment variables and .env file.
func Load() Config {
	loadDotEnv()

	return Config{
		DBName:    getEnv("DB_NAME"),
		Port:      getEnvDefault("PORT", "8080"),
		UploadDir: getEnvDefault("UPLOAD_DIR", "./uploads"),
		RedisURL:  getEnvDefault("REDIS_URL", ""),
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
	}
}

// LoadClient reads the CLI configuration. Every value has a default so the
// CLI works against a local stub server without any setup.
func LoadClient() ClientConfig {
	loadDotEnv()

	timeout, err := time.ParseDuration(getEnvDefault("API_TIMEOUT", "10s"))
	if err != nil {
		log.Fatalf("Error: API_TIMEOUT is not a valid duration: %v", err)
	}

	return ClientConfig{
		APIBaseURL: getEnvDefault("API_BASE_URL", "http://localhost:8080"),
		APITimeout: timeout,
		ProjectID:  getEnvDefault("GCP_PROJECT", ""),
		Topic:      getEnvDefault("PUBSUB_TOPIC", ""),
		Slack: SlackConfig{
			Token:     getEnvDefault("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvDefault("SLACK_CHANNEL_ID", ""),
		},
	}
}
