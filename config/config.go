package config

import (
	"os"
)

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	SessionSecret string

	// Server Configuration
	Port string
	Env  string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	return &Config{
		// Database Configuration
		MongoURI: getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnvOrDefault("DB_NAME", "videogameKeeper"),

		// Security Configuration
		SessionSecret: getEnvOrDefault("SESSION_SECRET", "basic-auth-secret"),

		// Server Configuration
		Port: getEnvOrDefault("PORT", "3000"),
		Env:  getEnvOrDefault("GO_ENV", "development"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
