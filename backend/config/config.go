package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DataFile   string
	JWTSecret  string
	TokenTTL   time.Duration
	ServerPort string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DataFile:   getEnv("DATA_FILE", "data/db.json"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),
		TokenTTL:   72 * time.Hour,
		ServerPort: getEnv("SERVER_PORT", "8080"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
