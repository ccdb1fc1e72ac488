package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	// StoreBackend selects where the collection slots live:
	// "bolt" (default), "memory", or "redis".
	StoreBackend string
	DBPath       string
	RedisURL     string
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	return &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		StoreBackend: getEnv("EDUSPHERE_STORE", "bolt"),
		DBPath:       getEnv("EDUSPHERE_DB_PATH", "data/edusphere.db"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
