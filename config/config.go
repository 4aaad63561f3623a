package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL    string
	MongoURL       string
	RemoteAPIURL   string
	RemoteAPIToken string
	DBType         string
	Port           string
	SessionTTL     time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		MongoURL:       os.Getenv("MONGO_URL"),
		RemoteAPIURL:   os.Getenv("REMOTE_API_URL"),
		RemoteAPIToken: os.Getenv("REMOTE_API_TOKEN"),
		DBType:         os.Getenv("DB_TYPE"),
		Port:           os.Getenv("PORT"),
		SessionTTL:     30 * time.Minute,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if mins, err := strconv.Atoi(v); err == nil && mins > 0 {
			cfg.SessionTTL = time.Duration(mins) * time.Minute
		}
	}
	return cfg
}
