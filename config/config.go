package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	DBPath   string
	BlobPath string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:     GetEnv("PORT", "3000"),
		Env:      GetEnv("ENV", "development"),
		DBPath:   GetEnv("DB_PATH", "./data/arka.db"),
		BlobPath: GetEnv("BLOB_PATH", "./data/blobs"),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
