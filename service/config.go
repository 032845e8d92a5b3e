package service

import (
	"os"
	"strconv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	APIURL      string
	DBPath      string

	Session struct {
		Secret string
	}

	Upload struct {
		MaxSize int64
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		APIURL:      getEnv("API_URL", "http://localhost:3000"),
		DBPath:      getEnv("DB_PATH", "./db/studyblog.db"),
	}

	config.Session.Secret = getEnv("SESSION_SECRET", "development-secret")

	maxSize := getEnv("UPLOAD_MAX_SIZE", "5242880") // 5MB default
	if size, err := strconv.ParseInt(maxSize, 10, 64); err == nil {
		config.Upload.MaxSize = size
	} else {
		config.Upload.MaxSize = 5242880
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
