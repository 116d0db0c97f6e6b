package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort      string
	LogLevel        logrus.Level
	StaticDir       string
	CatalogFile     string
	ShutdownTimeout time.Duration
}

// LoadConfig читает .env (если есть) и переменные окружения.
func LoadConfig() (Config, error) {

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	return Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        level,
		StaticDir:       getEnv("STATIC_DIR", "./static"),
		CatalogFile:     getEnv("CATALOG_FILE", ""),
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
