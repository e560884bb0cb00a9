package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds database connection settings. URL takes precedence when set;
// otherwise a DSN is assembled from the discrete fields.
type Config struct {
	URL string

	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN returns the effective connection string.
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// LoadConfigFromEnv loads database configuration from the environment.
// DATABASE_URL wins; DATABASE_* variables fill in for local setups.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("DATABASE_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DATABASE_PORT: %w", err)
	}

	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DATABASE_MAX_OPEN_CONNS", "10"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("DATABASE_MAX_IDLE_CONNS", "5"))

	return Config{
		URL:             os.Getenv("DATABASE_URL"),
		Host:            getEnvOrDefault("DATABASE_HOST", "localhost"),
		Port:            port,
		User:            getEnvOrDefault("DATABASE_USER", "factforge"),
		Password:        os.Getenv("DATABASE_PASSWORD"),
		Database:        getEnvOrDefault("DATABASE_NAME", "factforge"),
		SSLMode:         getEnvOrDefault("DATABASE_SSLMODE", "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
