package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Orders   OrdersConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port      string
	StaticDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// OrdersConfig toggles the two behaviors the order engine leaves open.
// EnforceUserRef rejects checkouts for unknown user ids instead of accepting
// them unchecked. StrictStatusUpdate reports failure when a status update
// targets a missing order instead of silently succeeding.
type OrdersConfig struct {
	EnforceUserRef     bool
	StrictStatusUpdate bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Milo Store API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:      getEnv("PORT", "3000"),
			StaticDir: getEnv("STATIC_DIR", "public"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "milo_store"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Orders: OrdersConfig{
			EnforceUserRef:     getEnvBool("ORDERS_ENFORCE_USER_REF", false),
			StrictStatusUpdate: getEnvBool("ORDERS_STRICT_STATUS", false),
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
