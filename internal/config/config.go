package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port     int
	GinMode  string
	LogLevel string
	Database DatabaseConfig
}

type DatabaseConfig struct {
	Driver      string
	DSN         string
	AutoMigrate bool
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() Config {
	driver := getEnv("DB_DRIVER", DriverPostgres)

	return Config{
		Port:     getEnvInt("PORT", 8080),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Driver:      driver,
			DSN:         getEnv("DATABASE_URL", defaultDSN(driver)),
			AutoMigrate: getEnvBool("AUTO_MIGRATE", true),
		},
	}
}

func defaultDSN(driver string) string {
	if driver == DriverSQLite {
		return "blog.db?_pragma=foreign_keys(1)"
	}
	// Fallback for local dev
	return "host=localhost user=postgres password=postgres dbname=blog port=5432 sslmode=disable TimeZone=UTC"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
