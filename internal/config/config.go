package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Mongo  MongoConfig
	App    AppConfig
	Report ReportConfig
	Client ClientConfig
}

type MongoConfig struct {
	URI      string
	Database string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	Version        string
	LogLevel       string
	AllowedOrigins []string
}

// ReportConfig controls the optional CSV report archive.
// An empty ArchiveDir disables archiving.
type ReportConfig struct {
	ArchiveDir string
}

// ClientConfig holds the customer form schema source
type ClientConfig struct {
	SchemaPath string
}

func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	config := &Config{}

	config.Mongo = MongoConfig{
		URI:      getEnv("MONGO_URI", ""),
		Database: getEnv("MONGO_DB", "Attendance_DB"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		Version:        getEnv("APP_VERSION", "v0.0.1"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.AllowedOrigins) == 0 {
		config.App.AllowedOrigins = []string{"*"}
	}

	config.Report = ReportConfig{
		ArchiveDir: getEnv("REPORT_ARCHIVE_DIR", ""),
	}

	config.Client = ClientConfig{
		SchemaPath: getEnv("CLIENT_SCHEMA_PATH", "schema/client_schema.csv"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("MONGO_DB is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
