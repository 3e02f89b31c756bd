package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	MaxWorkers   int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxFileSize  int64

	// Validation configuration
	Tolerance float64

	// Report storage configuration
	ReportDir string

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Environment
	AppEnv             string
	CORSAllowedOrigins []string
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		// Server configuration
		Port:         getEnvInt("PORT", 8080),
		MaxWorkers:   getEnvInt("MAX_WORKERS", 5),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 15)) * time.Second,
		MaxFileSize:  int64(getEnvInt("MAX_FILE_SIZE", 10*1024*1024)),

		// Validation configuration
		Tolerance: getEnvFloat("TOLERANCE", 0.01),

		// Report storage configuration
		ReportDir: getEnvString("REPORT_DIR", "data"),

		// Logging configuration
		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogFormat: getEnvString("LOG_FORMAT", "console"),

		// Environment
		AppEnv:             getEnvString("APP_ENV", "local"),
		CORSAllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
	}

	validateConfig(config)

	return config, nil
}

// validateConfig checks configuration values and logs warnings for suspicious ones
func validateConfig(config *Config) {
	if config.Tolerance < 0 {
		log.Printf("Warning: negative TOLERANCE (%v), falling back to 0.01", config.Tolerance)
		config.Tolerance = 0.01
	}

	if config.MaxWorkers <= 0 {
		log.Printf("Warning: MAX_WORKERS must be positive, got %d, using 5", config.MaxWorkers)
		config.MaxWorkers = 5
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvFloat gets a float from an environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %v", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvStringSlice gets a string slice from a comma-separated environment variable
func getEnvStringSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	return strings.Split(valueStr, ",")
}
