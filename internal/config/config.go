package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Supported image storage backends
const (
	ImageStorageLocal = "local"
	ImageStorageS3    = "s3"
)

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	Database database.DatabaseConfig `json:"database"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Image upload configuration
	ImageStorage string `json:"image_storage"`
	UploadDir    string `json:"upload_dir"`
	MaxUploadMB  int    `json:"max_upload_mb"`
	S3Bucket     string `json:"s3_bucket"`
	S3Region     string `json:"s3_region"`
	S3Prefix     string `json:"s3_prefix"`
	S3Endpoint   string `json:"s3_endpoint"`
	AWSAccessKey string `json:"aws_access_key"`
	AWSSecretKey string `json:"aws_secret_key"`

	// SeedDemoData inserts sample recipes into an empty database
	SeedDemoData bool `json:"seed_demo_data"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Database: %s, LogLevel: %s, ImageStorage: %s, UploadDir: %s, MaxUploadMB: %d, S3Bucket: %s, S3Region: %s, S3Prefix: %s, S3Endpoint: %s, AWSAccessKey: %s, AWSSecretKey: [REDACTED], SeedDemoData: %t}",
		c.Port, c.Host, c.Database.String(), c.LogLevel, c.ImageStorage, c.UploadDir, c.MaxUploadMB,
		c.S3Bucket, c.S3Region, c.S3Prefix, c.S3Endpoint, maskKey(c.AWSAccessKey), c.SeedDemoData)
}

// maskKey keeps the last four characters of an access key
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any environment variable is invalid or if the selected
// image storage is missing its required settings
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	if driver != "sqlite" && driver != "postgres" && driver != "postgresql" {
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s (supported: postgres, sqlite)", driver)
	}

	storage := strings.ToLower(GetEnvWithDefault("IMAGE_STORAGE", ImageStorageLocal))
	if storage != ImageStorageLocal && storage != ImageStorageS3 {
		return nil, fmt.Errorf("unsupported IMAGE_STORAGE: %s (supported: local, s3)", storage)
	}

	config := &Config{
		Port: port,
		Host: GetEnvWithDefault("APP_HOST", "localhost"),
		Database: database.DatabaseConfig{
			Driver:     driver,
			Host:       GetEnvWithDefault("DB_HOST", "localhost"),
			Port:       GetEnvWithDefault("DB_PORT", "5432"),
			User:       GetEnvWithDefault("DB_USER", "user"),
			Password:   GetEnvWithDefault("DB_PASSWORD", "password"),
			Name:       GetEnvWithDefault("DB_NAME", "recipes"),
			SSLMode:    GetEnvWithDefault("DB_SSLMODE", "disable"),
			Path:       GetEnvWithDefault("DB_PATH", "recipes.db"),
			MaxRetries: GetEnvAsType("DB_MAX_RETRIES", 5),
		},
		LogLevel:     GetEnvWithDefault("LOG_LEVEL", "info"),
		ImageStorage: storage,
		UploadDir:    GetEnvWithDefault("UPLOAD_DIR", "static/uploads"),
		MaxUploadMB:  GetEnvAsType("MAX_UPLOAD_MB", 8),
		S3Bucket:     os.Getenv("S3_BUCKET"),
		S3Region:     GetEnvWithDefault("S3_REGION", "us-east-1"),
		S3Prefix:     GetEnvWithDefault("S3_PREFIX", "recipes"),
		S3Endpoint:   os.Getenv("S3_ENDPOINT"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY"),
		AWSSecretKey: os.Getenv("AWS_SECRET_KEY"),
		SeedDemoData: GetEnvAsType("SEED_DEMO_DATA", false),
	}

	if config.ImageStorage == ImageStorageS3 && config.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET environment variable is required when IMAGE_STORAGE=s3")
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
