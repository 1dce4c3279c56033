package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

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

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBHost     string `json:"db_host"`
	DBName     string `json:"db_name"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	AccessTokenSecret string `json:"access_token_secret"`
	StripeSecretKey   string `json:"stripe_secret_key"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DBUser: %s, DBPassword: [REDACTED], DBHost: %s, DBName: %s, LogLevel: %s, AccessTokenSecret: [REDACTED], StripeSecretKey: [REDACTED]}",
		c.Port, c.Host, c.DBUser, c.DBHost, c.DBName, c.LogLevel)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any required environment variable is missing or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("PORT", "5000"))
	if err != nil {
		return nil, err
	}

	secret := GetEnvWithDefault("ACCESS_TOKEN", "")
	if secret == "" {
		return nil, errors.New("ACCESS_TOKEN environment variable is required")
	}

	config := &Config{
		Port:              port,
		Host:              GetEnvWithDefault("APP_HOST", "0.0.0.0"),
		DBUser:            GetEnvWithDefault("DB_USER", ""),
		DBPassword:        GetEnvWithDefault("DB_PASSWORD", ""),
		DBHost:            GetEnvWithDefault("DB_HOST", "cluster0.f3vnw1n.mongodb.net"),
		DBName:            GetEnvWithDefault("DB_NAME", "BistroBoss"),
		LogLevel:          GetEnvWithDefault("LOG_LEVEL", "info"),
		AccessTokenSecret: secret,
		StripeSecretKey:   GetEnvWithDefault("STRIPE_SECRET_KEY", ""),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
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
