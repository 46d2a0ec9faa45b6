package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NewRelic NewRelicConfig
	Clients  ClientsConfig
	Pricing  PricingConfig
	Gateway  GatewayConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
	Host string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// ClientsConfig holds the base URLs and shared timeout for the identity
// service and driver directory. Simulated swaps both for in-process
// substitutes, for running without live collaborator deployments.
type ClientsConfig struct {
	IdentityBaseURL string
	DriverBaseURL   string
	Timeout         time.Duration
	Simulated       bool
}

// ClassRates holds the fixed pricing for one ride class. Values are decimal
// strings so the pricing engine can parse them without binary float drift.
type ClassRates struct {
	BaseFare        string
	PerDistanceRate string
}

type PricingConfig struct {
	Economy ClassRates
	Premium ClassRates
	Luxury  ClassRates
}

// GatewayConfig tunes the simulated payment gateway. In production the
// simulator is replaced with a real integration behind the same interface.
type GatewayConfig struct {
	SuccessRate float64
	Delay       time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			Name:     getEnv("DB_NAME", "ridebooking"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MaxIdle:  getEnvAsInt("DB_MAX_IDLE_CONNECTIONS", 5),
		},
		Redis: RedisConfig{
			Host:        getEnv("REDIS_HOST", "localhost"),
			Port:        getEnv("REDIS_PORT", "6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvAsInt("REDIS_DB", 0),
			PoolSize:    getEnvAsInt("REDIS_POOL_SIZE", 50),
			DialTimeout: 5 * time.Second,
			ReadTimeout: 3 * time.Second,
		},
		NewRelic: NewRelicConfig{
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			AppName:    getEnv("NEW_RELIC_APP_NAME", "UrbanGo-RideBooking"),
			Enabled:    getEnvAsBool("NEW_RELIC_ENABLED", false),
		},
		Clients: ClientsConfig{
			IdentityBaseURL: getEnv("IDENTITY_SERVICE_URL", "http://localhost:8081"),
			DriverBaseURL:   getEnv("DRIVER_SERVICE_URL", "http://localhost:8082"),
			Timeout:         time.Duration(getEnvAsInt("CLIENT_TIMEOUT_SECONDS", 5)) * time.Second,
			Simulated:       getEnvAsBool("SIMULATED_SERVICES", false),
		},
		Pricing: PricingConfig{
			Economy: ClassRates{
				BaseFare:        getEnv("BASE_FARE_ECONOMY", "2.50"),
				PerDistanceRate: getEnv("PER_DISTANCE_RATE_ECONOMY", "1.50"),
			},
			Premium: ClassRates{
				BaseFare:        getEnv("BASE_FARE_PREMIUM", "3.50"),
				PerDistanceRate: getEnv("PER_DISTANCE_RATE_PREMIUM", "2.00"),
			},
			Luxury: ClassRates{
				BaseFare:        getEnv("BASE_FARE_LUXURY", "5.00"),
				PerDistanceRate: getEnv("PER_DISTANCE_RATE_LUXURY", "3.00"),
			},
		},
		Gateway: GatewayConfig{
			SuccessRate: getEnvAsFloat64("GATEWAY_SUCCESS_RATE", 0.95),
			Delay:       time.Duration(getEnvAsInt("GATEWAY_DELAY_MS", 1000)) * time.Millisecond,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Clients.IdentityBaseURL == "" {
		return fmt.Errorf("IDENTITY_SERVICE_URL is required")
	}
	if c.Clients.DriverBaseURL == "" {
		return fmt.Errorf("DRIVER_SERVICE_URL is required")
	}
	if c.Gateway.SuccessRate < 0 || c.Gateway.SuccessRate > 1 {
		return fmt.Errorf("GATEWAY_SUCCESS_RATE must be within [0, 1]")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
