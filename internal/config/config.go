package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Budget snapshot backends.
const (
	BudgetStoreFile = "file"
	BudgetStoreDB   = "db"
)

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Port            string
	ShutdownTimeout time.Duration

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Budget snapshots
	BudgetStore string
	DataDir     string

	// Sync fan-out; empty AMQPURL disables publishing
	AMQPURL      string
	AMQPExchange string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Operator endpoints; empty disables them
	AdminAPIKey string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dataDir := getEnv("DATA_DIR", "data")

	// Get values from environment variables with defaults
	config := &Config{
		Env: getEnv("ENV", "development"),

		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "moneybook"),
		DBPassword: getEnv("DB_PASSWORD", "moneybook"),
		DBName:     getEnv("DB_NAME", "moneybook"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", filepath.Join(dataDir, "moneybook.db")),

		BudgetStore: getEnv("BUDGET_STORE", BudgetStoreFile),
		DataDir:     dataDir,

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "moneybook.sync"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	config.JWTExpirationDur = getDuration("JWT_EXPIRES_IN", 24*time.Hour)
	config.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	if config.BudgetStore != BudgetStoreFile && config.BudgetStore != BudgetStoreDB {
		log.Printf("Warning: unknown BUDGET_STORE value '%s', falling back to %s\n", config.BudgetStore, BudgetStoreFile)
		config.BudgetStore = BudgetStoreFile
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, defaultValue.String())
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
