package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppVersion is reported by the health endpoints.
const AppVersion = "2.1.0"

// Config holds all configuration for the application
type Config struct {
	AppMode    string
	Port       string
	Database   DatabaseConfig
	Supabase   SupabaseConfig
	Blockchain BlockchainConfig
	DraftSweep DraftSweepConfig
	Auth       AuthConfig
}

// DatabaseConfig holds Postgres configuration for the legacy auth surface
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	Schema   string
	SSLMode  string
}

// SupabaseConfig holds the PostgREST data-layer configuration
type SupabaseConfig struct {
	UseREST     bool
	RestURL     string
	AnonKey     string
	ServiceRole string
	// JWTSecret enables local verification of forwarded bearer tokens.
	// When empty, tokens are passed through to PostgREST unverified.
	JWTSecret string
}

// BlockchainConfig holds the Continuus registration API configuration
type BlockchainConfig struct {
	URL          string
	DsKey        string
	IDBlockchain int
}

// DraftSweepConfig controls the scheduled expiry of abandoned draft processes
type DraftSweepConfig struct {
	Enabled    bool
	MaxAgeDays int
	Schedule   string
}

// AuthConfig holds login-flow options
type AuthConfig struct {
	// RehashLegacy upgrades MD5/SHA-1 stored passwords to bcrypt after a
	// successful login.
	RehashLegacy bool
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:    appMode,
		Port:       getEnv("PORT", "8000"),
		Database:   loadDatabaseConfig(),
		Supabase:   loadSupabaseConfig(),
		Blockchain: loadBlockchainConfig(),
		DraftSweep: loadDraftSweepConfig(),
		Auth: AuthConfig{
			RehashLegacy: getEnvBool("AUTH_REHASH_LEGACY", false),
		},
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads the Postgres config using the conventional PG* names
func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("PGHOST", "localhost"),
		Port:     getEnv("PGPORT", "5432"),
		User:     getEnv("PGUSER", "postgres"),
		Password: getEnv("PGPASSWORD", ""),
		DBName:   getEnv("PGDATABASE", "postgres"),
		Schema:   getEnv("PGSCHEMA", "public"),
		// Supabase-hosted Postgres requires SSL
		SSLMode: getEnv("PGSSLMODE", "require"),
	}
}

// loadSupabaseConfig loads the PostgREST data-layer config
func loadSupabaseConfig() SupabaseConfig {
	return SupabaseConfig{
		UseREST:     getEnvBool("USE_SUPABASE_REST", true),
		RestURL:     getEnv("SUPABASE_REST_URL", ""),
		AnonKey:     getEnv("SUPABASE_ANON_KEY", ""),
		ServiceRole: getEnv("SUPABASE_SERVICE_ROLE", ""),
		JWTSecret:   getEnv("SUPABASE_JWT_SECRET", ""),
	}
}

// loadBlockchainConfig loads the blockchain proxy config
func loadBlockchainConfig() BlockchainConfig {
	id, _ := strconv.Atoi(getEnv("BLOCKCHAIN_ID", "1"))
	return BlockchainConfig{
		URL:          getEnv("BLOCKCHAIN_API_URL", ""),
		DsKey:        getEnv("BLOCKCHAIN_DS_KEY", ""),
		IDBlockchain: id,
	}
}

// loadDraftSweepConfig loads the draft-expiry sweep config
func loadDraftSweepConfig() DraftSweepConfig {
	maxAge, _ := strconv.Atoi(getEnv("DRAFT_MAX_AGE_DAYS", "90"))
	return DraftSweepConfig{
		Enabled:    getEnvBool("DRAFT_SWEEP_ENABLED", false),
		MaxAgeDays: maxAge,
		Schedule:   getEnv("DRAFT_SWEEP_SCHEDULE", "30 3 * * *"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("CORS_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://licenca.sema.gov.br"
	}
	return origins
}
