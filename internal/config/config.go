package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Supabase
	SupabaseURL     string
	SupabaseAnonKey string

	// Database (direct PostgreSQL connection to the Supabase project)
	DatabaseURL string

	// Storage buckets
	CVBucket   string
	LogoBucket string

	// Admin session
	AdminEmail        string
	AdminPasswordHash string
	AdminJWTSecret    string

	// Server
	Port          string
	Environment   string
	SubmitTimeout time.Duration
}

func Load() (*Config, error) {
	// Optional .env for local development; real deployments use the
	// environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL:     getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		CVBucket:   getEnv("CV_STORAGE_BUCKET", "cv-files"),
		LogoBucket: getEnv("LOGO_STORAGE_BUCKET", "logo-files"),

		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminJWTSecret:    getEnv("ADMIN_JWT_SECRET", ""),

		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		SubmitTimeout: getDurationEnv("SUBMIT_TIMEOUT_SECONDS", 15*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if strings.Contains(c.SupabaseURL, "<PROJECT-ID>") {
		return fmt.Errorf("SUPABASE_URL still holds the placeholder value")
	}
	if c.SupabaseAnonKey == "" || c.SupabaseAnonKey == "<ANON_KEY>" {
		return fmt.Errorf("SUPABASE_ANON_KEY is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is required")
	}
	if c.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if c.AdminJWTSecret == "" {
		return fmt.Errorf("ADMIN_JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
