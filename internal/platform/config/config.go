package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/SscSPs/expense_tracker/internal/platform/credentials"
)

// Store drivers understood by the application.
const (
	StoreDriverFirebase = "firebase"
	StoreDriverMemory   = "memory"
)

// DefaultDatabaseURL is the Realtime Database the tracker was built against.
const DefaultDatabaseURL = "https://final-project-expense-tracker-default-rtdb.asia-southeast1.firebasedatabase.app"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	StoreDriver        string
	DatabaseURL        string
	CredentialsFile    string
	RequireCredentials bool
	ServiceAccount     credentials.ServiceAccountFields

	CORSAllowedOrigins []string
	RateLimit          string

	PosthogAPIKey   string
	PosthogEndpoint string
}

var serviceAccountKeys = []string{
	"FIREBASE_TYPE",
	"FIREBASE_PROJECT_ID",
	"FIREBASE_PRIVATE_KEY_ID",
	"FIREBASE_PRIVATE_KEY",
	"FIREBASE_CLIENT_EMAIL",
	"FIREBASE_CLIENT_ID",
	"FIREBASE_AUTH_URI",
	"FIREBASE_TOKEN_URI",
	"FIREBASE_AUTH_PROVIDER_X509_CERT_URL",
	"FIREBASE_CLIENT_X509_CERT_URL",
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreDriverFirebase)
	v.SetDefault("FIREBASE_DATABASE_URL", DefaultDatabaseURL)
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "cred_file.json")
	v.SetDefault("REQUIRE_CREDENTIALS", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	// Unmarshal only sees keys viper knows about.
	for _, key := range serviceAccountKeys {
		v.SetDefault(key, "")
	}
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER")))
	switch cfg.StoreDriver {
	case StoreDriverFirebase, StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want %q or %q)", cfg.StoreDriver, StoreDriverFirebase, StoreDriverMemory)
	}

	cfg.DatabaseURL = v.GetString("FIREBASE_DATABASE_URL")
	if cfg.StoreDriver == StoreDriverFirebase && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL must be set when STORE_DRIVER is %q", StoreDriverFirebase)
	}
	cfg.CredentialsFile = v.GetString("FIREBASE_CREDENTIALS_FILE")
	cfg.RequireCredentials = v.GetBool("REQUIRE_CREDENTIALS")

	if err := v.Unmarshal(&cfg.ServiceAccount); err != nil {
		return nil, fmt.Errorf("failed to read service account fields: %w", err)
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = strings.TrimSpace(v.GetString("RATE_LIMIT"))

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
