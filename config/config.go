package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PORT      string
	GIN_MODE  string
	LOG_LEVEL string

	CORS_ORIGIN string

	// Payload tier. Empty DB_URL disables it.
	DB_URL             string
	PAYLOAD_PUBLIC_URL string

	// Sanity tier. Empty SANITY_PROJECT_ID disables it.
	SANITY_PROJECT_ID  string
	SANITY_DATASET     string
	SANITY_API_VERSION string
	SANITY_TOKEN       string
	SANITY_TIMEOUT     time.Duration

	SITE_DESIGN string

	// Draft preview is only mounted when set.
	PREVIEW_SECRET string
}

// LoadEnv reads .env (if any) and the process environment.
func LoadEnv() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup, which keeps tests off the real environment.
func FromLookup(lookup func(string) (string, bool)) *Config {
	get := func(key, fallback string) string {
		return getEnv(lookup, key, fallback)
	}

	return &Config{
		PORT:      get("PORT", "8080"),
		GIN_MODE:  get("GIN_MODE", "release"),
		LOG_LEVEL: strings.ToLower(get("LOG_LEVEL", "info")),

		CORS_ORIGIN: get("CORS_ORIGIN", "*"),

		DB_URL:             get("DB_URL", ""),
		PAYLOAD_PUBLIC_URL: strings.TrimRight(get("PAYLOAD_PUBLIC_URL", ""), "/"),

		SANITY_PROJECT_ID:  get("SANITY_PROJECT_ID", ""),
		SANITY_DATASET:     get("SANITY_DATASET", "production"),
		SANITY_API_VERSION: get("SANITY_API_VERSION", "2024-01-01"),
		SANITY_TOKEN:       get("SANITY_TOKEN", ""),
		SANITY_TIMEOUT:     getDuration(lookup, "SANITY_TIMEOUT", 5*time.Second),

		SITE_DESIGN: strings.ToLower(get("SITE_DESIGN", "classic")),

		PREVIEW_SECRET: get("PREVIEW_SECRET", ""),
	}
}

func (c *Config) PayloadEnabled() bool { return c.DB_URL != "" }

func (c *Config) SanityEnabled() bool { return c.SANITY_PROJECT_ID != "" }

func (c *Config) PreviewEnabled() bool { return c.PREVIEW_SECRET != "" }

// MustEnv is used by the CLI for commands that cannot run without a value.
func MustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(lookup func(string) (string, bool), key string, fallback string) string {
	if value, exists := lookup(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getDuration(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	raw := getEnv(lookup, key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
