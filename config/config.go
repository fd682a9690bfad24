package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the judging portal.
type Config struct {
	DatabaseURL        string
	ServerPort         int
	CORSAllowedOrigins []string

	// Cloudflare R2 settings for team logo uploads. The whole block is
	// optional: when incomplete, logo uploads are simply disabled.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from environment variables. A .env file is picked
// up when present, which keeps local development convenient.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	cfg := &Config{
		DatabaseURL:        dbURL,
		ServerPort:         port,
		CORSAllowedOrigins: origins,

		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

// LogoUploadsEnabled reports whether every R2 setting required for team logo
// uploads is present.
func (c *Config) LogoUploadsEnabled() bool {
	return c.R2AccountID != "" &&
		c.R2AccessKeyID != "" &&
		c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" &&
		c.R2PublicBaseURL != ""
}
