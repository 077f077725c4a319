// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultCatalogBaseURL = "https://api.escuelajs.co/api/v1"

type Config struct {
	Port                 string
	CatalogBaseURL       string
	CatalogTimeout       time.Duration
	FeaturedPageSize     int
	HomeCategoryPageSize int
	FormCategoryPageSize int
	LatestCount          int
	FormTTL              time.Duration
	MaxOpenForms         int
	LogLevel             string
	ShutdownTimeout      time.Duration
}

// Load reads a .env file when one exists, then the environment. Variables
// already set in the environment take precedence over the file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:                 getenv("APP_PORT", "8080"),
		CatalogBaseURL:       strings.TrimRight(getenv("CATALOG_API_BASE_URL", DefaultCatalogBaseURL), "/"),
		CatalogTimeout:       time.Duration(positiveenv("CATALOG_API_TIMEOUT_MS", 10000)) * time.Millisecond,
		FeaturedPageSize:     positiveenv("FEATURED_PAGE_SIZE", 12),
		HomeCategoryPageSize: positiveenv("HOME_CATEGORY_PAGE_SIZE", 4),
		FormCategoryPageSize: positiveenv("FORM_CATEGORY_PAGE_SIZE", 5),
		LatestCount:          positiveenv("LATEST_COUNT", 4),
		FormTTL:              time.Duration(positiveenv("FORM_TTL_MINUTES", 30)) * time.Minute,
		MaxOpenForms:         positiveenv("FORM_MAX_OPEN", 1000),
		LogLevel:             getenv("LOG_LEVEL", "info"),
		ShutdownTimeout:      time.Duration(positiveenv("SHUTDOWN_TIMEOUT", 15)) * time.Second,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// positiveenv falls back to def for unset, unparsable or non-positive values.
func positiveenv(k string, def int) int {
	v := getenv(k, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
