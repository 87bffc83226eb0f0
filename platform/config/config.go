// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Catalog source kinds accepted by CATALOG_SOURCE.
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
	CatalogSourceObject   = "object"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
	GetDatabaseMigrations() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides settings for the per-IP request limiter.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
	IsRateLimitEnabled() bool
}

// MetricsConfig toggles the Prometheus endpoint and middleware.
type MetricsConfig interface {
	IsMetricsEnabled() bool
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	IsMinIOEnabled() bool
}

// CatalogConfig selects where the parts catalog is loaded from.
type CatalogConfig interface {
	GetCatalogSource() string
	GetCatalogFile() string
	GetCatalogObjectBucket() string
	GetCatalogObjectKey() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string
	HTTPAddr            string
	CORSAllowAll        bool
	CORSOrigins         []string
	CORSAllowCreds      bool
	DatabaseURL         string
	DatabaseMigrations  bool
	MinIOEndpoint       string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOUseSSL         bool
	CatalogSource       string
	CatalogFile         string
	CatalogObjectBucket string
	CatalogObjectKey    string
	RateLimitRPS        float64
	RateLimitBurst      int
	MetricsEnabled      bool
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string      { return c.DatabaseURL }
func (c *Config) GetDatabaseMigrations() bool { return c.DatabaseMigrations }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }
func (c *Config) IsRateLimitEnabled() bool { return c.RateLimitRPS > 0 }

// MetricsConfig implementation
func (c *Config) IsMetricsEnabled() bool { return c.MetricsEnabled }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string  { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool      { return c.MinIOUseSSL }
func (c *Config) IsMinIOEnabled() bool      { return c.MinIOEndpoint != "" }

// CatalogConfig implementation
func (c *Config) GetCatalogSource() string       { return c.CatalogSource }
func (c *Config) GetCatalogFile() string         { return c.CatalogFile }
func (c *Config) GetCatalogObjectBucket() string { return c.CatalogObjectBucket }
func (c *Config) GetCatalogObjectKey() string    { return c.CatalogObjectKey }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "true"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            resolveHTTPAddr(getEnv("HTTP_ADDR", ":5000"), getEnv("PORT", "")),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
		CORSAllowCreds:      strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DatabaseMigrations:  strings.EqualFold(getEnv("DATABASE_MIGRATIONS", "true"), "true"),
		MinIOEndpoint:       getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:      getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:      getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:         strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		CatalogSource:       strings.ToLower(strings.TrimSpace(getEnv("CATALOG_SOURCE", CatalogSourceEmbedded))),
		CatalogFile:         getEnv("CATALOG_FILE", ""),
		CatalogObjectBucket: getEnv("CATALOG_OBJECT_BUCKET", ""),
		CatalogObjectKey:    getEnv("CATALOG_OBJECT_KEY", ""),
		RateLimitRPS:        mustFloat64(getEnv("RATE_LIMIT_RPS", "0")),
		RateLimitBurst:      mustInt(getEnv("RATE_LIMIT_BURST", "20")),
		MetricsEnabled:      strings.EqualFold(getEnv("METRICS_ENABLED", "true"), "true"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.CORSAllowAll && c.CORSAllowCreds {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when RATE_LIMIT_RPS is set")
	}

	switch c.CatalogSource {
	case CatalogSourceEmbedded:
	case CatalogSourceFile:
		if c.CatalogFile == "" {
			return fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE is %q", CatalogSourceFile)
		}
	case CatalogSourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when CATALOG_SOURCE is %q", CatalogSourcePostgres)
		}
	case CatalogSourceObject:
		if !c.IsMinIOEnabled() {
			return fmt.Errorf("MINIO_ENDPOINT is required when CATALOG_SOURCE is %q", CatalogSourceObject)
		}
		if c.CatalogObjectBucket == "" || c.CatalogObjectKey == "" {
			return fmt.Errorf("CATALOG_OBJECT_BUCKET and CATALOG_OBJECT_KEY are required when CATALOG_SOURCE is %q", CatalogSourceObject)
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	return nil
}

// resolveHTTPAddr lets a platform-assigned PORT override the port of addr
// while keeping its host part.
func resolveHTTPAddr(addr, port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return addr
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = ""
	}
	return net.JoinHostPort(host, port)
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustFloat64(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
