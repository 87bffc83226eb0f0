// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"parts_api/platform/config"
	"parts_api/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.RateLimitConfig
	config.MetricsConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// CatalogCounter reports the size of the loaded catalog for health output.
type CatalogCounter interface {
	Count() int
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration.
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness checks (e.g., DB ping). May be nil.
	Health HealthChecker
	// Catalog reports how many parts are served.
	Catalog CatalogCounter
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
