package router

import (
	"context"
	"time"

	apphttp "parts_api/internal/http"
	"parts_api/platform/apperr"
	"parts_api/platform/httpkit"
	"parts_api/platform/metrics"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
	Parts  int    `json:"parts"`
}

// New builds the gin engine with shared middleware and all module routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	// Paths must match exactly; unmatched ones get a JSON 404.
	engine.RedirectTrailingSlash = false
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(httpkit.CORS(app.Config))

	if app.Config.IsMetricsEnabled() {
		engine.Use(httpkit.Metrics())
		engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	engine.GET("/api/health", healthHandler(app))

	root := engine.Group("/")
	if limiter := httpkit.NewIPRateLimiterFromConfig(app.Config, app.Logger); limiter != nil {
		root.Use(limiter.RateLimit())
	}

	routerCtx := &apphttp.RouterContext{
		Engine: engine,
		Root:   root,
	}
	for _, module := range app.Modules {
		module.RegisterRoutes(routerCtx)
		app.Logger.Debug("module routes registered", "module", module.Name())
	}

	engine.NoRoute(func(c *gin.Context) {
		httpkit.HandleError(c, apperr.NotFound("Not found"))
	})

	return engine
}

func healthHandler(app *apphttp.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := 0
		if app.Catalog != nil {
			parts = app.Catalog.Count()
		}

		if app.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()
			if err := app.Health.Ping(ctx); err != nil {
				app.Logger.WithContext(c.Request.Context()).Warn("health check failed", "error", err)
				httpkit.HandleError(c, apperr.Unavailable("database unavailable").
					WithOp("health").
					WithDetails(healthResponse{Status: "unavailable", Parts: parts}))
				return
			}
		}

		httpkit.OK(c, healthResponse{Status: "ok", Parts: parts})
	}
}
