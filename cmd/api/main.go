package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parts_api/internal/adapters/storage"
	apphttp "parts_api/internal/http"
	"parts_api/internal/http/router"
	"parts_api/internal/parts"
	"parts_api/internal/parts/repository"
	"parts_api/internal/parts/source"
	"parts_api/platform/config"
	"parts_api/platform/db"
	"parts_api/platform/logger"
	"parts_api/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "catalogSource", cfg.CatalogSource)

	gin.SetMode(ginMode(cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Catalog (loaded once, immutable afterwards)
	// ========================================================================

	val := validator.New()

	var pool *pgxpool.Pool
	if cfg.CatalogSource == config.CatalogSourcePostgres {
		pool = connectDatabase(ctx, cfg, log)
		defer pool.Close()
	}

	catalogSource, err := newCatalogSource(ctx, cfg, pool, val)
	if err != nil {
		log.Error("failed to initialize catalog source", "error", err)
		panic("failed to initialize catalog source: " + err.Error())
	}

	records, err := loadCatalog(ctx, log, catalogSource)
	if err != nil {
		log.Error("failed to load catalog", "source", catalogSource.Name(), "error", err)
		panic("failed to load catalog: " + err.Error())
	}
	log.CatalogLoaded(catalogSource.Name(), len(records))

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	partsModule := parts.NewModule(records, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Catalog: partsModule.Repository(),
		Modules: []apphttp.Module{
			partsModule,
		},
	}
	if pool != nil {
		app.Health = db.NewPoolAdapter(pool)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := serve(ctx, log, srv); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
	log.Info("server stopped")
}

// ginMode keeps gin's debug output for local development only.
func ginMode(env string) string {
	if env == "development" {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, log *logger.Logger, srv *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func connectDatabase(ctx context.Context, cfg *config.Config, log *logger.Logger) *pgxpool.Pool {
	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.DatabaseError("connect", err)
		panic("failed to connect to database: " + err.Error())
	}
	log.Info("database connection established")

	if cfg.GetDatabaseMigrations() {
		applied, err := db.RunMigrations(ctx, pool)
		if err != nil {
			pool.Close()
			log.DatabaseError("migrate", err)
			panic("failed to run database migrations: " + err.Error())
		}
		log.Info("database migrations complete", "applied", applied)
	}

	return pool
}

func newCatalogSource(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, val *validator.Validator) (source.Source, error) {
	switch cfg.GetCatalogSource() {
	case config.CatalogSourceFile:
		return source.NewFile(cfg.GetCatalogFile(), val), nil
	case config.CatalogSourcePostgres:
		return source.NewPostgres(pool), nil
	case config.CatalogSourceObject:
		store, err := storage.NewMinIOService(cfg)
		if err != nil {
			return nil, err
		}
		exists, err := store.BucketExists(ctx, cfg.GetCatalogObjectBucket())
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("bucket %q does not exist", cfg.GetCatalogObjectBucket())
		}
		return source.NewObject(store, cfg.GetCatalogObjectBucket(), cfg.GetCatalogObjectKey(), val), nil
	default:
		return source.Embedded{}, nil
	}
}

func loadCatalog(ctx context.Context, log *logger.Logger, src source.Source) ([]repository.Part, error) {
	var records []repository.Part
	err := withRetry(ctx, log, "catalog load", 3, time.Second, func() error {
		loaded, err := src.Load(ctx)
		if err != nil {
			return err
		}
		records = loaded
		return nil
	})
	return records, err
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
