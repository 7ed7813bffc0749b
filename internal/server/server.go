// Package server boots the Platter application: configuration,
// database, cache, storage, queue workers, the scheduler and the HTTP
// listener, in that order.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/platter/app/graphql"
	"github.com/shashiranjanraj/platter/app/jobs"
	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/routes"
	"github.com/shashiranjanraj/platter/config"
	"github.com/shashiranjanraj/platter/pkg/cache"
	"github.com/shashiranjanraj/platter/pkg/database"
	"github.com/shashiranjanraj/platter/pkg/logger"
	"github.com/shashiranjanraj/platter/pkg/metrics"
	"github.com/shashiranjanraj/platter/pkg/middleware"
	"github.com/shashiranjanraj/platter/pkg/queue"
	"github.com/shashiranjanraj/platter/pkg/reqid"
	"github.com/shashiranjanraj/platter/pkg/router"
	"github.com/shashiranjanraj/platter/pkg/schedule"
	"github.com/shashiranjanraj/platter/pkg/storage"
)

const (
	workerCount     = 4
	shutdownTimeout = 10 * time.Second
)

// Boot wires the shared infrastructure every entrypoint needs: config,
// logging, database, cache and storage. The HTTP server, workers and
// scheduler are started separately so the CLI can boot just what a
// command requires.
func Boot() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	bootLogSink()

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: connect database: %w", err)
	}
	if err := autoMigrate(); err != nil {
		return fmt.Errorf("server: migrate: %w", err)
	}
	queue.UseDB(database.DB)

	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, caching disabled", "error", err)
	}

	storage.Connect()
	return nil
}

// BootQueue selects the queue driver from config and registers all job
// types. Requires Boot to have run.
func BootQueue() {
	if config.QueueDriver() == "redis" {
		if cache.RDB != nil {
			queue.SetDriver(queue.NewRedisDriver(cache.RDB))
		} else {
			logger.Warn("server: redis queue requested but redis is down, using memory driver")
		}
	}
	jobs.Register()
}

// Start runs the full application until ctx is cancelled: queue
// workers, the scheduler and the HTTP listener.
func Start(ctx context.Context) error {
	if err := Boot(); err != nil {
		return err
	}

	BootQueue()
	queue.StartWorkers(ctx, workerCount)

	resolver := graphql.NewResolver()
	schema, err := graphql.BuildSchema(resolver)
	if err != nil {
		return fmt.Errorf("server: build schema: %w", err)
	}

	schedule.Every(1).Hours().
		Name("promotions.expire").
		WithoutOverlapping().
		Run(resolver.Payments.ExpirePromotions)
	schedule.Start(ctx)

	r := newRouter()
	routes.RegisterAPI(r, schema, resolver)
	routes.StartOrderFeed()

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter builds the router with the global middleware stack.
// Ordering matters: metrics wraps everything so recovered panics and
// rate-limited requests are still counted, recovery sits above the
// request id and logger so their output survives a panic downstream.
func newRouter() *router.Router {
	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(200, time.Minute),
	)
	return r
}

// bootLogSink fans log output into MongoDB when a sink is configured.
func bootLogSink() {
	uri := config.LogMongoURI()
	if uri == "" {
		return
	}

	sink, err := logger.NewMongoSink(uri, config.LogMongoDatabase(), config.LogMongoCollection())
	if err != nil {
		logger.Warn("server: mongo log sink disabled", "error", err)
		return
	}
	logger.SetHandler(logger.NewTee(logger.L.Handler(), sink))
}

func autoMigrate() error {
	return database.DB.AutoMigrate(
		&models.User{},
		&models.Verification{},
		&models.Category{},
		&models.Restaurant{},
		&models.Dish{},
		&models.OrderItem{},
		&models.Order{},
		&models.Payment{},
		&queue.FailedJobRecord{},
	)
}
