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

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	_ "northwind/docs"
	"northwind/internal/config"
	httpapi "northwind/internal/http"
	"northwind/internal/logging"
	"northwind/internal/metrics"
	"northwind/internal/repository"
	"northwind/internal/service"
	"northwind/internal/view"
)

// @title Northwind catalog browser
// @version 1.0
// @description Server-rendered catalog and order pages plus a world clock widget.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	store, closeStore, err := buildStore(cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("store setup failed")
	}
	defer closeStore()

	clock, err := service.NewClockService(cfg.Clock.DefaultZone, cfg.Clock.Zones)
	if err != nil {
		log.Fatal().Err(err).Msg("clock setup failed")
	}
	views, err := view.New()
	if err != nil {
		log.Fatal().Err(err).Msg("templates failed to parse")
	}

	m := metrics.New()
	catalog := service.NewCatalogService(store,
		service.WithQueryTimeout(cfg.Store.QueryTimeout),
		service.WithFailureHook(m.FetchFailed),
	)
	srv := httpapi.NewServer(catalog, clock, views, log, m)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Str("store", cfg.Store.Driver).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func buildStore(cfg config.StoreConfig, log zerolog.Logger) (repository.CatalogRepository, func(), error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn().Msg("using the in-memory sample dataset")
		return repository.NewMemoryStore(repository.SampleDataset()), func() {}, nil
	}
	db, err := connectDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewPostgresStore(db), func() { _ = db.Close() }, nil
}

// connectDB opens the shared pool and pings it, retrying while the database starts up
func connectDB(cfg config.StoreConfig, log zerolog.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	attempts := cfg.ConnectRetries + 1
	for i := 1; i <= attempts; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err == nil {
			log.Info().Msg("connected to postgres")
			return db, nil
		}
		log.Warn().Err(err).Int("attempt", i).Int("of", attempts).Msg("postgres not reachable")
		if i < attempts {
			time.Sleep(2 * time.Second)
		}
	}
	_ = db.Close()
	return nil, fmt.Errorf("postgres not reachable after %d attempts: %w", attempts, err)
}
