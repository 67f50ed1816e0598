// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/mediabrowser/internal/api"
	"github.com/tomtom215/mediabrowser/internal/config"
	"github.com/tomtom215/mediabrowser/internal/events"
	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/resolver"
	"github.com/tomtom215/mediabrowser/internal/source"
	"github.com/tomtom215/mediabrowser/internal/supervisor"
	"github.com/tomtom215/mediabrowser/internal/supervisor/services"
	ws "github.com/tomtom215/mediabrowser/internal/websocket"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	configFile := config.ConfigFile()
	logging.Info().
		Str("config_file", configFile).
		Int("routes", len(cfg.Routes)).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("Starting Mediabrowser")

	if err := run(cfg, configFile); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config, configFile string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exec := source.NewExecutorFromConfig(cfg)
	routes, err := source.RoutesFromConfig(cfg.Routes, exec)
	if err != nil {
		return err
	}

	store, err := openFavorites(cfg.Favorites)
	if err != nil {
		return err
	}
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing favorites store")
			}
		}()
	}

	opts := resolver.Options{
		ContentCacheSize: cfg.Catalog.ContentCacheSize,
		LeafCacheSize:    cfg.Catalog.LeafCacheSize,
		CacheTTL:         cfg.Catalog.ContentCacheTTL,
	}
	if store != nil {
		opts.Store = store
	}
	res, err := resolver.New(routes, opts)
	if err != nil {
		return err
	}
	if err := res.LoadFavorites(ctx); err != nil {
		return err
	}
	logging.Info().Strs("patterns", res.Patterns()).Int("favorites", len(res.Favorites())).Msg("Resolver ready")

	// Resolver notifications flow through the bus to the WebSocket hub.
	bus := events.NewBus(events.DefaultBusConfig())
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()
	res.AddListener(events.NewPublisher(bus))

	hub := ws.NewHub()
	hub.SetSnapshotFunc(func() interface{} { return res.Snapshot() })

	handler := api.NewHandler(res, hub, api.HandlerOptions{
		CORSOrigins:     cfg.Security.CORSOrigins,
		ReadinessChecks: readinessChecks(exec),
	})
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: shutdownTimeout,
	})
	if err != nil {
		return err
	}

	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(services.NewEventBridgeService(bus, events.TopicCatalog, hub))
	if cfg.Catalog.PreloadTabs {
		tree.AddCatalogService(services.NewTabPreloadService(res))
	}
	if ttl := cfg.Catalog.ContentCacheTTL; ttl > 0 {
		tree.AddCatalogService(services.NewCacheJanitorService(res, ttl/2))
	}
	if configFile != "" {
		tree.AddCatalogService(services.NewRouteReloadService(
			configFile, config.WatchConfigFile, reloadRoutes(configFile, exec, res), 0,
		))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for services")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	stop()

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	return nil
}
