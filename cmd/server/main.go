package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/trufaria/storefront-backend/internal/config"
	httpdelivery "github.com/trufaria/storefront-backend/internal/delivery/http"
	"github.com/trufaria/storefront-backend/internal/messaging"
	"github.com/trufaria/storefront-backend/internal/messaging/kafka"
	"github.com/trufaria/storefront-backend/internal/service"
	"github.com/trufaria/storefront-backend/internal/store"
)

func main() {
	configPath := flag.String("config", os.Getenv("STOREFRONT_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.SlogLevel())

	// Prices cross the wire as plain JSON numbers, matching what the
	// frontend already parses.
	decimal.MarshalJSONWithoutQuotes = true

	// --- Stores ---
	seed := store.DefaultProducts()
	if cfg.CatalogSeed != "" {
		if seed, err = config.LoadCatalogSeed(cfg.CatalogSeed); err != nil {
			slog.Error("Failed to load catalog seed", "err", err)
			os.Exit(1)
		}
	}

	catalog, err := store.NewCatalog(seed)
	if err != nil {
		slog.Error("Failed to build catalog", "err", err)
		os.Exit(1)
	}
	ledger := store.NewLedger()
	accounts := store.NewAccounts()

	// --- Messaging ---
	var publisher messaging.Publisher = messaging.LogPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp := kafka.NewPublisher(cfg.Kafka.Brokers)
		defer kp.Close()
		publisher = kp
		slog.Info("Kafka publisher enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	svc := service.NewStorefront(catalog, ledger, accounts, publisher, cfg.Kafka.Topic)

	// --- HTTP API ---
	mux := http.NewServeMux()
	httpdelivery.NewHandler(svc).RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: httpdelivery.EnableCORS(cfg.CORSOrigin, httpdelivery.RequestLogger(httpdelivery.Recover(mux))),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		slog.Info("HTTP server starting", "addr", cfg.Addr, "products", len(seed))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")
	httpServer.Shutdown(context.Background())
}
