package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/innoscripta-checkout-register/internal/checkout/components"
	"github.com/innoscripta-checkout-register/internal/checkout/observers"
	"github.com/innoscripta-checkout-register/internal/checkout_api"
	"github.com/innoscripta-checkout-register/internal/checkout_api/service"
	"github.com/innoscripta-checkout-register/internal/config"
	"github.com/innoscripta-checkout-register/internal/data/mongo"
	"github.com/innoscripta-checkout-register/internal/data/postgres"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
	"github.com/innoscripta-checkout-register/internal/logger"
	"github.com/innoscripta-checkout-register/internal/platform/messaging/producers"
	"github.com/innoscripta-checkout-register/internal/platform/persistence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	cfg, err := config.LoadConfig("checkout_api")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg)

	if cfg.Postgres.MigrationsPath != "" {
		if err := persistence.RunMigrations(log, cfg.Postgres.URL, cfg.Postgres.MigrationsPath); err != nil {
			log.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
	}

	postgresDB, err := persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}

	mongoDB, err := persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
	if err != nil {
		log.Error("Failed to initialize MongoDB", "error", err)
		os.Exit(1)
	}

	if err := mongoDB.EnsureIndexes(appCtx, mongo.SaleLedgerCollectionName, mongo.SaleLedgerIndexes()...); err != nil {
		log.Error("Failed to ensure sale ledger indexes", "error", err)
		os.Exit(1)
	}

	stockProducer, err := producers.NewStockUpdateProducer(appCtx, log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize stock update Kafka producer", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	catalogRepo := postgres.NewCatalogRepository(log, postgresDB)
	registerRepo := postgres.NewRegisterRepository(log, postgresDB)
	ledgerRepo := mongo.NewSaleLedgerRepository(log, mongoDB.Database())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	revenueObservers := []sale.RevenueObserver{
		observers.NewRevenueMetrics(reg),
	}
	if cfg.Checkout.RevenueFile != "" {
		revenueObservers = append(revenueObservers,
			observers.NewRevenueFileOutput(cfg.Checkout.RevenueFile, cfg.Checkout.Currency, log.With("component", "revenue_file")))
	}

	drawer := components.NewCashDrawer(postgresDB, registerRepo, cfg.Checkout.RegisterID, log.With("component", "cash_drawer"))
	checkout := components.CreateCheckoutService(components.Infrastructure{
		Catalog:    catalogRepo,
		Ledger:     ledgerRepo,
		Publisher:  stockProducer,
		Drawer:     drawer,
		ReceiptOut: os.Stdout,
	}, log, cfg, revenueObservers...)

	services := checkout_api.Services{
		Sales:    service.NewSaleService(checkout),
		Ledger:   service.NewLedgerService(ledgerRepo),
		Register: service.NewRegisterService(drawer),
	}

	health := func(ctx context.Context) error {
		return errors.Join(postgresDB.Ping(ctx), mongoDB.Ping(ctx))
	}

	server := checkout_api.NewServer(log, cfg, services, reg, health)
	log.Info("REST server initialized")

	errChan := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	cancelAppCtx()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	log.Info("Starting graceful shutdown...")

	// Stop accepting requests before closing the stores they use
	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	if err = stockProducer.Close(); err != nil {
		log.Error("Error closing Kafka producer", "error", err)
	}

	postgresDB.Close()

	if err = mongoDB.Close(shutdownCtx); err != nil {
		log.Error("Error closing MongoDB connection", "error", err)
	}

	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
