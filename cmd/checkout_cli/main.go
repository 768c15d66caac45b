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
	"github.com/innoscripta-checkout-register/internal/cli"
	"github.com/innoscripta-checkout-register/internal/config"
	"github.com/innoscripta-checkout-register/internal/data/mongo"
	"github.com/innoscripta-checkout-register/internal/data/postgres"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
	"github.com/innoscripta-checkout-register/internal/logger"
	"github.com/innoscripta-checkout-register/internal/platform/messaging/producers"
	"github.com/innoscripta-checkout-register/internal/platform/persistence"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	cfg, err := config.LoadConfig("checkout_cli")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// LOG_FILE keeps JSON records out of the terminal the cashier is typing into
	log := logger.NewLogger(cfg)

	postgresDB, err := persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		fmt.Println("Could not reach the item database, see the log file for details.")
		os.Exit(1)
	}

	mongoDB, err := persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
	if err != nil {
		log.Error("Failed to initialize MongoDB", "error", err)
		fmt.Println("Could not reach the sale ledger, see the log file for details.")
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

	catalogRepo := postgres.NewCatalogRepository(log, postgresDB)
	registerRepo := postgres.NewRegisterRepository(log, postgresDB)
	ledgerRepo := mongo.NewSaleLedgerRepository(log, mongoDB.Database())

	revenueObservers := []sale.RevenueObserver{
		observers.NewRevenueView(os.Stdout, cfg.Checkout.Currency),
		// counters are only kept for the process lifetime; nothing scrapes the CLI
		observers.NewRevenueMetrics(prometheus.NewRegistry()),
	}
	if cfg.Checkout.RevenueFile != "" {
		revenueObservers = append(revenueObservers,
			observers.NewRevenueFileOutput(cfg.Checkout.RevenueFile, cfg.Checkout.Currency, log.With("component", "revenue_file")))
	}

	checkout := components.CreateCheckoutService(components.Infrastructure{
		Catalog:    catalogRepo,
		Ledger:     ledgerRepo,
		Publisher:  stockProducer,
		Drawer:     components.NewCashDrawer(postgresDB, registerRepo, cfg.Checkout.RegisterID, log.With("component", "cash_drawer")),
		ReceiptOut: os.Stdout,
	}, log, cfg, revenueObservers...)

	view := cli.NewView(checkout, os.Stdin, os.Stdout, log.With("component", "text_ui"))

	done := make(chan error, 1)
	go func() {
		for {
			if err := view.RunSale(appCtx); err != nil {
				done <- err
				return
			}
			fmt.Println()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-done:
		if errors.Is(err, cli.ErrInputClosed) {
			log.Info("Input closed, stopping checkout")
		} else {
			log.Error("Text UI stopped", "error", err)
		}
	}

	cancelAppCtx()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err = stockProducer.Close(); err != nil {
		log.Error("Error closing Kafka producer", "error", err)
	}

	postgresDB.Close()

	if err = mongoDB.Close(shutdownCtx); err != nil {
		log.Error("Error closing MongoDB connection", "error", err)
	}

	log.Info("Checkout stopped")
}
