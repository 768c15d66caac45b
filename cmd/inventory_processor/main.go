package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/innoscripta-checkout-register/internal/config"
	"github.com/innoscripta-checkout-register/internal/data/postgres"
	"github.com/innoscripta-checkout-register/internal/inventory_processor/components"
	"github.com/innoscripta-checkout-register/internal/inventory_processor/consumer"
	"github.com/innoscripta-checkout-register/internal/inventory_processor/service"
	"github.com/innoscripta-checkout-register/internal/logger"
	"github.com/innoscripta-checkout-register/internal/platform/messaging/consumers"
	"github.com/innoscripta-checkout-register/internal/platform/messaging/producers"
	"github.com/innoscripta-checkout-register/internal/platform/persistence"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	cfg, err := config.LoadConfig("inventory_processor")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg)

	log.Info("Starting Inventory Processor",
		"app_name", cfg.Application.Name,
		"env", cfg.Application.Env,
	)

	postgresDB, err := persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}

	stockRepo := postgres.NewStockRepository(log, postgresDB)

	kafkaConsumer := consumers.NewKafkaConsumer(appCtx, log, &cfg.Kafka)

	dlqProducer, err := producers.NewDLQProducer(appCtx, log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize DLQ Kafka producer", "error", err)
		os.Exit(1)
	}
	// a nil *DLQProducer must not become a non-nil interface
	var dlq producers.DeadLetterPublisher
	if dlqProducer != nil {
		dlq = dlqProducer
	}

	processingService := components.CreateProcessingService(postgresDB, stockRepo, log, cfg)

	stockEventHandler := consumer.NewStockEventHandler(
		log.With("component", "stock_event_handler"),
		processingService,
		dlq,
	)

	log.Info("Starting Kafka consumer",
		"topic", cfg.Kafka.StockTopic,
		"group", cfg.Kafka.ConsumerGroup,
	)
	if err := kafkaConsumer.Subscribe(appCtx, cfg.Kafka.StockTopic, cfg.Kafka.ConsumerGroup, stockEventHandler.HandleMessage); err != nil {
		log.Error("Failed to subscribe to stock topic", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-quit
	log.Info("Shutdown signal received")

	cancelAppCtx()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	log.Info("Starting graceful shutdown...")

	// Wait for the fetch loop so no handler is mid-transaction when the pool closes
	stopped := make(chan struct{})
	go func() {
		kafkaConsumer.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
		log.Info("Kafka consumer stopped")
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout reached, forcing exit")
	}

	if wpService, ok := processingService.(*service.WorkerPoolProcessingService); ok {
		wpService.Shutdown()
	}

	if dlqProducer != nil {
		if err = dlqProducer.Close(); err != nil {
			log.Error("Error closing DLQ Kafka producer", "error", err)
		}
	}

	if err = kafkaConsumer.Close(); err != nil {
		log.Error("Error closing Kafka consumer", "error", err)
	}

	postgresDB.Close()

	if err != nil {
		log.Error("Inventory Processor shutdown completed with errors")
	} else {
		log.Info("Inventory Processor shutdown completed successfully")
	}
}
