package components

import (
	"log/slog"

	"github.com/innoscripta-checkout-register/internal/config"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/inventory_processor/service"
)

// CreateProcessingService creates a new ProcessingService with all its dependencies.
// It falls back to synchronous processing if the worker pool cannot be created.
func CreateProcessingService(
	db service.TxExecutor,
	stockRepo catalog.StockRepository,
	logger *slog.Logger,
	cfg *config.Config,
) service.ProcessingService {
	applier := NewStockApplier(stockRepo, logger.With("component", "stock_applier"))
	baseService := service.NewProcessingService(db, applier, logger)

	workerPoolService, err := service.NewWorkerPoolProcessingService(
		baseService,
		service.WorkerPoolConfig{
			Size: cfg.WorkerPool.Size,
		},
		logger.With("component", "worker_pool"),
	)
	if err != nil {
		logger.Error("Failed to create worker pool service, falling back to base service", "error", err)
		return baseService
	}

	logger.Info("Created worker pool processing service", "pool_size", cfg.WorkerPool.Size)
	return workerPoolService
}
