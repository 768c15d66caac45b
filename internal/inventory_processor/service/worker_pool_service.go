package service

import (
	"context"
	"log/slog"

	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/panjf2000/ants/v2"
)

// WorkerPoolProcessingService runs a ProcessingService on a bounded goroutine pool
type WorkerPoolProcessingService struct {
	baseService ProcessingService
	pool        *ants.Pool
	logger      *slog.Logger
}

type WorkerPoolConfig struct {
	Size int
}

func NewWorkerPoolProcessingService(
	baseService ProcessingService,
	config WorkerPoolConfig,
	logger *slog.Logger,
) (*WorkerPoolProcessingService, error) {
	pool, err := ants.NewPool(config.Size)
	if err != nil {
		return nil, err
	}

	return &WorkerPoolProcessingService{
		baseService: baseService,
		pool:        pool,
		logger:      logger,
	}, nil
}

// ProcessStockUpdate submits the update to the pool and waits for its result
func (s *WorkerPoolProcessingService) ProcessStockUpdate(ctx context.Context, update *shared.StockUpdate) error {
	resultChan := make(chan error, 1)

	// the worker owns its own copy
	updateCopy := *update
	updateCopy.Lines = append([]shared.StockLine(nil), update.Lines...)

	err := s.pool.Submit(func() {
		resultChan <- s.baseService.ProcessStockUpdate(ctx, &updateCopy)
	})
	if err != nil {
		s.logger.Error("Failed to submit stock update to worker pool",
			"sale_id", update.SaleID.String(),
			"error", err,
		)
		return err
	}

	select {
	case err := <-resultChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown releases the pool's workers.
func (s *WorkerPoolProcessingService) Shutdown() {
	s.logger.Info("Shutting down worker pool", "running_workers", s.pool.Running())
	s.pool.Release()
}

// Running returns the number of running workers in the pool.
func (s *WorkerPoolProcessingService) Running() int {
	return s.pool.Running()
}

// Capacity returns the capacity of the worker pool.
func (s *WorkerPoolProcessingService) Capacity() int {
	return s.pool.Cap()
}
