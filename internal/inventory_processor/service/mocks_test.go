package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockProcessingService mocks ProcessingService
type MockProcessingService struct {
	mock.Mock
}

func (m *MockProcessingService) ProcessStockUpdate(ctx context.Context, update *shared.StockUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

// MockStockApplier mocks StockApplier
type MockStockApplier struct {
	mock.Mock
}

func (m *MockStockApplier) ApplyLine(ctx context.Context, tx pgx.Tx, saleID uuid.UUID, line shared.StockLine) (bool, error) {
	args := m.Called(ctx, tx, saleID, line)
	return args.Bool(0), args.Error(1)
}

// fakeTxExecutor runs fn with a nil transaction and reports whether it committed
type fakeTxExecutor struct {
	err        error
	committed  bool
	rolledBack bool
}

func (f *fakeTxExecutor) ExecuteTx(_ context.Context, fn func(tx pgx.Tx) error) error {
	if f.err != nil {
		return f.err
	}
	if err := fn(nil); err != nil {
		f.rolledBack = true
		return err
	}
	f.committed = true
	return nil
}
