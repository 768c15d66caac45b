package components

import (
	"context"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockStockRepository mocks catalog.StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) RecordMovement(ctx context.Context, saleID uuid.UUID, itemID string, quantity int) (bool, error) {
	args := m.Called(ctx, saleID, itemID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockRepository) DecrementStock(ctx context.Context, itemID string, quantity int) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

func (m *MockStockRepository) WithTx(_ pgx.Tx) catalog.StockRepository {
	return m
}
