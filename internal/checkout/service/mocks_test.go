package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
	"github.com/stretchr/testify/mock"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Lookup(ctx context.Context, itemID string) (*catalog.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Record(ctx context.Context, receipt *sale.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

type MockStock struct {
	mock.Mock
}

func (m *MockStock) Consume(ctx context.Context, saleID uuid.UUID, lines []sale.LineItem) error {
	args := m.Called(ctx, saleID, lines)
	return args.Error(0)
}

type MockDrawer struct {
	mock.Mock
}

func (m *MockDrawer) Credit(ctx context.Context, amount money.Money) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

type MockPrinter struct {
	mock.Mock
}

func (m *MockPrinter) Print(ctx context.Context, receipt *sale.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}
