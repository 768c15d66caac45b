package handler

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/ledger"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/register"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) StartSale(ctx context.Context) uuid.UUID {
	args := m.Called(ctx)
	return args.Get(0).(uuid.UUID)
}

func (m *MockSaleService) AddItem(ctx context.Context, itemID string, quantity int) (*sale.Snapshot, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Snapshot), args.Error(1)
}

func (m *MockSaleService) Total(ctx context.Context) (money.Money, error) {
	args := m.Called(ctx)
	return args.Get(0).(money.Money), args.Error(1)
}

func (m *MockSaleService) Pay(ctx context.Context, tendered money.Money) (money.Money, *sale.Receipt, error) {
	args := m.Called(ctx, tendered)
	var receipt *sale.Receipt
	if args.Get(1) != nil {
		receipt = args.Get(1).(*sale.Receipt)
	}
	return args.Get(0).(money.Money), receipt, args.Error(2)
}

func (m *MockSaleService) Currency() string {
	args := m.Called()
	return args.String(0)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetSale(ctx context.Context, saleID uuid.UUID) (*ledger.Entry, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}

func (m *MockLedgerService) ListSales(ctx context.Context, from, to time.Time, page, perPage int) ([]*ledger.Entry, error) {
	args := m.Called(ctx, from, to, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Entry), args.Error(1)
}

type MockRegisterService struct {
	mock.Mock
}

func (m *MockRegisterService) Balance(ctx context.Context) (*register.Register, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*register.Register), args.Error(1)
}
