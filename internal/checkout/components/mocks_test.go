package components

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/ledger"
	"github.com/innoscripta-checkout-register/internal/domain/register"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) Create(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepo) GetBySaleID(ctx context.Context, saleID uuid.UUID) (*ledger.Entry, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}

func (m *MockLedgerRepo) GetByTimeRange(ctx context.Context, start, end time.Time, limit, offset int) ([]*ledger.Entry, error) {
	args := m.Called(ctx, start, end, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Entry), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockRegisterRepo struct {
	mock.Mock
}

func (m *MockRegisterRepo) GetByID(ctx context.Context, id uuid.UUID) (*register.Register, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*register.Register), args.Error(1)
}

func (m *MockRegisterRepo) Update(ctx context.Context, reg *register.Register) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockRegisterRepo) LockForUpdate(ctx context.Context, id uuid.UUID) (*register.Register, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*register.Register), args.Error(1)
}

func (m *MockRegisterRepo) WithTx(tx pgx.Tx) register.Repository {
	args := m.Called(tx)
	return args.Get(0).(register.Repository)
}

// fakeTxRunner calls fn with a nil transaction and reports whether it would have committed
type fakeTxRunner struct {
	committed  bool
	rolledBack bool
	err        error
}

func (f *fakeTxRunner) ExecuteTx(_ context.Context, fn func(tx pgx.Tx) error) error {
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

type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) Lookup(ctx context.Context, itemID string) (*catalog.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}
