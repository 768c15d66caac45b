package consumer

import (
	"context"

	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockProcessingService mocks service.ProcessingService
type MockProcessingService struct {
	mock.Mock
}

func (m *MockProcessingService) ProcessStockUpdate(ctx context.Context, update *shared.StockUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

// MockDeadLetterPublisher mocks producers.DeadLetterPublisher
type MockDeadLetterPublisher struct {
	mock.Mock
}

func (m *MockDeadLetterPublisher) PublishToDLQ(ctx context.Context, key string, originalMessageValue []byte, reason string) error {
	args := m.Called(ctx, key, originalMessageValue, reason)
	return args.Error(0)
}

func (m *MockDeadLetterPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
