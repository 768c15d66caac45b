package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewWorkerPoolProcessingService(t *testing.T) {
	t.Run("ValidSize", func(t *testing.T) {
		svc, err := NewWorkerPoolProcessingService(new(MockProcessingService), WorkerPoolConfig{Size: 4}, slog.Default())
		require.NoError(t, err)
		defer svc.Shutdown()

		assert.Equal(t, 4, svc.Capacity())
		assert.Equal(t, 0, svc.Running())
	})

	t.Run("NegativeSize", func(t *testing.T) {
		// ants treats a negative size as an unbounded pool
		svc, err := NewWorkerPoolProcessingService(new(MockProcessingService), WorkerPoolConfig{Size: -1}, slog.Default())
		require.NoError(t, err)
		svc.Shutdown()
	})
}

func TestWorkerPoolProcessingService_ProcessStockUpdate(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockProcessingService)
		expectedErr error
	}{
		{
			name: "Success",
			setupMocks: func(m *MockProcessingService) {
				m.On("ProcessStockUpdate", mock.Anything, mock.AnythingOfType("*shared.StockUpdate")).Return(nil).Once()
			},
		},
		{
			name: "BaseServiceError",
			setupMocks: func(m *MockProcessingService) {
				m.On("ProcessStockUpdate", mock.Anything, mock.Anything).Return(ErrUnprocessable).Once()
			},
			expectedErr: ErrUnprocessable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			base := new(MockProcessingService)
			tc.setupMocks(base)
			svc, err := NewWorkerPoolProcessingService(base, WorkerPoolConfig{Size: 2}, slog.Default())
			require.NoError(t, err)
			defer svc.Shutdown()

			err = svc.ProcessStockUpdate(context.Background(), newStockUpdate(shared.StockLine{ItemID: "abc123", Quantity: 1}))

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			base.AssertExpectations(t)
		})
	}
}

func TestWorkerPoolProcessingService_WorkerGetsCopy(t *testing.T) {
	base := new(MockProcessingService)
	update := newStockUpdate(shared.StockLine{ItemID: "abc123", Quantity: 2})

	var received *shared.StockUpdate
	base.On("ProcessStockUpdate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { received = args.Get(1).(*shared.StockUpdate) }).
		Return(nil).Once()

	svc, err := NewWorkerPoolProcessingService(base, WorkerPoolConfig{Size: 1}, slog.Default())
	require.NoError(t, err)
	defer svc.Shutdown()

	require.NoError(t, svc.ProcessStockUpdate(context.Background(), update))
	require.NotNil(t, received)
	assert.NotSame(t, update, received)
	assert.Equal(t, update.SaleID, received.SaleID)
	assert.Equal(t, update.Lines, received.Lines)
}

func TestWorkerPoolProcessingService_ContextCancelled(t *testing.T) {
	base := new(MockProcessingService)
	release := make(chan struct{})
	base.On("ProcessStockUpdate", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil)

	svc, err := NewWorkerPoolProcessingService(base, WorkerPoolConfig{Size: 1}, slog.Default())
	require.NoError(t, err)
	defer svc.Shutdown()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = svc.ProcessStockUpdate(ctx, newStockUpdate(shared.StockLine{ItemID: "abc123", Quantity: 1}))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestWorkerPoolProcessingService_Concurrent(t *testing.T) {
	base := new(MockProcessingService)
	base.On("ProcessStockUpdate", mock.Anything, mock.Anything).Return(nil)

	svc, err := NewWorkerPoolProcessingService(base, WorkerPoolConfig{Size: 3}, slog.Default())
	require.NoError(t, err)
	defer svc.Shutdown()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.ProcessStockUpdate(context.Background(), newStockUpdate(shared.StockLine{ItemID: "def456", Quantity: 1})))
		}()
	}
	wg.Wait()

	base.AssertNumberOfCalls(t, "ProcessStockUpdate", 20)
}
