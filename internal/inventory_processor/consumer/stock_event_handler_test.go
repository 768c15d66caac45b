package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/innoscripta-checkout-register/internal/inventory_processor/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func encodeUpdate(t *testing.T, update shared.StockUpdate) []byte {
	t.Helper()
	value, err := json.Marshal(update)
	require.NoError(t, err)
	return value
}

func TestStockEventHandler_HandleMessage(t *testing.T) {
	saleID := uuid.New()
	valid := encodeUpdate(t, shared.StockUpdate{
		SaleID:        saleID,
		Lines:         []shared.StockLine{{ItemID: "abc123", Quantity: 3}},
		CorrelationID: "corr-7",
		Timestamp:     time.Now().UTC(),
	})
	key := []byte(saleID.String())

	testCases := []struct {
		name       string
		value      []byte
		withDLQ    bool
		setupMocks func(*MockProcessingService, *MockDeadLetterPublisher)
		expectErr  bool
	}{
		{
			name:    "Processed",
			value:   valid,
			withDLQ: true,
			setupMocks: func(p *MockProcessingService, _ *MockDeadLetterPublisher) {
				p.On("ProcessStockUpdate", mock.Anything, mock.MatchedBy(func(u *shared.StockUpdate) bool {
					return u.SaleID == saleID && u.CorrelationID == "corr-7" && len(u.Lines) == 1
				})).Return(nil).Once()
			},
		},
		{
			name:    "MalformedJSONDeadLettered",
			value:   []byte("{not json"),
			withDLQ: true,
			setupMocks: func(_ *MockProcessingService, d *MockDeadLetterPublisher) {
				d.On("PublishToDLQ", mock.Anything, saleID.String(), []byte("{not json"), mock.AnythingOfType("string")).Return(nil).Once()
			},
		},
		{
			name:    "UnprocessableDeadLettered",
			value:   valid,
			withDLQ: true,
			setupMocks: func(p *MockProcessingService, d *MockDeadLetterPublisher) {
				p.On("ProcessStockUpdate", mock.Anything, mock.Anything).
					Return(fmt.Errorf("%w: unknown item", service.ErrUnprocessable)).Once()
				d.On("PublishToDLQ", mock.Anything, saleID.String(), valid, mock.AnythingOfType("string")).Return(nil).Once()
			},
		},
		{
			name:    "TransientFailureRetried",
			value:   valid,
			withDLQ: true,
			setupMocks: func(p *MockProcessingService, _ *MockDeadLetterPublisher) {
				p.On("ProcessStockUpdate", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()
			},
			expectErr: true,
		},
		{
			name:    "DLQPublishFails",
			value:   []byte("garbage"),
			withDLQ: true,
			setupMocks: func(_ *MockProcessingService, d *MockDeadLetterPublisher) {
				d.On("PublishToDLQ", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			expectErr: true,
		},
		{
			name:       "NoDLQConfigured",
			value:      []byte("garbage"),
			setupMocks: func(*MockProcessingService, *MockDeadLetterPublisher) {},
			expectErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			processing := new(MockProcessingService)
			dlq := new(MockDeadLetterPublisher)
			tc.setupMocks(processing, dlq)

			handler := NewStockEventHandler(slog.Default(), processing, nil)
			if tc.withDLQ {
				handler = NewStockEventHandler(slog.Default(), processing, dlq)
			}

			err := handler.HandleMessage(context.Background(), key, tc.value)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			processing.AssertExpectations(t)
			dlq.AssertExpectations(t)
		})
	}
}
