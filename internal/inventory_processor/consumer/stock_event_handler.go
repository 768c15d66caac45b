package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/innoscripta-checkout-register/internal/inventory_processor/service"
	"github.com/innoscripta-checkout-register/internal/platform/messaging/producers"
)

// StockEventHandler handles stock update messages from Kafka
type StockEventHandler struct {
	processingService service.ProcessingService
	dlq               producers.DeadLetterPublisher
	logger            *slog.Logger
}

// NewStockEventHandler creates a new handler. dlq may be nil.
func NewStockEventHandler(
	logger *slog.Logger,
	processingService service.ProcessingService,
	dlq producers.DeadLetterPublisher,
) *StockEventHandler {
	return &StockEventHandler{
		processingService: processingService,
		dlq:               dlq,
		logger:            logger,
	}
}

// HandleMessage returns nil when the offset may be committed
func (h *StockEventHandler) HandleMessage(ctx context.Context, key []byte, value []byte) error {
	var update shared.StockUpdate
	if err := json.Unmarshal(value, &update); err != nil {
		h.logger.Error("Failed to unmarshal stock update", "error", err, "message_key", string(key))
		return h.deadLetter(ctx, key, value, "unmarshal: "+err.Error(), err)
	}

	logger := h.logger
	if update.CorrelationID != "" {
		logger = h.logger.With("correlation_id", update.CorrelationID)
	}
	logger.Info("Received stock update", "sale_id", update.SaleID.String(), "lines", len(update.Lines))

	if err := h.processingService.ProcessStockUpdate(ctx, &update); err != nil {
		if errors.Is(err, service.ErrUnprocessable) {
			return h.deadLetter(ctx, key, value, err.Error(), err)
		}
		logger.Error("Failed to process stock update", "sale_id", update.SaleID.String(), "error", err)
		return fmt.Errorf("processing stock update for sale %s failed: %w", update.SaleID.String(), err)
	}
	return nil
}

// deadLetter parks a message that will never succeed. If the DLQ is unavailable the
// original error is returned so the message is retried.
func (h *StockEventHandler) deadLetter(ctx context.Context, key, value []byte, reason string, cause error) error {
	if h.dlq == nil {
		return fmt.Errorf("no dead letter queue for unprocessable message: %w", cause)
	}
	if err := h.dlq.PublishToDLQ(ctx, string(key), value, reason); err != nil {
		h.logger.Error("Failed to publish message to DLQ",
			"dlq_error", err,
			"original_error", cause,
			"message_key", string(key),
		)
		return fmt.Errorf("failed to dead-letter message: %w", cause)
	}
	h.logger.Info("Published unprocessable message to DLQ", "message_key", string(key), "reason", reason)
	return nil
}
