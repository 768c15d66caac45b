package components

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/checkout/service"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
	"github.com/innoscripta-checkout-register/internal/domain/shared"
	"github.com/innoscripta-checkout-register/internal/platform/messaging/producers"
)

// StockPublisherImpl tells inventory which items a paid sale consumed
type StockPublisherImpl struct {
	publisher producers.MessagePublisher
	logger    *slog.Logger
}

// NewStockPublisher creates a new StockPublisherImpl
func NewStockPublisher(publisher producers.MessagePublisher, logger *slog.Logger) service.StockNotifier {
	return &StockPublisherImpl{
		publisher: publisher,
		logger:    logger,
	}
}

// Consume publishes one stock update per sale, keyed by sale id
func (p *StockPublisherImpl) Consume(ctx context.Context, saleID uuid.UUID, lines []sale.LineItem) error {
	if len(lines) == 0 {
		p.logger.Debug("Sale has no lines, skipping stock update", "sale_id", saleID.String())
		return nil
	}

	update := shared.StockUpdate{
		SaleID:        saleID,
		Lines:         make([]shared.StockLine, 0, len(lines)),
		CorrelationID: service.CorrelationIDFrom(ctx),
		Timestamp:     time.Now().UTC(),
	}
	for _, l := range lines {
		update.Lines = append(update.Lines, shared.StockLine{ItemID: l.ItemID(), Quantity: l.Quantity()})
	}
	if err := update.Validate(); err != nil {
		return fmt.Errorf("invalid stock update for sale %s: %w", saleID.String(), err)
	}

	if err := p.publisher.Publish(ctx, saleID.String(), update); err != nil {
		return fmt.Errorf("failed to publish stock update for sale %s: %w", saleID.String(), err)
	}

	p.logger.Info("Stock update published", "sale_id", saleID.String(), "lines", len(update.Lines))
	return nil
}
