package shared

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyStockUpdate   = errors.New("stock update has no lines")
	ErrInvalidStockAmount = errors.New("stock quantity must be positive")
)

// StockLine is one item consumed by a sale
type StockLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// StockUpdate defines a Kafka message telling inventory which items a paid sale consumed
type StockUpdate struct {
	SaleID        uuid.UUID   `json:"sale_id"`
	Lines         []StockLine `json:"lines"`
	CorrelationID string      `json:"correlation_id,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
}

// Validate checks the message before it is applied
func (u *StockUpdate) Validate() error {
	if len(u.Lines) == 0 {
		return ErrEmptyStockUpdate
	}
	for _, l := range u.Lines {
		if l.Quantity < 1 {
			return ErrInvalidStockAmount
		}
	}
	return nil
}
