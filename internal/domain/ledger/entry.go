package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Line is one receipt line as stored by accounting
type Line struct {
	ItemID    string `json:"item_id" bson:"item_id"`
	Name      string `json:"name" bson:"name"`
	Quantity  int    `json:"quantity" bson:"quantity"`
	UnitPrice string `json:"unit_price" bson:"unit_price"`
	VATRate   string `json:"vat_rate" bson:"vat_rate"`
	LineTotal string `json:"line_total" bson:"line_total"`
}

// Entry is the accounting record of a completed sale. Amounts are exact decimal strings.
type Entry struct {
	SaleID        uuid.UUID `json:"sale_id" bson:"sale_id"`
	Lines         []Line    `json:"lines" bson:"lines"`
	Total         string    `json:"total" bson:"total"`
	VAT           string    `json:"vat" bson:"vat"`
	Paid          string    `json:"paid" bson:"paid"`
	Change        string    `json:"change" bson:"change"`
	Currency      string    `json:"currency" bson:"currency"`
	CorrelationID string    `json:"correlation_id,omitempty" bson:"correlation_id,omitempty"`
	SoldAt        time.Time `json:"sold_at" bson:"sold_at"`
	RecordedAt    time.Time `json:"recorded_at" bson:"recorded_at"`
}
