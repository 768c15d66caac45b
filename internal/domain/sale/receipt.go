package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/shopspring/decimal"
)

// ReceiptLine is a frozen copy of one line item
type ReceiptLine struct {
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice money.Money
	VATRate   decimal.Decimal
	LineTotal money.Money // including VAT
}

// Receipt is the immutable record of a paid sale
type Receipt struct {
	SaleID   uuid.UUID
	SaleTime time.Time // when the sale was started
	Lines    []ReceiptLine
	Total    money.Money
	VAT      money.Money
	Paid     money.Money
	Change   money.Money
}

// BuildReceipt snapshots a paid sale. Later changes to the sale's items are not reflected.
func BuildReceipt(s *Sale, paid, change money.Money) (*Receipt, error) {
	if s == nil || s.status != StatusPaid {
		return nil, ErrSaleNotPaid
	}

	lines := make([]ReceiptLine, 0, len(s.lines))
	for _, l := range s.lines {
		lines = append(lines, ReceiptLine{
			ItemID:    l.ItemID(),
			Name:      l.Item().Name,
			Quantity:  l.Quantity(),
			UnitPrice: l.Item().Price,
			VATRate:   l.Item().VATRate,
			LineTotal: l.TotalInclVAT(),
		})
	}

	return &Receipt{
		SaleID:   s.ID,
		SaleTime: s.StartedAt,
		Lines:    lines,
		Total:    s.totalInclVAT,
		VAT:      s.totalVAT,
		Paid:     paid,
		Change:   change,
	}, nil
}
