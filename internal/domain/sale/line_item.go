package sale

import (
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/money"
)

// LineItem is one catalog item on a sale together with how many units were scanned
type LineItem struct {
	item     *catalog.Item
	quantity int
}

// NewLineItem creates a line for the item. Quantity must be at least 1.
func NewLineItem(item *catalog.Item, quantity int) (*LineItem, error) {
	if item == nil {
		return nil, ErrNilItem
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &LineItem{item: item, quantity: quantity}, nil
}

// Item returns the catalog item on this line
func (l LineItem) Item() *catalog.Item {
	return l.item
}

// ItemID is a shorthand for Item().ID
func (l LineItem) ItemID() string {
	return l.item.ID
}

// Quantity returns the number of units on the line
func (l LineItem) Quantity() int {
	return l.quantity
}

// IncreaseQuantity adds delta units to the line
func (l *LineItem) IncreaseQuantity(delta int) error {
	if delta < 1 {
		return ErrInvalidQuantity
	}
	l.quantity += delta
	return nil
}

// TotalPrice is unit price times quantity, excluding VAT
func (l LineItem) TotalPrice() money.Money {
	return l.item.Price.MulQuantity(l.quantity)
}

// TotalVAT is the VAT for all units on the line
func (l LineItem) TotalVAT() money.Money {
	return l.item.VATPerUnit().MulQuantity(l.quantity)
}

// TotalInclVAT is the line amount the customer pays
func (l LineItem) TotalInclVAT() money.Money {
	return l.item.PriceInclVAT().MulQuantity(l.quantity)
}
