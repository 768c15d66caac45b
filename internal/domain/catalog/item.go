package catalog

import (
	"errors"
	"strings"

	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrEmptyItemID     = errors.New("item id cannot be empty")
	ErrEmptyItemName   = errors.New("item name cannot be empty")
	ErrNegativePrice   = errors.New("item price cannot be negative")
	ErrInvalidVATRate  = errors.New("vat rate must be between 0 and 1")
	ErrMissingCurrency = errors.New("item price must carry a currency")
)

// Item is a catalog entry as returned by the catalog lookup. Items are immutable once built.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       money.Money     `json:"-"`
	VATRate     decimal.Decimal `json:"vat_rate"` // fraction, e.g. 0.06
}

// NewItem validates and creates a catalog item
func NewItem(id, name, description string, price money.Money, vatRate decimal.Decimal) (*Item, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyItemID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyItemName
	}
	if price.Currency() == "" {
		return nil, ErrMissingCurrency
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if vatRate.IsNegative() || vatRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidVATRate
	}

	return &Item{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		VATRate:     vatRate,
	}, nil
}

// VATPerUnit is the VAT charged on a single unit
func (i *Item) VATPerUnit() money.Money {
	return i.Price.Mul(i.VATRate)
}

// PriceInclVAT is the unit price including VAT
func (i *Item) PriceInclVAT() money.Money {
	return i.Price.Mul(decimal.NewFromInt(1).Add(i.VATRate))
}
