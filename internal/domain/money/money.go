// Package money provides an immutable, exact-decimal amount tagged with a currency code.
// All arithmetic between two amounts requires matching currencies.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrCurrencyMismatch      = errors.New("currency mismatch")
	ErrInvalidCurrencyFormat = errors.New("currency must be a 3-letter code")
)

// DisplayPlaces is the number of decimal places used when presenting an amount
const DisplayPlaces = 2

// Money is an amount of money in a single currency. The zero value has no currency
// and cannot take part in arithmetic with a real amount.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// New creates an amount in the given currency
func New(amount decimal.Decimal, currency string) Money {
	return Money{amount: amount, currency: strings.ToUpper(currency)}
}

// Zero returns a zero amount in the given currency
func Zero(currency string) Money {
	return New(decimal.Zero, currency)
}

// Parse creates an amount from its decimal string representation, e.g. "29.90"
func Parse(amount string, currency string) (Money, error) {
	if len(strings.TrimSpace(currency)) != 3 {
		return Money{}, ErrInvalidCurrencyFormat
	}
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return New(d, strings.TrimSpace(currency)), nil
}

// MustParse is like Parse but panics on invalid input. Intended for constants and tests.
func MustParse(amount string, currency string) Money {
	m, err := Parse(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the exact decimal value
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the ISO currency code
func (m Money) Currency() string {
	return m.currency
}

// Add returns m + other. Fails with ErrCurrencyMismatch if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns m - other. Fails with ErrCurrencyMismatch if the currencies differ.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Mul scales the amount by a decimal factor, e.g. a VAT rate
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// MulQuantity scales the amount by an item quantity
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), currency: m.currency}
}

// Cmp compares the numeric values: -1 if m < other, 0 if equal, +1 if m > other.
// Amounts in different currencies are not comparable.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.sameCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// LessThan reports whether m is strictly smaller than other in the same currency
func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Equal reports whether both value and currency match.
// Amounts in different currencies are never equal.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether the numeric value is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the numeric value is below zero
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// StringFixed renders the value rounded to two places without the currency
func (m Money) StringFixed() string {
	return m.amount.StringFixed(DisplayPlaces)
}

// String renders the amount for display, e.g. "31.69 SEK". Rounding is applied only here.
func (m Money) String() string {
	if m.currency == "" {
		return m.StringFixed()
	}
	return m.StringFixed() + " " + m.currency
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %q and %q", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
