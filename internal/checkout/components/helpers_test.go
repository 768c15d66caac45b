package components

import (
	"testing"

	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// paidSale builds a paid sale: three oatmeal and one chocolate, paid with 200 SEK
func paidSale(t *testing.T) *sale.Sale {
	t.Helper()
	oatmeal, err := catalog.NewItem("abc123", "BigWheel Oatmeal", "", money.MustParse("29.90", "SEK"), decimal.RequireFromString("0.06"))
	require.NoError(t, err)
	chocolate, err := catalog.NewItem("ghi789", "Luxury Chocolate", "", money.MustParse("50.00", "SEK"), decimal.RequireFromString("0.12"))
	require.NoError(t, err)

	s := sale.NewSale("SEK", nil)
	_, err = s.AddItem(oatmeal, 3)
	require.NoError(t, err)
	_, err = s.AddItem(chocolate, 1)
	require.NoError(t, err)
	_, err = s.Pay(money.MustParse("200", "SEK"))
	require.NoError(t, err)
	return s
}
