// Package cli implements the interactive text UI of a checkout counter.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/innoscripta-checkout-register/internal/checkout/service"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
	"github.com/shopspring/decimal"
)

const (
	separator   = "------------------------------------"
	doneCommand = "done"
)

// ErrInputClosed is returned when input ends before the sale is paid
var ErrInputClosed = errors.New("input closed before the sale was completed")

// View drives one sale from the terminal
type View struct {
	checkout service.Checkout
	in       *bufio.Scanner
	out      io.Writer
	logger   *slog.Logger
}

// NewView creates a view reading commands from in and writing prompts to out
func NewView(checkout service.Checkout, in io.Reader, out io.Writer, logger *slog.Logger) *View {
	return &View{
		checkout: checkout,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
	}
}

// RunSale starts a sale, reads items until "done", then takes payment
func (v *View) RunSale(ctx context.Context) error {
	saleID := v.checkout.StartSale()
	v.logger.Info("Text UI sale started", "sale_id", saleID.String())
	v.println("New sale started.")
	v.println(separator)

	if err := v.enterItems(ctx); err != nil {
		return err
	}

	v.println(separator)
	v.println("Ending sale...")
	total, ok := v.checkout.EndSale()
	if !ok {
		v.println("Error: No sale active or could not calculate total.")
		return nil
	}
	v.printf("Total cost (incl VAT): %s\n", total.String())
	v.println(separator)

	tendered, err := v.readPayment()
	if err != nil {
		return err
	}
	v.printf("Customer pays: %s\n", tendered.String())

	change, ok := v.checkout.EnterPayment(ctx, tendered)
	if ok {
		v.printf("Change to give the customer: %s\n", change.String())
	} else {
		v.println("Payment failed: Insufficient amount or other error.")
	}
	v.println(separator)
	v.println("Sale complete.")
	return nil
}

func (v *View) enterItems(ctx context.Context) error {
	for {
		itemID, ok := v.prompt("Enter item ID (or 'done' to finish adding items): ")
		if !ok {
			return ErrInputClosed
		}
		if strings.EqualFold(itemID, doneCommand) {
			return nil
		}

		quantity, err := v.readQuantity(itemID)
		if err != nil {
			return err
		}

		snapshot, err := v.checkout.EnterItem(ctx, itemID, quantity)
		switch {
		case errors.Is(err, catalog.ErrItemNotFound{}):
			v.printf("Item not found: %v\n\n", err)
		case err != nil:
			v.println("An error occurred, please try again. If the problem persists, contact support.")
			v.println("")
			v.logger.Error("Failed to enter item", "item_id", itemID, "error", err)
		case snapshot != nil:
			v.println("--- Item Added/Updated ---")
			v.printSnapshot(snapshot)
		}
	}
}

func (v *View) readQuantity(itemID string) (int, error) {
	for {
		text, ok := v.prompt(fmt.Sprintf("Enter quantity for item '%s': ", itemID))
		if !ok {
			return 0, ErrInputClosed
		}
		quantity, err := strconv.Atoi(text)
		if err != nil {
			v.println("Invalid quantity format. Please enter a number.")
			continue
		}
		if quantity <= 0 {
			v.println("Quantity must be a positive integer. Please try again.")
			continue
		}
		return quantity, nil
	}
}

func (v *View) readPayment() (money.Money, error) {
	for {
		text, ok := v.prompt("Enter amount paid by customer: ")
		if !ok {
			return money.Money{}, ErrInputClosed
		}
		amount, err := decimal.NewFromString(text)
		if err != nil {
			v.println("Invalid amount format. Please enter a number (e.g., 100 or 75.50).")
			continue
		}
		if amount.IsNegative() {
			v.println("Payment amount cannot be negative.")
			continue
		}
		return money.New(amount, v.checkout.Currency()), nil
	}
}

func (v *View) printSnapshot(s *sale.Snapshot) {
	item := s.LastItem
	v.printf("Last Item: %s (ID: %s)\n", item.Name, item.ID)
	v.printf("  Cost: %s\n", item.Price.String())
	v.printf("  VAT: %s%%\n", item.VATRate.Shift(2).String())
	v.printf("  Description: %s\n", item.Description)
	v.printf("Running Total (incl VAT): %s\n", s.RunningTotal.String())
	v.printf("Current Total VAT: %s\n", s.RunningVAT.String())
	v.println("")
}

// prompt writes label and returns the next trimmed input line
func (v *View) prompt(label string) (string, bool) {
	fmt.Fprint(v.out, label)
	if !v.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(v.in.Text()), true
}

func (v *View) println(line string) {
	fmt.Fprintln(v.out, line)
}

func (v *View) printf(format string, args ...any) {
	fmt.Fprintf(v.out, format, args...)
}
