package handler

import (
	"time"

	"github.com/innoscripta-checkout-register/internal/domain/ledger"
	"github.com/innoscripta-checkout-register/internal/domain/money"
	"github.com/innoscripta-checkout-register/internal/domain/register"
	"github.com/innoscripta-checkout-register/internal/domain/sale"
)

// AddItemRequest represents an item scanned into the current sale
type AddItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// PaymentRequest represents cash tendered by the customer. Amount is a decimal string.
type PaymentRequest struct {
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

// AmountResponse is an exact amount with its display form
type AmountResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Display  string `json:"display"`
}

// SaleStartedResponse represents a newly started sale
type SaleStartedResponse struct {
	SaleID string `json:"sale_id"`
}

// ItemResponse represents a catalog item in API responses
type ItemResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       AmountResponse `json:"price"`
	VATRate     string         `json:"vat_rate"`
}

// SnapshotResponse is the state of the sale after an item was entered
type SnapshotResponse struct {
	LastItem     ItemResponse   `json:"last_item"`
	Quantity     int            `json:"quantity"`
	RunningTotal AmountResponse `json:"running_total"`
	RunningVAT   AmountResponse `json:"running_vat"`
}

// ReceiptLineResponse represents one receipt line
type ReceiptLineResponse struct {
	ItemID    string         `json:"item_id"`
	Name      string         `json:"name"`
	Quantity  int            `json:"quantity"`
	UnitPrice AmountResponse `json:"unit_price"`
	VATRate   string         `json:"vat_rate"`
	LineTotal AmountResponse `json:"line_total"`
}

// ReceiptResponse represents a paid sale's receipt
type ReceiptResponse struct {
	SaleID   string                `json:"sale_id"`
	SaleTime string                `json:"sale_time"`
	Lines    []ReceiptLineResponse `json:"lines"`
	Total    AmountResponse        `json:"total"`
	VAT      AmountResponse        `json:"vat"`
	Paid     AmountResponse        `json:"paid"`
	Change   AmountResponse        `json:"change"`
}

// PaymentResponse is returned for an accepted payment
type PaymentResponse struct {
	Change  AmountResponse   `json:"change"`
	Receipt *ReceiptResponse `json:"receipt,omitempty"`
}

// RegisterResponse represents the cash drawer
type RegisterResponse struct {
	ID        string         `json:"id"`
	Balance   AmountResponse `json:"balance"`
	Version   int            `json:"version"`
	UpdatedAt string         `json:"updated_at"`
}

// LedgerListParams selects a page of recorded sales
type LedgerListParams struct {
	From    time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To      time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page    int       `form:"page,default=1" binding:"min=1"`
	PerPage int       `form:"per_page,default=20" binding:"min=1,max=100"`
}

func mapAmount(m money.Money) AmountResponse {
	return AmountResponse{
		Amount:   m.Amount().String(),
		Currency: m.Currency(),
		Display:  m.String(),
	}
}

func mapSnapshot(s *sale.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		LastItem: ItemResponse{
			ID:          s.LastItem.ID,
			Name:        s.LastItem.Name,
			Description: s.LastItem.Description,
			Price:       mapAmount(s.LastItem.Price),
			VATRate:     s.LastItem.VATRate.String(),
		},
		Quantity:     s.Quantity,
		RunningTotal: mapAmount(s.RunningTotal),
		RunningVAT:   mapAmount(s.RunningVAT),
	}
}

func mapReceipt(r *sale.Receipt) *ReceiptResponse {
	if r == nil {
		return nil
	}
	lines := make([]ReceiptLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, ReceiptLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: mapAmount(l.UnitPrice),
			VATRate:   l.VATRate.String(),
			LineTotal: mapAmount(l.LineTotal),
		})
	}
	return &ReceiptResponse{
		SaleID:   r.SaleID.String(),
		SaleTime: r.SaleTime.Format(time.RFC3339),
		Lines:    lines,
		Total:    mapAmount(r.Total),
		VAT:      mapAmount(r.VAT),
		Paid:     mapAmount(r.Paid),
		Change:   mapAmount(r.Change),
	}
}

func mapRegister(r *register.Register) RegisterResponse {
	return RegisterResponse{
		ID:        r.ID.String(),
		Balance:   mapAmount(r.Balance),
		Version:   r.Version,
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

// ledger entries are already in wire form
func mapLedgerEntries(entries []*ledger.Entry) []*ledger.Entry {
	if entries == nil {
		return []*ledger.Entry{}
	}
	return entries
}
