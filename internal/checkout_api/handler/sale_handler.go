package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	checkout "github.com/innoscripta-checkout-register/internal/checkout/service"
	"github.com/innoscripta-checkout-register/internal/checkout_api/service"
	"github.com/innoscripta-checkout-register/internal/domain/catalog"
	"github.com/innoscripta-checkout-register/internal/domain/money"
)

// SaleHandler handles HTTP requests for the checkout's current sale
type SaleHandler struct {
	saleService service.SaleService
	logger      *slog.Logger
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(logger *slog.Logger, saleService service.SaleService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
		logger:      logger,
	}
}

// Start discards any unpaid sale and opens a new one
func (h *SaleHandler) Start(c *gin.Context) {
	saleID := h.saleService.StartSale(c.Request.Context())
	RespondCreated(c, SaleStartedResponse{SaleID: saleID.String()})
}

// AddItem enters an item into the current sale and returns the running totals
func (h *SaleHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	snapshot, err := h.saleService.AddItem(c.Request.Context(), strings.TrimSpace(req.ItemID), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveSale):
			RespondWithError(c, http.StatusConflict, CodeNoActiveSale, "Start a sale before entering items")
		case errors.Is(err, catalog.ErrItemNotFound{}):
			RespondWithError(c, http.StatusNotFound, CodeItemNotFound, err.Error())
		case errors.Is(err, checkout.ErrOperationFailed{}):
			h.logger.Error("Failed to enter item", "item_id", req.ItemID, "error", err)
			RespondWithError(c, http.StatusServiceUnavailable, CodeOperationFailed, "The item could not be entered, please try again")
		case errors.Is(err, service.ErrItemRejected):
			RespondWithError(c, http.StatusUnprocessableEntity, CodeItemRejected, err.Error())
		default:
			h.logger.Error("Unexpected error entering item", "item_id", req.ItemID, "error", err)
			RespondInternalError(c)
		}
		return
	}

	RespondOK(c, mapSnapshot(snapshot))
}

// Total returns the running total of the current sale
func (h *SaleHandler) Total(c *gin.Context) {
	total, err := h.saleService.Total(c.Request.Context())
	if err != nil {
		RespondWithError(c, http.StatusConflict, CodeNoActiveSale, "No sale is in progress")
		return
	}
	RespondOK(c, mapAmount(total))
}

// Pay settles the current sale with cash
func (h *SaleHandler) Pay(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = h.saleService.Currency()
	}
	tendered, err := money.Parse(req.Amount, currency)
	if err != nil {
		RespondBadRequest(c, "Invalid amount: "+err.Error())
		return
	}
	if tendered.IsNegative() {
		RespondBadRequest(c, "Payment amount cannot be negative")
		return
	}

	change, receipt, err := h.saleService.Pay(c.Request.Context(), tendered)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveSale):
			RespondWithError(c, http.StatusConflict, CodeNoActiveSale, "No sale is in progress")
		case errors.Is(err, service.ErrPaymentRejected):
			RespondWithError(c, http.StatusUnprocessableEntity, CodePaymentRejected, "Insufficient amount or wrong currency")
		default:
			h.logger.Error("Failed to take payment", "error", err)
			RespondInternalError(c)
		}
		return
	}

	RespondOK(c, PaymentResponse{
		Change:  mapAmount(change),
		Receipt: mapReceipt(receipt),
	})
}
