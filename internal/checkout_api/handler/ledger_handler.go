package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/innoscripta-checkout-register/internal/checkout_api/service"
)

const defaultLedgerWindow = 24 * time.Hour

// LedgerHandler handles HTTP requests for recorded sales
type LedgerHandler struct {
	ledgerService service.LedgerService
	logger        *slog.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(logger *slog.Logger, ledgerService service.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// GetBySaleID returns the ledger entry of one paid sale, 404 if it was never recorded
func (h *LedgerHandler) GetBySaleID(c *gin.Context) {
	idParam := c.Param("sale_id")
	saleID, err := uuid.Parse(idParam)
	if err != nil {
		RespondBadRequest(c, "Invalid sale ID")
		return
	}

	entry, err := h.ledgerService.GetSale(c.Request.Context(), saleID)
	if err != nil {
		h.logger.Error("Failed to get ledger entry", "sale_id", idParam, "error", err)
		RespondInternalError(c)
		return
	}
	if entry == nil {
		RespondNotFound(c, "Sale not found in ledger")
		return
	}

	RespondOK(c, entry)
}

// List returns recorded sales in a time window, newest first. The window defaults to the last day.
func (h *LedgerHandler) List(c *gin.Context) {
	var params LedgerListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	if params.To.IsZero() {
		params.To = time.Now().UTC()
	}
	if params.From.IsZero() {
		params.From = params.To.Add(-defaultLedgerWindow)
	}
	if !params.From.Before(params.To) {
		RespondBadRequest(c, "from must be before to")
		return
	}

	entries, err := h.ledgerService.ListSales(c.Request.Context(), params.From, params.To, params.Page, params.PerPage)
	if err != nil {
		h.logger.Error("Failed to list ledger entries", "error", err)
		RespondInternalError(c)
		return
	}

	RespondWithPage(c, mapLedgerEntries(entries), params.Page, params.PerPage, len(entries))
}
