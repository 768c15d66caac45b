package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/innoscripta-checkout-register/internal/checkout_api/service"
)

// RegisterHandler exposes the cash drawer
type RegisterHandler struct {
	registerService service.RegisterService
	logger          *slog.Logger
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(logger *slog.Logger, registerService service.RegisterService) *RegisterHandler {
	return &RegisterHandler{
		registerService: registerService,
		logger:          logger,
	}
}

// Get returns the drawer balance
func (h *RegisterHandler) Get(c *gin.Context) {
	reg, err := h.registerService.Balance(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to read register", "error", err)
		RespondInternalError(c)
		return
	}
	RespondOK(c, mapRegister(reg))
}
