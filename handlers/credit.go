package handlers

import (
	"context"
	"net/http"

	"stagelink/models"
	"stagelink/services/credit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreditHandler exposes the hotel-side credit ledger over HTTP. The use and
// release endpoints are called service-to-service by the booking and payment
// services, not by end users.
type CreditHandler struct {
	svc    credit.CreditService
	logger *zap.Logger
}

// NewCreditHandler creates a CreditHandler.
func NewCreditHandler(svc credit.CreditService, logger *zap.Logger) *CreditHandler {
	return &CreditHandler{svc: svc, logger: logger}
}

// GetCredits handles GET /api/hotels/:id/credits. The balance is returned
// bare, without the success envelope, so callers can decode it directly.
func (h *CreditHandler) GetCredits(c *gin.Context) {
	balance, err := h.svc.GetCredits(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// AddCredits handles POST /api/hotels/:id/credits/add.
func (h *CreditHandler) AddCredits(c *gin.Context) {
	h.mutate(c, "add", h.svc.AddCredits)
}

// UseCredits handles POST /api/hotels/:id/credits/use.
func (h *CreditHandler) UseCredits(c *gin.Context) {
	h.mutate(c, "use", h.svc.UseCredits)
}

// ReleaseCredits handles POST /api/hotels/:id/credits/release.
func (h *CreditHandler) ReleaseCredits(c *gin.Context) {
	h.mutate(c, "release", h.svc.ReleaseCredits)
}

func (h *CreditHandler) mutate(c *gin.Context, op string, fn func(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error)) {
	var req models.CreditAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	hotelID := c.Param("id")
	balance, err := fn(c.Request.Context(), hotelID, req.Amount)
	if err != nil {
		h.logger.Warn("credit mutation failed",
			zap.String("op", op),
			zap.String("hotelId", hotelID),
			zap.Int64("amount", req.Amount),
			zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}
