package handlers

import (
	"net/http"

	"stagelink/models"
	"stagelink/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes credit package purchases over HTTP.
type PaymentHandler struct {
	svc    payment.PaymentService
	logger *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, logger: logger}
}

// ListPackages handles GET /api/payments/packages.
func (h *PaymentHandler) ListPackages(c *gin.Context) {
	respondData(c, http.StatusOK, h.svc.ListPackages())
}

// Checkout handles POST /api/payments/checkout.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.svc.Checkout(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("checkout failed", zap.String("hotelId", req.HotelID), zap.Error(err))
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

// Confirm handles POST /api/payments/confirm.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req models.PaymentConfirmation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	balance, err := h.svc.Confirm(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("payment confirmation failed",
			zap.String("paymentIntentId", req.PaymentIntentID), zap.Error(err))
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, balance)
}
