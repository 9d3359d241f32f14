package handlers

import (
	"net/http"

	"stagelink/models"
	"stagelink/services/hotel"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HotelHandler exposes hotel profile management over HTTP.
type HotelHandler struct {
	svc    hotel.HotelService
	logger *zap.Logger
}

// NewHotelHandler creates a HotelHandler.
func NewHotelHandler(svc hotel.HotelService, logger *zap.Logger) *HotelHandler {
	return &HotelHandler{svc: svc, logger: logger}
}

// CreateHotel handles POST /api/hotels.
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req models.Hotel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.svc.CreateHotel(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("hotel creation failed", zap.String("name", req.Name), zap.Error(err))
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// GetHotel handles GET /api/hotels/:id.
func (h *HotelHandler) GetHotel(c *gin.Context) {
	found, err := h.svc.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, found)
}

// ListHotels handles GET /api/hotels.
func (h *HotelHandler) ListHotels(c *gin.Context) {
	hotels, err := h.svc.ListHotels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, hotels)
}
