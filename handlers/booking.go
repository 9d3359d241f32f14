package handlers

import (
	"net/http"

	"stagelink/models"
	"stagelink/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking service over HTTP.
type BookingHandler struct {
	svc    booking.BookingService
	logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("booking creation failed", zap.String("hotelId", req.HotelID), zap.Error(err))
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, b)
}

// ListBookingsByHotel handles GET /api/bookings/hotel/:hotelId.
func (h *BookingHandler) ListBookingsByHotel(c *gin.Context) {
	bookings, err := h.svc.ListBookingsByHotel(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, bookings)
}

// ListBookingsByArtist handles GET /api/bookings/artist/:artistId.
func (h *BookingHandler) ListBookingsByArtist(c *gin.Context) {
	bookings, err := h.svc.ListBookingsByArtist(c.Request.Context(), c.Param("artistId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, bookings)
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.svc.UpdateBookingStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// CreateRating handles POST /api/bookings/ratings.
func (h *BookingHandler) CreateRating(c *gin.Context) {
	var req models.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	rating, err := h.svc.CreateRating(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, rating)
}

// ListRatingsForArtist handles GET /api/bookings/ratings/artist/:artistId.
// The artist-facing view only includes ratings flagged visible.
func (h *BookingHandler) ListRatingsForArtist(c *gin.Context) {
	visibleOnly := c.Query("visibleOnly") == "true"
	ratings, err := h.svc.ListRatingsForArtist(c.Request.Context(), c.Param("artistId"), visibleOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, ratings)
}
