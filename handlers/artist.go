package handlers

import (
	"net/http"

	"stagelink/models"
	"stagelink/services/artist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArtistHandler exposes artist profiles and their denormalized aggregates
// over HTTP. The stats and rating patches are service-to-service endpoints
// driven by the booking service.
type ArtistHandler struct {
	svc    artist.ArtistService
	logger *zap.Logger
}

// NewArtistHandler creates an ArtistHandler.
func NewArtistHandler(svc artist.ArtistService, logger *zap.Logger) *ArtistHandler {
	return &ArtistHandler{svc: svc, logger: logger}
}

// CreateArtist handles POST /api/artists.
func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var req models.Artist
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.svc.CreateArtist(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// GetArtist handles GET /api/artists/:id.
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	found, err := h.svc.GetArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, found)
}

// ListArtists handles GET /api/artists.
func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.svc.ListArtists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, artists)
}

// IncrementStats handles PATCH /api/artists/:id/stats.
func (h *ArtistHandler) IncrementStats(c *gin.Context) {
	var req models.ArtistStatsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.svc.IncrementStats(c.Request.Context(), c.Param("id"), req); err != nil {
		h.logger.Warn("artist stats update failed", zap.String("artistId", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"updated": true})
}

// SetAverageRating handles PATCH /api/artists/:id/rating.
func (h *ArtistHandler) SetAverageRating(c *gin.Context) {
	var req models.ArtistRatingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.svc.SetAverageRating(c.Request.Context(), c.Param("id"), req.AverageRating); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"updated": true})
}
