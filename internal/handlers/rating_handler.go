package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/httpresp"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

type RatingHandler struct {
	db *gorm.DB
}

func NewRatingHandler(db *gorm.DB) *RatingHandler {
	return &RatingHandler{db: db}
}

type CreateRatingRequest struct {
	LandscaperID uint   `json:"landscaper_id" binding:"required"`
	Score        int    `json:"score" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

// Create requires at least one booking between the pair. One rating per
// customer per landscaper.
func (h *RatingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Score must be between 1 and 5.")
		return
	}

	var bookings int64
	h.db.Model(&models.Booking{}).
		Where("customer_id = ? AND landscaper_id = ?", customerID, req.LandscaperID).
		Count(&bookings)
	if bookings == 0 {
		httperr.BadRequest(c, "no_booking_with_landscaper", "You can only rate landscapers you booked.")
		return
	}

	var existing int64
	h.db.Model(&models.Rating{}).
		Where("customer_id = ? AND landscaper_id = ?", customerID, req.LandscaperID).
		Count(&existing)
	if existing > 0 {
		httperr.Conflict(c, "already_rated", "You already rated this landscaper.")
		return
	}

	rating := models.Rating{
		CustomerID:   customerID,
		LandscaperID: req.LandscaperID,
		Score:        req.Score,
		Comment:      req.Comment,
	}

	if err := h.db.Create(&rating).Error; err != nil {
		httperr.Internal(c, "failed_to_create_rating", "Could not create rating.")
		return
	}

	httpresp.Created(c, rating)
}

func (h *RatingHandler) ListForLandscaper(c *gin.Context) {
	landscaperID := c.Param("id")

	var ratings []models.Rating
	if err := h.db.
		Where("landscaper_id = ?", landscaperID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_ratings", "Could not list ratings.")
		return
	}

	httpresp.List(c, ratings)
}

// Delete is an admin moderation action.
func (h *RatingHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var rating models.Rating
	if err := h.db.First(&rating, id).Error; err != nil {
		httperr.NotFound(c, "rating_not_found", "Rating not found.")
		return
	}

	if err := h.db.Delete(&rating).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_rating", "Could not delete rating.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
