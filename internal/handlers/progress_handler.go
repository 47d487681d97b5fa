package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/progress"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/httpresp"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ProgressHandler struct {
	db *gorm.DB
}

func NewProgressHandler(db *gorm.DB) *ProgressHandler {
	return &ProgressHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type ProgressTaskInput struct {
	Name      string `json:"name" binding:"required"`
	Completed bool   `json:"completed"`
}

type CreateProgressRequest struct {
	BookingID uint                `json:"booking_id" binding:"required"`
	Title     string              `json:"title" binding:"required"`
	Notes     string              `json:"notes"`
	Tasks     []ProgressTaskInput `json:"tasks"`
	Images    []string            `json:"images" binding:"required"`
}

type UpdateProgressRequest struct {
	Title *string `json:"title,omitempty"`
	Notes *string `json:"notes,omitempty"`

	// nil leaves tasks untouched; non-nil replaces the whole list
	Tasks *[]ProgressTaskInput `json:"tasks,omitempty"`

	// nil keeps the current set; non-nil must again be exactly five
	Images *[]string `json:"images,omitempty"`
}

// ======================================================
// CREATE (landscaper)
// ======================================================

func (h *ProgressHandler) Create(c *gin.Context) {
	landscaperID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := domain.ValidateImages(req.Images); err != nil {
		httperr.BadRequest(c, "invalid_image_count", "Exactly five images are required.")
		return
	}

	var booking models.Booking
	if err := h.db.
		Where("id = ? AND landscaper_id = ?", req.BookingID, landscaperID).
		First(&booking).Error; err != nil {

		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	tasks := make([]models.ProgressTask, 0, len(req.Tasks))
	for i, t := range req.Tasks {
		tasks = append(tasks, models.ProgressTask{
			Name:      t.Name,
			Completed: t.Completed,
			Position:  i,
		})
	}

	post := models.ProgressPost{
		BookingID:    booking.ID,
		CustomerID:   booking.CustomerID,
		LandscaperID: landscaperID,
		Title:        req.Title,
		Notes:        req.Notes,
		Tasks:        tasks,
		Percentage:   domain.CompletionPercentage(tasks),
		Images:       models.StringList(req.Images),
	}

	if err := h.db.Create(&post).Error; err != nil {
		httperr.Internal(c, "failed_to_create_progress", "Could not create progress post.")
		return
	}

	httpresp.Created(c, post)
}

// ======================================================
// LIST (both parties of the booking)
// ======================================================

func (h *ProgressHandler) ListByBooking(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	bookingID := c.Query("booking_id")
	if bookingID == "" {
		httperr.BadRequest(c, "missing_booking_id", "Booking id is required.")
		return
	}

	q := h.db.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("progress_tasks.position ASC")
		}).
		Where("booking_id = ?", bookingID)

	switch role {
	case middleware.RoleLandscaper:
		q = q.Where("landscaper_id = ?", userID)
	case middleware.RoleCustomer:
		q = q.Where("customer_id = ?", userID)
	}

	var posts []models.ProgressPost
	if err := q.Order("created_at ASC").Find(&posts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_progress", "Could not list progress posts.")
		return
	}

	httpresp.List(c, posts)
}

// ======================================================
// UPDATE (landscaper)
// ======================================================

func (h *ProgressHandler) Update(c *gin.Context) {
	landscaperID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var post models.ProgressPost
	if err := h.db.
		Preload("Tasks").
		Where("id = ? AND landscaper_id = ?", id, landscaperID).
		First(&post).Error; err != nil {

		httperr.NotFound(c, "progress_not_found", "Progress post not found.")
		return
	}

	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Images != nil {
		if err := domain.ValidateImages(*req.Images); err != nil {
			httperr.BadRequest(c, "invalid_image_count", "Exactly five images are required.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {

		if req.Title != nil {
			post.Title = *req.Title
		}
		if req.Notes != nil {
			post.Notes = *req.Notes
		}
		if req.Images != nil {
			post.Images = models.StringList(*req.Images)
		}

		if req.Tasks != nil {
			if err := tx.
				Where("progress_post_id = ?", post.ID).
				Delete(&models.ProgressTask{}).Error; err != nil {
				return err
			}

			tasks := make([]models.ProgressTask, 0, len(*req.Tasks))
			for i, t := range *req.Tasks {
				tasks = append(tasks, models.ProgressTask{
					ProgressPostID: post.ID,
					Name:           t.Name,
					Completed:      t.Completed,
					Position:       i,
				})
			}

			if len(tasks) > 0 {
				if err := tx.Create(&tasks).Error; err != nil {
					return err
				}
			}

			post.Tasks = tasks
		}

		// same derivation on create and update, one function
		post.Percentage = domain.CompletionPercentage(post.Tasks)

		return tx.Omit("Tasks").Save(&post).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_progress", "Could not update progress post.")
		return
	}

	httpresp.OK(c, post)
}

// ======================================================
// DELETE (landscaper)
// ======================================================

func (h *ProgressHandler) Delete(c *gin.Context) {
	landscaperID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var post models.ProgressPost
	if err := h.db.
		Where("id = ? AND landscaper_id = ?", id, landscaperID).
		First(&post).Error; err != nil {

		httperr.NotFound(c, "progress_not_found", "Progress post not found.")
		return
	}

	if err := h.db.Select("Tasks").Delete(&post).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_progress", "Could not delete progress post.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
