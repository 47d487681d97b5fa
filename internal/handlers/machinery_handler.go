package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/config"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/httpresp"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
	"github.com/GreenvaleServices/landscape-platform/internal/timezone"
)

type MachineryHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewMachineryHandler(db *gorm.DB, cfg *config.Config) *MachineryHandler {
	return &MachineryHandler{db: db, cfg: cfg}
}

// --------- Requests ---------

type CreateMachineryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	DailyRate   float64 `json:"daily_rate" binding:"required"`
	ImageKey    string  `json:"image_key"`
}

type UpdateMachineryRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	DailyRate   *float64 `json:"daily_rate,omitempty"`
	ImageKey    *string  `json:"image_key,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type CreateRentalRequest struct {
	MachineryID uint   `json:"machinery_id" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

type SetRentalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var rentalStatuses = map[string]bool{
	"requested": true,
	"active":    true,
	"returned":  true,
	"cancelled": true,
}

// ======================================================
// CATALOG
// ======================================================

func (h *MachineryHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	q := h.db.Where("active = ?", true)
	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var machines []models.Machinery
	if err := q.Order("id ASC").Find(&machines).Error; err != nil {
		httperr.Internal(c, "failed_to_list_machinery", "Could not list machinery.")
		return
	}

	httpresp.List(c, machines)
}

func (h *MachineryHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var m models.Machinery
	if err := h.db.Where("id = ? AND active = ?", id, true).First(&m).Error; err != nil {
		httperr.NotFound(c, "machinery_not_found", "Machinery not found.")
		return
	}

	httpresp.OK(c, m)
}

func (h *MachineryHandler) Create(c *gin.Context) {
	var req CreateMachineryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	m := models.Machinery{
		Name:        req.Name,
		Description: req.Description,
		Category:    strings.ToLower(req.Category),
		DailyRate:   req.DailyRate,
		ImageKey:    req.ImageKey,
		Active:      true,
	}

	if err := h.db.Create(&m).Error; err != nil {
		httperr.Internal(c, "failed_to_create_machinery", "Could not create machinery.")
		return
	}

	httpresp.Created(c, m)
}

func (h *MachineryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var m models.Machinery
	if err := h.db.First(&m, id).Error; err != nil {
		httperr.NotFound(c, "machinery_not_found", "Machinery not found.")
		return
	}

	var req UpdateMachineryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Category != nil {
		m.Category = strings.ToLower(*req.Category)
	}
	if req.DailyRate != nil {
		m.DailyRate = *req.DailyRate
	}
	if req.ImageKey != nil {
		m.ImageKey = *req.ImageKey
	}
	if req.Active != nil {
		m.Active = *req.Active
	}

	if err := h.db.Save(&m).Error; err != nil {
		httperr.Internal(c, "failed_to_update_machinery", "Could not update machinery.")
		return
	}

	httpresp.OK(c, m)
}

// ======================================================
// RENTALS
// ======================================================

// rentalDays counts calendar days between two day-normalized dates.
// Counting AddDate steps keeps DST transitions from shaving a day off
// the billed total.
func rentalDays(start, end time.Time) int {
	days := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

func (h *MachineryHandler) CreateRental(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var m models.Machinery
	if err := h.db.Where("id = ? AND active = ?", req.MachineryID, true).First(&m).Error; err != nil {
		httperr.NotFound(c, "machinery_not_found", "Machinery not found.")
		return
	}

	start, err1 := timezone.ParseDay(req.StartDate, h.cfg.DefaultTimezone)
	end, err2 := timezone.ParseDay(req.EndDate, h.cfg.DefaultTimezone)
	if err1 != nil || err2 != nil || !end.After(start) {
		httperr.BadRequest(c, "invalid_rental_period", "End date must be after start date.")
		return
	}

	days := rentalDays(start, end)

	rental := models.MachineryRental{
		CustomerID:  customerID,
		MachineryID: m.ID,
		StartDate:   start,
		EndDate:     end,
		Days:        days,
		TotalPrice:  float64(days) * m.DailyRate,
		Status:      "requested",
	}

	if err := h.db.Create(&rental).Error; err != nil {
		httperr.Internal(c, "failed_to_create_rental", "Could not create rental.")
		return
	}

	httpresp.Created(c, rental)
}

func (h *MachineryHandler) ListMyRentals(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var rentals []models.MachineryRental
	if err := h.db.
		Preload("Machinery").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rentals).Error; err != nil {

		httperr.Internal(c, "failed_to_list_rentals", "Could not list rentals.")
		return
	}

	httpresp.List(c, rentals)
}

func (h *MachineryHandler) SetRentalStatus(c *gin.Context) {
	id := c.Param("id")

	var req SetRentalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !rentalStatuses[req.Status] {
		httperr.BadRequest(c, "invalid_status", "Unknown rental status.")
		return
	}

	var rental models.MachineryRental
	if err := h.db.First(&rental, id).Error; err != nil {
		httperr.NotFound(c, "rental_not_found", "Rental not found.")
		return
	}

	rental.Status = req.Status
	if err := h.db.Save(&rental).Error; err != nil {
		httperr.Internal(c, "failed_to_update_rental", "Could not update rental.")
		return
	}

	httpresp.OK(c, rental)
}
