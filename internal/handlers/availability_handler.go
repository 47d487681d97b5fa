package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/config"
	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/booking"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/httpresp"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	"github.com/GreenvaleServices/landscape-platform/internal/timezone"
	ucAvailability "github.com/GreenvaleServices/landscape-platform/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	upsert *ucAvailability.Upsert
	remove *ucAvailability.Remove
	repo   domain.Repository
	cfg    *config.Config
}

func NewAvailabilityHandler(
	upsert *ucAvailability.Upsert,
	remove *ucAvailability.Remove,
	repo domain.Repository,
	cfg *config.Config,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		upsert: upsert,
		remove: remove,
		repo:   repo,
		cfg:    cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertAvailabilityRequest struct {
	Date  string   `json:"date" binding:"required"`
	Slots []string `json:"slots" binding:"required"`
}

// ======================================================
// LANDSCAPER
// ======================================================

func (h *AvailabilityHandler) Upsert(c *gin.Context) {
	landscaperID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date and slots are required.")
		return
	}

	day, err := h.upsert.Execute(c.Request.Context(), landscaperID, req.Date, req.Slots, h.cfg.DefaultTimezone)
	if err != nil {
		writeAvailabilityError(c, err)
		return
	}

	httpresp.OK(c, day)
}

func (h *AvailabilityHandler) Remove(c *gin.Context) {
	landscaperID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")

	if err := h.remove.Execute(c.Request.Context(), landscaperID, dateStr, h.cfg.DefaultTimezone); err != nil {
		writeAvailabilityError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

func (h *AvailabilityHandler) ListMine(c *gin.Context) {
	landscaperID := c.MustGet(middleware.ContextUserID).(uint)

	days, err := h.repo.ListAvailability(c.Request.Context(), landscaperID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Could not list availability.")
		return
	}

	httpresp.List(c, days)
}

// ======================================================
// PUBLIC (read side for booking)
// ======================================================

func (h *AvailabilityHandler) ListPublic(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_landscaper_id", "Invalid landscaper id.")
		return
	}

	if _, err := h.repo.GetLandscaperByID(c.Request.Context(), uint(id)); err != nil {
		httperr.NotFound(c, "landscaper_not_found", "Landscaper not found.")
		return
	}

	dateStr := c.Query("date")
	if dateStr != "" {
		day, perr := timezone.ParseDay(dateStr, h.cfg.DefaultTimezone)
		if perr != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}

		entry, gerr := h.repo.GetAvailabilityDay(c.Request.Context(), uint(id), day)
		if gerr != nil {
			if !errors.Is(gerr, gorm.ErrRecordNotFound) {
				httperr.Internal(c, "failed_to_list_availability", "Could not list availability.")
				return
			}
			// no ledger entry means no slots, not an error
			c.JSON(200, gin.H{"date": dateStr, "slots": []string{}})
			return
		}

		c.JSON(200, gin.H{"date": dateStr, "slots": entry.Slots})
		return
	}

	days, err := h.repo.ListAvailability(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Could not list availability.")
		return
	}

	httpresp.List(c, days)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeAvailabilityError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "landscaper_not_found"):
		httperr.NotFound(c, "landscaper_not_found", "Landscaper not found.")
	case httperr.IsBusiness(err, "missing_date_or_slots"),
		httperr.IsBusiness(err, "missing_date"),
		httperr.IsBusiness(err, "invalid_date"):
		code, _ := httperr.BusinessCode(err)
		httperr.BadRequest(c, code, "Invalid availability request.")
	default:
		httperr.Internal(c, "availability_error", "Could not update availability.")
	}
}
