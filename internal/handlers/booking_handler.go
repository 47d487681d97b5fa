package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GreenvaleServices/landscape-platform/internal/config"
	"github.com/GreenvaleServices/landscape-platform/internal/dto"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/httpresp"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	ucBooking "github.com/GreenvaleServices/landscape-platform/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create    *ucBooking.CreateBooking
	setStatus *ucBooking.SetStatus
	list      *ucBooking.ListBookings
	delete    *ucBooking.DeleteBooking
	cfg       *config.Config
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	setStatus *ucBooking.SetStatus,
	list *ucBooking.ListBookings,
	del *ucBooking.DeleteBooking,
	cfg *config.Config,
) *BookingHandler {
	return &BookingHandler{
		create:    create,
		setStatus: setStatus,
		list:      list,
		delete:    del,
		cfg:       cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	LandscaperID uint   `json:"landscaper_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Slot         string `json:"slot" binding:"required"`

	SiteAddress string   `json:"site_address"`
	Notes       string   `json:"notes"`
	SiteImages  []string `json:"site_images"`
	SitePlanKey string   `json:"site_plan_key"`
}

type SetBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Force  bool   `json:"force"`
}

// ======================================================
// CREATE (customer)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking request.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID:   customerID,
		LandscaperID: req.LandscaperID,
		Date:         req.Date,
		Slot:         req.Slot,
		SiteAddress:  req.SiteAddress,
		Notes:        req.Notes,
		SiteImages:   req.SiteImages,
		SitePlanKey:  req.SitePlanKey,
		Timezone:     h.cfg.DefaultTimezone,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// STATUS (landscaper / admin)
// ======================================================

func (h *BookingHandler) SetStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	actorRole := c.MustGet(middleware.ContextUserRole).(string)

	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req SetBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	b, err := h.setStatus.Execute(c.Request.Context(), ucBooking.SetStatusInput{
		BookingID: bookingID,
		NewStatus: req.Status,
		ActorID:   actorID,
		ActorRole: actorRole,
		Force:     req.Force,
		Timezone:  h.cfg.DefaultTimezone,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	landscaperID, customerID := partyFilter(userID, role)

	bookings, err := h.list.ByDate(c.Request.Context(), landscaperID, customerID, dateStr, h.cfg.DefaultTimezone)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, dto.FromBookings(bookings))
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	landscaperID, customerID := partyFilter(userID, role)

	bookings, err := h.list.ByMonth(c.Request.Context(), landscaperID, customerID, year, month, h.cfg.DefaultTimezone)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":     year,
		"month":    month,
		"bookings": bookings,
	})
}

// ======================================================
// DELETE (admin)
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	actorRole := c.MustGet(middleware.ContextUserRole).(string)

	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), bookingID, actorID, actorRole); err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id), err
}

// admins see everything; the other roles only their own side
func partyFilter(userID uint, role string) (landscaperID uint, customerID uint) {
	switch role {
	case middleware.RoleLandscaper:
		return userID, 0
	case middleware.RoleCustomer:
		return 0, userID
	default:
		return 0, 0
	}
}

func writeBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "booking_error", "Could not process booking.")
		return
	}

	switch code {
	case "landscaper_not_found", "booking_not_found":
		httperr.NotFound(c, code, "Not found.")
	case "slot_unavailable":
		httperr.Conflict(c, code, "The requested slot is no longer available.")
	case "invalid_status_transition", "invalid_status":
		httperr.Conflict(c, code, "Illegal status change.")
	case "forbidden":
		httperr.Forbidden(c, code, "Not allowed.")
	default:
		httperr.BadRequest(c, code, "Invalid booking request.")
	}
}
