package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/audit"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/httpresp"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

type ApplicationHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewApplicationHandler(db *gorm.DB, auditD *audit.Dispatcher) *ApplicationHandler {
	return &ApplicationHandler{db: db, audit: auditD}
}

// --------- Requests ---------

type CreateApplicationRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	Message   string `json:"message"`
	ResumeKey string `json:"resume_key"`
}

type SetApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var applicationStatuses = map[string]bool{
	"received":  true,
	"reviewing": true,
	"accepted":  true,
	"rejected":  true,
}

// ======================================================
// PUBLIC: SUBMIT
// ======================================================

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	app := models.EmployeeApplication{
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Message:   req.Message,
		ResumeKey: req.ResumeKey,
		Status:    "received",
	}

	if err := h.db.Create(&app).Error; err != nil {
		httperr.Internal(c, "failed_to_create_application", "Could not submit application.")
		return
	}

	httpresp.Created(c, app)
}

// ======================================================
// ADMIN: LIST / REVIEW
// ======================================================

func (h *ApplicationHandler) List(c *gin.Context) {
	status := c.Query("status")

	q := h.db.Model(&models.EmployeeApplication{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var apps []models.EmployeeApplication
	if err := q.Order("created_at DESC").Find(&apps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_applications", "Could not list applications.")
		return
	}

	httpresp.List(c, apps)
}

func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req SetApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !applicationStatuses[req.Status] {
		httperr.BadRequest(c, "invalid_status", "Unknown application status.")
		return
	}

	var app models.EmployeeApplication
	if err := h.db.First(&app, id).Error; err != nil {
		httperr.NotFound(c, "application_not_found", "Application not found.")
		return
	}

	app.Status = req.Status
	if err := h.db.Save(&app).Error; err != nil {
		httperr.Internal(c, "failed_to_update_application", "Could not update application.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorRole: middleware.RoleAdmin,
		Action:    "application_" + req.Status,
		Entity:    "employee_application",
		EntityID:  &app.ID,
	})

	httpresp.OK(c, app)
}
