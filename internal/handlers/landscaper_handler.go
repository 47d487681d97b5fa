package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/httpresp"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

type LandscaperHandler struct {
	db *gorm.DB
}

func NewLandscaperHandler(db *gorm.DB) *LandscaperHandler {
	return &LandscaperHandler{db: db}
}

// --------- Requests ---------

type CreateLandscaperRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Phone       string  `json:"phone"`
	Specialties string  `json:"specialties"`
	HourlyRate  float64 `json:"hourly_rate"`
	Bio         string  `json:"bio"`
}

type UpdateLandscaperRequest struct {
	Name        *string  `json:"name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Specialties *string  `json:"specialties,omitempty"`
	HourlyRate  *float64 `json:"hourly_rate,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *LandscaperHandler) ListPublic(c *gin.Context) {
	specialty := strings.ToLower(strings.TrimSpace(c.Query("specialty")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("active = ?", true)

	if specialty != "" {
		q = q.Where("LOWER(specialties) LIKE ?", "%"+specialty+"%")
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(bio) LIKE ?", like, like)
	}

	var landscapers []models.Landscaper
	if err := q.
		Order("name ASC").
		Find(&landscapers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_landscapers", "Could not list landscapers.")
		return
	}

	httpresp.List(c, landscapers)
}

func (h *LandscaperHandler) GetPublic(c *gin.Context) {
	id := c.Param("id")

	var ls models.Landscaper
	if err := h.db.Where("id = ? AND active = ?", id, true).First(&ls).Error; err != nil {
		httperr.NotFound(c, "landscaper_not_found", "Landscaper not found.")
		return
	}

	var avg *float64
	h.db.Model(&models.Rating{}).
		Select("AVG(score)").
		Where("landscaper_id = ?", ls.ID).
		Scan(&avg)

	resp := gin.H{"landscaper": ls}
	if avg != nil {
		resp["average_rating"] = *avg
	}

	c.JSON(http.StatusOK, resp)
}

// ======================================================
// ADMIN: CREATE (accepted applications become accounts)
// ======================================================

func (h *LandscaperHandler) Create(c *gin.Context) {
	var req CreateLandscaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Landscaper{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email already in use.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	ls := models.Landscaper{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Specialties:  strings.ToLower(req.Specialties),
		HourlyRate:   req.HourlyRate,
		Bio:          req.Bio,
		Active:       true,
	}

	if err := h.db.Create(&ls).Error; err != nil {
		httperr.Internal(c, "failed_to_create_landscaper", "Could not create landscaper.")
		return
	}

	httpresp.Created(c, ls)
}

// ======================================================
// LANDSCAPER: OWN PROFILE
// ======================================================

func (h *LandscaperHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var ls models.Landscaper
	if err := h.db.First(&ls, userID).Error; err != nil {
		httperr.NotFound(c, "landscaper_not_found", "Landscaper not found.")
		return
	}

	var req UpdateLandscaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		ls.Name = *req.Name
	}
	if req.Phone != nil {
		ls.Phone = *req.Phone
	}
	if req.Specialties != nil {
		ls.Specialties = strings.ToLower(*req.Specialties)
	}
	if req.HourlyRate != nil {
		ls.HourlyRate = *req.HourlyRate
	}
	if req.Bio != nil {
		ls.Bio = *req.Bio
	}
	if req.Active != nil {
		ls.Active = *req.Active
	}

	if err := h.db.Save(&ls).Error; err != nil {
		httperr.Internal(c, "failed_to_update_landscaper", "Could not update landscaper.")
		return
	}

	httpresp.OK(c, ls)
}
