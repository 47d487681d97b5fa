package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role == middleware.RoleLandscaper {
		var ls models.Landscaper
		if err := h.db.First(&ls, userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":          ls.ID,
				"name":        ls.Name,
				"email":       ls.Email,
				"phone":       ls.Phone,
				"specialties": ls.Specialties,
				"hourly_rate": ls.HourlyRate,
				"role":        middleware.RoleLandscaper,
			},
		})
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":      customer.ID,
			"name":    customer.Name,
			"email":   customer.Email,
			"phone":   customer.Phone,
			"address": customer.Address,
			"role":    customer.Role,
		},
	})
}
