package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/httpresp"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

type ItemHandler struct {
	db *gorm.DB
}

func NewItemHandler(db *gorm.DB) *ItemHandler {
	return &ItemHandler{db: db}
}

// --------- Requests ---------

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock"`
	ImageKey    string  `json:"image_key"`
}

type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	ImageKey    *string  `json:"image_key,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ItemHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("active = ?", true)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var items []models.InventoryItem
	if err := q.
		Order("id ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_items", "Could not list items.")
		return
	}

	httpresp.List(c, items)
}

func (h *ItemHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var item models.InventoryItem
	if err := h.db.Where("id = ? AND active = ?", id, true).First(&item).Error; err != nil {
		httperr.NotFound(c, "item_not_found", "Item not found.")
		return
	}

	httpresp.OK(c, item)
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	item := models.InventoryItem{
		Name:        req.Name,
		Description: req.Description,
		Category:    strings.ToLower(req.Category),
		Price:       req.Price,
		Stock:       req.Stock,
		ImageKey:    req.ImageKey,
		Active:      true,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_item", "Could not create item.")
		return
	}

	httpresp.Created(c, item)
}

func (h *ItemHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var item models.InventoryItem
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "item_not_found", "Item not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_item", "Could not load item.")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = strings.ToLower(*req.Category)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.ImageKey != nil {
		item.ImageKey = *req.ImageKey
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_item", "Could not update item.")
		return
	}

	httpresp.OK(c, item)
}
