package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/httpresp"
	"github.com/GreenvaleServices/landscape-platform/internal/middleware"
	ucCart "github.com/GreenvaleServices/landscape-platform/internal/usecase/cart"
)

type CartHandler struct {
	svc *ucCart.Service
}

func NewCartHandler(svc *ucCart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

// --------- Requests ---------

type AddCartItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type SetCartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// --------- Handlers ---------

func (h *CartHandler) Get(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	cart, err := h.svc.GetCart(c.Request.Context(), customerID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_cart", "Could not load cart.")
		return
	}

	httpresp.OK(c, cart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Item id and quantity are required.")
		return
	}

	cart, err := h.svc.AddItem(c.Request.Context(), customerID, req.ItemID, req.Quantity)
	if err != nil {
		writeCartError(c, err)
		return
	}

	httpresp.OK(c, cart)
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		httperr.BadRequest(c, "invalid_item_id", "Invalid item id.")
		return
	}

	var req SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_quantity", "Quantity must be at least 1.")
		return
	}

	cart, err := h.svc.SetItemQuantity(c.Request.Context(), customerID, itemID, req.Quantity)
	if err != nil {
		writeCartError(c, err)
		return
	}

	httpresp.OK(c, cart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		httperr.BadRequest(c, "invalid_item_id", "Invalid item id.")
		return
	}

	cart, err := h.svc.RemoveItem(c.Request.Context(), customerID, itemID)
	if err != nil {
		writeCartError(c, err)
		return
	}

	httpresp.OK(c, cart)
}

func (h *CartHandler) Clear(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	cart, err := h.svc.ClearCart(c.Request.Context(), customerID)
	if err != nil {
		writeCartError(c, err)
		return
	}

	httpresp.OK(c, cart)
}

func (h *CartHandler) Reprice(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	cart, err := h.svc.Reprice(c.Request.Context(), customerID)
	if err != nil {
		writeCartError(c, err)
		return
	}

	httpresp.OK(c, cart)
}

// --------- Error mapping ---------

func writeCartError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "cart_error", "Could not process cart.")
		return
	}

	switch code {
	case "cart_not_found", "item_not_in_cart", "item_not_found":
		httperr.NotFound(c, code, "Not found.")
	case "invalid_quantity":
		httperr.BadRequest(c, code, "Quantity must be at least 1.")
	default:
		httperr.BadRequest(c, code, "Invalid cart request.")
	}
}
