package cart

import (
	"context"

	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

// LineTotal is the single place the line-item total is derived.
// Always quantity times the snapshotted unit price.
func LineTotal(quantity int, pricePerItem float64) float64 {
	return float64(quantity) * pricePerItem
}

// Recalculate rewrites every line's total from its own snapshot price.
func Recalculate(c *models.Cart) {
	for i := range c.Items {
		c.Items[i].TotalPrice = LineTotal(c.Items[i].Quantity, c.Items[i].PricePerItem)
	}
}

// FindLine returns the line for itemID, or nil.
func FindLine(c *models.Cart, itemID uint) *models.CartItem {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

type Repository interface {
	// GetCart returns the customer's cart with lines loaded, or
	// gorm.ErrRecordNotFound.
	GetCart(ctx context.Context, customerID uint) (*models.Cart, error)

	CreateCart(ctx context.Context, c *models.Cart) error

	SaveLine(ctx context.Context, line *models.CartItem) error
	DeleteLine(ctx context.Context, cartID uint, itemID uint) error
	ClearLines(ctx context.Context, cartID uint) error

	GetInventoryItem(ctx context.Context, itemID uint) (*models.InventoryItem, error)
}
