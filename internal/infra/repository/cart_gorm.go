package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/cart"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

type CartGormRepository struct {
	db *gorm.DB
}

func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

func (r *CartGormRepository) GetCart(
	ctx context.Context,
	customerID uint,
) (*models.Cart, error) {

	var cart models.Cart
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).
		Where("customer_id = ?", customerID).
		First(&cart).Error; err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *CartGormRepository) CreateCart(
	ctx context.Context,
	c *models.Cart,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CartGormRepository) SaveLine(
	ctx context.Context,
	line *models.CartItem,
) error {
	return r.db.WithContext(ctx).Save(line).Error
}

func (r *CartGormRepository) DeleteLine(
	ctx context.Context,
	cartID uint,
	itemID uint,
) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND item_id = ?", cartID, itemID).
		Delete(&models.CartItem{}).Error
}

func (r *CartGormRepository) ClearLines(
	ctx context.Context,
	cartID uint,
) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}

func (r *CartGormRepository) GetInventoryItem(
	ctx context.Context,
	itemID uint,
) (*models.InventoryItem, error) {

	var item models.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", itemID, true).
		First(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

// Compile-time check
var _ domain.Repository = (*CartGormRepository)(nil)
