package models

import "time"

// One cart per customer. The row survives a clear; only its items go away.
type Cart struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"uniqueIndex;not null" json:"customer_id"`

	Items []CartItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItem carries a snapshot of the catalog item taken at add time.
// ItemName and PricePerItem are never refreshed implicitly; the reprice
// endpoint is the only path that rewrites them.
type CartItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	CartID uint `gorm:"uniqueIndex:idx_cart_item;not null" json:"cart_id"`

	ItemID       uint    `gorm:"uniqueIndex:idx_cart_item;not null" json:"item_id"`
	ItemName     string  `gorm:"size:100" json:"item_name"`
	PricePerItem float64 `json:"price_per_item"`
	ImageKey     string  `gorm:"size:255" json:"image_key"`

	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
