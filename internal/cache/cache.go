package cache

import (
	"context"
	"errors"

	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

type CartCache interface {
	Get(ctx context.Context, customerID uint) (*models.Cart, error)
	Set(ctx context.Context, customerID uint, cart *models.Cart) error
	Delete(ctx context.Context, customerID uint) error
}

var ErrCacheMiss = errors.New("cache miss")
