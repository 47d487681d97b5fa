package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/cache"
	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/cart"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

// Service owns all cart mutations. Reads go cache-aside; every write
// invalidates the customer's cache entry.
type Service struct {
	repo  domain.Repository
	cache cache.CartCache
}

func NewService(repo domain.Repository, c cache.CartCache) *Service {
	return &Service{
		repo:  repo,
		cache: c,
	}
}

// GetCart returns the customer's cart. A customer who never added an
// item gets a transient empty cart; nothing is persisted on read.
func (s *Service) GetCart(ctx context.Context, customerID uint) (*models.Cart, error) {

	cached, err := s.cache.Get(ctx, customerID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Println("cart cache get error:", err)
	}

	c, err := s.repo.GetCart(ctx, customerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Cart{CustomerID: customerID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	if cerr := s.cache.Set(ctx, customerID, c); cerr != nil {
		log.Println("cart cache set error:", cerr)
	}

	return c, nil
}

// AddItem adds quantity of an item, creating the cart lazily. An
// existing line keeps its add-time price snapshot; only the quantity
// and the derived total change.
func (s *Service) AddItem(ctx context.Context, customerID, itemID uint, quantity int) (*models.Cart, error) {

	if quantity < 1 {
		return nil, httperr.ErrBusiness("invalid_quantity")
	}

	c, err := s.getOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if line := domain.FindLine(c, itemID); line != nil {
		line.Quantity += quantity
		line.TotalPrice = domain.LineTotal(line.Quantity, line.PricePerItem)

		if err := s.repo.SaveLine(ctx, line); err != nil {
			return nil, err
		}
		return s.reload(ctx, customerID)
	}

	item, err := s.repo.GetInventoryItem(ctx, itemID)
	if err != nil {
		return nil, httperr.ErrBusiness("item_not_found")
	}

	line := models.CartItem{
		CartID:       c.ID,
		ItemID:       item.ID,
		ItemName:     item.Name,
		PricePerItem: item.Price,
		ImageKey:     item.ImageKey,
		Quantity:     quantity,
		TotalPrice:   domain.LineTotal(quantity, item.Price),
	}

	if err := s.repo.SaveLine(ctx, &line); err != nil {
		return nil, err
	}

	return s.reload(ctx, customerID)
}

// SetItemQuantity overwrites a line's quantity (minimum 1) and rederives
// its total from the snapshot price.
func (s *Service) SetItemQuantity(ctx context.Context, customerID, itemID uint, quantity int) (*models.Cart, error) {

	if quantity < 1 {
		return nil, httperr.ErrBusiness("invalid_quantity")
	}

	c, err := s.repo.GetCart(ctx, customerID)
	if err != nil {
		return nil, httperr.ErrBusiness("cart_not_found")
	}

	line := domain.FindLine(c, itemID)
	if line == nil {
		return nil, httperr.ErrBusiness("item_not_in_cart")
	}

	line.Quantity = quantity
	line.TotalPrice = domain.LineTotal(quantity, line.PricePerItem)

	if err := s.repo.SaveLine(ctx, line); err != nil {
		return nil, err
	}

	return s.reload(ctx, customerID)
}

func (s *Service) RemoveItem(ctx context.Context, customerID, itemID uint) (*models.Cart, error) {

	c, err := s.repo.GetCart(ctx, customerID)
	if err != nil {
		return nil, httperr.ErrBusiness("cart_not_found")
	}

	if domain.FindLine(c, itemID) == nil {
		return nil, httperr.ErrBusiness("item_not_in_cart")
	}

	if err := s.repo.DeleteLine(ctx, c.ID, itemID); err != nil {
		return nil, err
	}

	return s.reload(ctx, customerID)
}

// ClearCart empties the items; the cart row itself stays.
func (s *Service) ClearCart(ctx context.Context, customerID uint) (*models.Cart, error) {

	c, err := s.repo.GetCart(ctx, customerID)
	if err != nil {
		return nil, httperr.ErrBusiness("cart_not_found")
	}

	if err := s.repo.ClearLines(ctx, c.ID); err != nil {
		return nil, err
	}

	return s.reload(ctx, customerID)
}

// Reprice re-reads the catalog for every line and rewrites the
// snapshots. This is the only path that refreshes a stale price, and it
// only runs when a caller asks for it.
func (s *Service) Reprice(ctx context.Context, customerID uint) (*models.Cart, error) {

	c, err := s.repo.GetCart(ctx, customerID)
	if err != nil {
		return nil, httperr.ErrBusiness("cart_not_found")
	}

	for i := range c.Items {
		item, err := s.repo.GetInventoryItem(ctx, c.Items[i].ItemID)
		if err != nil {
			// item gone from the catalog: keep the snapshot as-is
			continue
		}

		c.Items[i].ItemName = item.Name
		c.Items[i].PricePerItem = item.Price
		c.Items[i].TotalPrice = domain.LineTotal(c.Items[i].Quantity, item.Price)

		if err := s.repo.SaveLine(ctx, &c.Items[i]); err != nil {
			return nil, err
		}
	}

	return s.reload(ctx, customerID)
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (s *Service) getOrCreateCart(ctx context.Context, customerID uint) (*models.Cart, error) {
	c, err := s.repo.GetCart(ctx, customerID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c = &models.Cart{CustomerID: customerID}
	if err := s.repo.CreateCart(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) reload(ctx context.Context, customerID uint) (*models.Cart, error) {
	s.invalidate(customerID)

	c, err := s.repo.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) invalidate(customerID uint) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := s.cache.Delete(ctx, customerID); err != nil {
		log.Println("cart cache invalidate error:", err)
	}
}
