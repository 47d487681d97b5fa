package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/cache"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

// ======================================================
// MOCKS
// ======================================================

type mockCartRepo struct {
	mu sync.RWMutex

	nextCartID uint
	nextLineID uint

	carts map[uint]*models.Cart        // by customer id
	lines map[uint][]*models.CartItem  // by cart id
	items map[uint]*models.InventoryItem

	getCalls int
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{
		carts: make(map[uint]*models.Cart),
		lines: make(map[uint][]*models.CartItem),
		items: make(map[uint]*models.InventoryItem),
	}
}

func (m *mockCartRepo) GetCart(ctx context.Context, customerID uint) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.getCalls++

	c, ok := m.carts[customerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	out := *c
	out.Items = nil
	for _, l := range m.lines[c.ID] {
		out.Items = append(out.Items, *l)
	}
	return &out, nil
}

func (m *mockCartRepo) CreateCart(ctx context.Context, c *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextCartID++
	c.ID = m.nextCartID

	cp := *c
	m.carts[c.CustomerID] = &cp
	return nil
}

func (m *mockCartRepo) SaveLine(ctx context.Context, line *models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, l := range m.lines[line.CartID] {
		if l.ItemID == line.ItemID {
			cp := *line
			cp.ID = l.ID
			m.lines[line.CartID][i] = &cp
			return nil
		}
	}

	m.nextLineID++
	cp := *line
	cp.ID = m.nextLineID
	line.ID = cp.ID
	m.lines[line.CartID] = append(m.lines[line.CartID], &cp)
	return nil
}

func (m *mockCartRepo) DeleteLine(ctx context.Context, cartID uint, itemID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.lines[cartID][:0]
	for _, l := range m.lines[cartID] {
		if l.ItemID != itemID {
			kept = append(kept, l)
		}
	}
	m.lines[cartID] = kept
	return nil
}

func (m *mockCartRepo) ClearLines(ctx context.Context, cartID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines[cartID] = nil
	return nil
}

func (m *mockCartRepo) GetInventoryItem(ctx context.Context, itemID uint) (*models.InventoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[itemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (m *mockCartRepo) putItem(item models.InventoryItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = &item
}

func (m *mockCartRepo) dropItem(itemID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, itemID)
}

type mockCartCache struct {
	mu sync.RWMutex

	entries map[uint]*models.Cart
	sets    int
	deletes int
}

func newMockCartCache() *mockCartCache {
	return &mockCartCache{entries: make(map[uint]*models.Cart)}
}

func (m *mockCartCache) Get(ctx context.Context, customerID uint) (*models.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.entries[customerID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return c, nil
}

func (m *mockCartCache) Set(ctx context.Context, customerID uint, cart *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[customerID] = cart
	m.sets++
	return nil
}

func (m *mockCartCache) Delete(ctx context.Context, customerID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, customerID)
	m.deletes++
	return nil
}

func newTestService() (*Service, *mockCartRepo, *mockCartCache) {
	repo := newMockCartRepo()
	c := newMockCartCache()
	return NewService(repo, c), repo, c
}

// ======================================================
// TESTS
// ======================================================

func TestAddItemSnapshotsPrice(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.putItem(models.InventoryItem{ID: 5, Name: "Mulch Bag", Price: 500, Active: true})

	c, err := svc.AddItem(context.Background(), 1, 5, 2)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "Mulch Bag", c.Items[0].ItemName)
	assert.Equal(t, 500.0, c.Items[0].PricePerItem)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1000.0, c.Items[0].TotalPrice)
}

func TestAddItemKeepsSnapshotOnRepeat(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.putItem(models.InventoryItem{ID: 5, Name: "Mulch Bag", Price: 500, Active: true})

	_, err := svc.AddItem(context.Background(), 1, 5, 2)
	require.NoError(t, err)

	// catalog price changes after the first add
	repo.putItem(models.InventoryItem{ID: 5, Name: "Mulch Bag", Price: 900, Active: true})

	c, err := svc.AddItem(context.Background(), 1, 5, 1)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 500.0, c.Items[0].PricePerItem, "snapshot price must survive catalog edits")
	assert.Equal(t, 1500.0, c.Items[0].TotalPrice)
}

func TestAddItemValidation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AddItem(context.Background(), 1, 5, 0)
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "invalid_quantity", code)

	_, err = svc.AddItem(context.Background(), 1, 99, 1)
	code, _ = httperr.BusinessCode(err)
	assert.Equal(t, "item_not_found", code)
}

func TestSetItemQuantity(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.putItem(models.InventoryItem{ID: 5, Name: "Mulch Bag", Price: 500, Active: true})

	_, err := svc.AddItem(context.Background(), 1, 5, 2)
	require.NoError(t, err)

	c, err := svc.SetItemQuantity(context.Background(), 1, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 1500.0, c.Items[0].TotalPrice)

	_, err = svc.SetItemQuantity(context.Background(), 1, 5, 0)
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "invalid_quantity", code)

	_, err = svc.SetItemQuantity(context.Background(), 1, 42, 1)
	code, _ = httperr.BusinessCode(err)
	assert.Equal(t, "item_not_in_cart", code)

	_, err = svc.SetItemQuantity(context.Background(), 2, 5, 1)
	code, _ = httperr.BusinessCode(err)
	assert.Equal(t, "cart_not_found", code)
}

func TestRemoveItem(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.putItem(models.InventoryItem{ID: 5, Name: "Mulch Bag", Price: 500, Active: true})
	repo.putItem(models.InventoryItem{ID: 6, Name: "Topsoil", Price: 300, Active: true})

	_, err := svc.AddItem(context.Background(), 1, 5, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), 1, 6, 1)
	require.NoError(t, err)

	c, err := svc.RemoveItem(context.Background(), 1, 5)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, uint(6), c.Items[0].ItemID)

	_, err = svc.RemoveItem(context.Background(), 1, 5)
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "item_not_in_cart", code)
}

func TestClearCartKeepsRow(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.putItem(models.InventoryItem{ID: 5, Name: "Mulch Bag", Price: 500, Active: true})

	_, err := svc.AddItem(context.Background(), 1, 5, 2)
	require.NoError(t, err)

	c, err := svc.ClearCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.NotZero(t, c.ID, "cart row must survive a clear")
}

func TestRepriceRefreshesSnapshots(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.putItem(models.InventoryItem{ID: 5, Name: "Mulch Bag", Price: 500, Active: true})
	repo.putItem(models.InventoryItem{ID: 6, Name: "Topsoil", Price: 300, Active: true})

	_, err := svc.AddItem(context.Background(), 1, 5, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), 1, 6, 1)
	require.NoError(t, err)

	// one item repriced, the other gone from the catalog
	repo.putItem(models.InventoryItem{ID: 5, Name: "Mulch Bag XL", Price: 650, Active: true})
	repo.dropItem(6)

	c, err := svc.Reprice(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, c.Items, 2)

	var mulch, soil *models.CartItem
	for i := range c.Items {
		switch c.Items[i].ItemID {
		case 5:
			mulch = &c.Items[i]
		case 6:
			soil = &c.Items[i]
		}
	}

	require.NotNil(t, mulch)
	assert.Equal(t, "Mulch Bag XL", mulch.ItemName)
	assert.Equal(t, 650.0, mulch.PricePerItem)
	assert.Equal(t, 1300.0, mulch.TotalPrice)

	require.NotNil(t, soil)
	assert.Equal(t, 300.0, soil.PricePerItem, "missing catalog item keeps its snapshot")
	assert.Equal(t, 300.0, soil.TotalPrice)
}

func TestGetCartTransientWhenAbsent(t *testing.T) {
	svc, repo, _ := newTestService()

	c, err := svc.GetCart(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, c.ID)
	assert.Empty(t, c.Items)
	assert.Empty(t, repo.carts, "read must not persist a cart")
}

func TestGetCartCacheAside(t *testing.T) {
	svc, repo, cc := newTestService()
	repo.putItem(models.InventoryItem{ID: 5, Name: "Mulch Bag", Price: 500, Active: true})

	_, err := svc.AddItem(context.Background(), 1, 5, 1)
	require.NoError(t, err)

	_, err = svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cc.sets)

	before := repo.getCalls
	_, err = svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, before, repo.getCalls, "second read must come from cache")

	// any write invalidates
	_, err = svc.AddItem(context.Background(), 1, 5, 1)
	require.NoError(t, err)
	_, miss := cc.Get(context.Background(), 1)
	assert.ErrorIs(t, miss, cache.ErrCacheMiss)
}
