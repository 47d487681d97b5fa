package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 1000.0, LineTotal(2, 500))
	assert.Equal(t, 1500.0, LineTotal(3, 500))
	assert.Equal(t, 0.0, LineTotal(0, 500))
	assert.Equal(t, 19.98, LineTotal(2, 9.99))
}

func TestRecalculate(t *testing.T) {
	c := &models.Cart{
		Items: []models.CartItem{
			{ItemID: 1, Quantity: 2, PricePerItem: 500, TotalPrice: 0},
			{ItemID: 2, Quantity: 1, PricePerItem: 75.5, TotalPrice: 999},
		},
	}

	Recalculate(c)

	assert.Equal(t, 1000.0, c.Items[0].TotalPrice)
	assert.Equal(t, 75.5, c.Items[1].TotalPrice)
}

func TestFindLine(t *testing.T) {
	c := &models.Cart{
		Items: []models.CartItem{
			{ItemID: 10, Quantity: 1},
			{ItemID: 20, Quantity: 2},
		},
	}

	line := FindLine(c, 20)
	require.NotNil(t, line)
	assert.Equal(t, 2, line.Quantity)

	// returned pointer aliases the cart line
	line.Quantity = 7
	assert.Equal(t, 7, c.Items[1].Quantity)

	assert.Nil(t, FindLine(c, 30))
}
