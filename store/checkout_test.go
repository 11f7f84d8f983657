package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farm-market-api/models"
)

func TestOrdersFromCartSingleFarmer(t *testing.T) {
	cart := []models.CartItem{
		{Product: snapshot(t, "pA", "f1", "10"), Quantity: 2},
	}
	customer := models.User{ID: "c1", Name: "Demo Customer", Role: models.RoleCustomer}

	orders := OrdersFromCart(cart, customer, "42 Orchard Lane", "555-0126", "", nil)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Total.Equal(dec(t, "20")))
	assert.Equal(t, models.StatusPending, orders[0].Status)
	assert.Equal(t, "f1", orders[0].FarmerID)
	assert.Equal(t, "c1", orders[0].CustomerID)
	assert.Len(t, orders[0].Items, 1)
}

func TestOrdersFromCartSplitsByFarmer(t *testing.T) {
	cart := []models.CartItem{
		{Product: snapshot(t, "pA", "f1", "89.99"), Quantity: 1},
		{Product: snapshot(t, "pB", "f2", "389.99"), Quantity: 2},
		{Product: snapshot(t, "pC", "f1", "134.99"), Quantity: 1},
	}
	customer := models.User{ID: "c1", Name: "Demo Customer"}
	payment := &models.Payment{TransactionID: "tx1", Method: "card", PaidAt: time.Now().UTC()}

	orders := OrdersFromCart(cart, customer, "addr", "phone", "leave at gate", payment)
	require.Len(t, orders, 2)

	// first-appearance order of farmers is preserved
	assert.Equal(t, "f1", orders[0].FarmerID)
	assert.Equal(t, "f2", orders[1].FarmerID)

	// each order references only its own farmer's items
	for _, o := range orders {
		for _, item := range o.Items {
			assert.Equal(t, o.FarmerID, item.Product.FarmerID)
		}
	}
	assert.Len(t, orders[0].Items, 2)
	assert.Len(t, orders[1].Items, 1)

	// totals sum to the cart total
	cartTotal := dec(t, "0")
	for _, item := range cart {
		cartTotal = cartTotal.Add(item.LineTotal())
	}
	sum := dec(t, "0")
	for _, o := range orders {
		sum = sum.Add(o.Total)
	}
	assert.True(t, sum.Equal(cartTotal), "order totals %s != cart total %s", sum, cartTotal)

	// payment is copied per order with the order's share
	for _, o := range orders {
		require.NotNil(t, o.Payment)
		assert.Equal(t, "tx1", o.Payment.TransactionID)
		assert.True(t, o.Payment.Amount.Equal(o.Total))
	}
	assert.NotSame(t, orders[0].Payment, orders[1].Payment)

	// distinct order ids
	assert.NotEqual(t, orders[0].ID, orders[1].ID)
}

func TestOrdersFromCartEmpty(t *testing.T) {
	orders := OrdersFromCart(nil, models.User{ID: "c1"}, "addr", "phone", "", nil)
	assert.Nil(t, orders)
}
