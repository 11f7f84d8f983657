package store

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farm-market-api/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	s, err := New(log)
	require.NoError(t, err)
	return s
}

func TestSeedState(t *testing.T) {
	s := newTestStore(t)

	users := s.Users()
	assert.Len(t, users, 4)
	products := s.Products()
	assert.Len(t, products, 3)

	farmer, ok := s.UserByEmailRole("farmer@greenvalley.com", models.RoleFarmer)
	require.True(t, ok)
	assert.Equal(t, "Green Valley Farm", farmer.FarmName)

	// login matches email AND role
	_, ok = s.UserByEmailRole("farmer@greenvalley.com", models.RoleDriver)
	assert.False(t, ok)

	tomatoes, ok := s.ProductByID("1")
	require.True(t, ok)
	assert.Equal(t, models.CategoryProduce, tomatoes.Category)
	assert.Equal(t, 50, tomatoes.Stock)

	assert.True(t, s.NewsletterVisible())
	assert.False(t, s.IsLoading())
	assert.Nil(t, s.CurrentUser())
}

func TestFarmerViews(t *testing.T) {
	s := newTestStore(t)

	assert.Len(t, s.FarmerProducts("farmer1"), 2)
	assert.Len(t, s.FarmerProducts("farmer2"), 1)
	assert.Empty(t, s.FarmerProducts("nobody"))
}

func TestCartTotals(t *testing.T) {
	s := newTestStore(t)

	tomatoes, _ := s.ProductByID("1") // 89.99
	eggs, _ := s.ProductByID("2")     // 134.99

	require.NoError(t, s.Dispatch(AddToCart{Product: tomatoes.Snapshot(), Quantity: 2}))
	require.NoError(t, s.Dispatch(AddToCart{Product: eggs.Snapshot(), Quantity: 1}))

	assert.Equal(t, 3, s.CartCount())
	assert.True(t, s.CartTotal().Equal(dec(t, "314.97")))
	assert.Len(t, s.Cart(), 2)
}

func TestOrderLifecycleViews(t *testing.T) {
	s := newTestStore(t)

	tomatoes, _ := s.ProductByID("1")
	beef, _ := s.ProductByID("3")
	require.NoError(t, s.Dispatch(AddToCart{Product: tomatoes.Snapshot(), Quantity: 1}))
	require.NoError(t, s.Dispatch(AddToCart{Product: beef.Snapshot(), Quantity: 1}))

	customer, _ := s.UserByID("customer1")
	orders := OrdersFromCart(s.Cart(), customer, customer.Address, customer.Phone, "", nil)
	require.Len(t, orders, 2)
	for _, o := range orders {
		require.NoError(t, s.Dispatch(PlaceOrder{Order: o}))
	}
	assert.Empty(t, s.Cart())

	assert.Len(t, s.CustomerOrders("customer1"), 2)
	assert.Len(t, s.FarmerOrders("farmer1"), 1)
	assert.Len(t, s.FarmerOrders("farmer2"), 1)
	assert.Empty(t, s.AvailableDeliveries())

	// farmer1 accepts and starts preparing; the order becomes available
	o1 := s.FarmerOrders("farmer1")[0]
	require.NoError(t, s.Dispatch(UpdateOrderStatus{OrderID: o1.ID, Status: models.StatusAccepted, Actor: models.RoleFarmer}))
	require.NoError(t, s.Dispatch(UpdateOrderStatus{OrderID: o1.ID, Status: models.StatusPreparing, Actor: models.RoleFarmer}))
	require.Len(t, s.AvailableDeliveries(), 1)

	// driver takes it out and delivers
	require.NoError(t, s.Dispatch(UpdateOrderStatus{OrderID: o1.ID, Status: models.StatusOutForDelivery, DriverID: "driver1", Actor: models.RoleDriver}))
	assert.Empty(t, s.AvailableDeliveries())
	require.Len(t, s.DriverDeliveries("driver1"), 1)

	require.NoError(t, s.Dispatch(UpdateOrderStatus{OrderID: o1.ID, Status: models.StatusDelivered, Actor: models.RoleDriver}))
	got, ok := s.OrderByID(o1.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusDelivered, got.Status)
	assert.Equal(t, "driver1", got.DriverID)

	// the other farmer's order is untouched
	o2, _ := s.OrderByID(s.FarmerOrders("farmer2")[0].ID)
	assert.Equal(t, models.StatusPending, o2.Status)
}

func TestViewsReturnCopies(t *testing.T) {
	s := newTestStore(t)

	products := s.Products()
	products[0].Name = "mutated"

	fresh := s.Products()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}
