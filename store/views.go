package store

import (
	"slices"

	"github.com/shopspring/decimal"

	"farm-market-api/models"
)

// Derived views: read-only projections recomputed on every call. Returned
// slices are copies and safe for callers to keep.

// CurrentUser returns the session identity, or nil when logged out.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CurrentUser == nil {
		return nil
	}
	u := *s.state.CurrentUser
	return &u
}

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Users)
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByEmailRole is the demo login lookup: a user matches only when both the
// typed email and the chosen role agree.
func (s *Store) UserByEmailRole(email string, role models.UserRole) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.Email == email && u.Role == role {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Products)
}

func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// FarmerProducts returns the catalog entries owned by a farmer.
func (s *Store) FarmerProducts(farmerID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filtered(s.state.Products, func(p models.Product) bool {
		return p.FarmerID == farmerID
	})
}

func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Cart)
}

func (s *Store) CartItem(productID string) (models.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.state.Cart {
		if item.Product.ID == productID {
			return item, true
		}
	}
	return models.CartItem{}, false
}

// CartTotal sums price × quantity over the cart.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, item := range s.state.Cart {
		total = total.Add(item.LineTotal())
	}
	return total
}

// CartCount sums quantities over the cart.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, item := range s.state.Cart {
		n += item.Quantity
	}
	return n
}

func (s *Store) Wishlist() []models.ProductSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Wishlist)
}

func (s *Store) WishlistCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Wishlist)
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Orders)
}

func (s *Store) OrderByID(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.state.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// FarmerOrders returns orders addressed to a farmer.
func (s *Store) FarmerOrders(farmerID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filtered(s.state.Orders, func(o models.Order) bool {
		return o.FarmerID == farmerID
	})
}

// CustomerOrders returns orders placed by a customer.
func (s *Store) CustomerOrders(customerID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filtered(s.state.Orders, func(o models.Order) bool {
		return o.CustomerID == customerID
	})
}

// AvailableDeliveries returns orders ready for a driver to take, i.e. those
// currently in preparation. Drivers are assigned at pickup, never before.
func (s *Store) AvailableDeliveries() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filtered(s.state.Orders, func(o models.Order) bool {
		return o.Status == models.StatusPreparing
	})
}

// DriverDeliveries returns orders assigned to a driver.
func (s *Store) DriverDeliveries(driverID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filtered(s.state.Orders, func(o models.Order) bool {
		return o.DriverID == driverID
	})
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLoading
}

func (s *Store) NewsletterVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ShowNewsletter
}
