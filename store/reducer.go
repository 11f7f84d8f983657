package store

import (
	"errors"

	"farm-market-api/models"
	"farm-market-api/statemachine"
)

// ErrOrderNotFound is returned by Dispatch when UpdateOrderStatus names an
// order id that does not exist.
var ErrOrderNotFound = errors.New("order not found")

// State is the single source of truth. Values handed out by the store share
// no slices with it; the reducer never mutates its input.
type State struct {
	CurrentUser    *models.User
	Users          []models.User
	Products       []models.Product
	Cart           []models.CartItem
	Wishlist       []models.ProductSnapshot
	Orders         []models.Order
	IsLoading      bool
	ShowNewsletter bool
}

func appended[T any](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

func filtered[T any](xs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

func mapped[T any](xs []T, fn func(T) T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// reduce computes the next state from the current state and an action. It is
// pure: the input state and its slices are left untouched. Most actions are
// total; the only failures are an unknown order id and a forbidden lifecycle
// transition, both on UpdateOrderStatus.
func reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case SetCurrentUser:
		s.CurrentUser = a.User

	case RegisterUser:
		u := a.User
		s.Users = appended(s.Users, u)
		s.CurrentUser = &u

	case AddProduct:
		s.Products = appended(s.Products, a.Product)

	case UpdateProduct:
		s.Products = mapped(s.Products, func(p models.Product) models.Product {
			if p.ID == a.Product.ID {
				return a.Product
			}
			return p
		})

	case DeleteProduct:
		s.Products = filtered(s.Products, func(p models.Product) bool {
			return p.ID != a.ProductID
		})

	case AddToCart:
		exists := false
		for _, item := range s.Cart {
			if item.Product.ID == a.Product.ID {
				exists = true
				break
			}
		}
		if exists {
			s.Cart = mapped(s.Cart, func(item models.CartItem) models.CartItem {
				if item.Product.ID == a.Product.ID {
					item.Quantity += a.Quantity
				}
				return item
			})
		} else {
			s.Cart = appended(s.Cart, models.CartItem{Product: a.Product, Quantity: a.Quantity})
		}

	case RemoveFromCart:
		s.Cart = filtered(s.Cart, func(item models.CartItem) bool {
			return item.Product.ID != a.ProductID
		})

	case UpdateCartQuantity:
		if a.Quantity <= 0 {
			s.Cart = filtered(s.Cart, func(item models.CartItem) bool {
				return item.Product.ID != a.ProductID
			})
			break
		}
		s.Cart = mapped(s.Cart, func(item models.CartItem) models.CartItem {
			if item.Product.ID == a.ProductID {
				item.Quantity = a.Quantity
			}
			return item
		})

	case ClearCart:
		s.Cart = nil

	case AddToWishlist:
		for _, p := range s.Wishlist {
			if p.ID == a.Product.ID {
				return s, nil
			}
		}
		s.Wishlist = appended(s.Wishlist, a.Product)

	case RemoveFromWishlist:
		s.Wishlist = filtered(s.Wishlist, func(p models.ProductSnapshot) bool {
			return p.ID != a.ProductID
		})

	case PlaceOrder:
		s.Orders = appended(s.Orders, a.Order)
		s.Cart = nil

	case UpdateOrderStatus:
		var current *models.Order
		for i := range s.Orders {
			if s.Orders[i].ID == a.OrderID {
				current = &s.Orders[i]
				break
			}
		}
		if current == nil {
			return s, ErrOrderNotFound
		}
		if err := statemachine.CanTransition(current.Status, a.Status, a.Actor); err != nil {
			return s, err
		}
		s.Orders = mapped(s.Orders, func(o models.Order) models.Order {
			if o.ID == a.OrderID {
				o.Status = a.Status
				if a.DriverID != "" {
					o.DriverID = a.DriverID
				}
			}
			return o
		})

	case SetLoading:
		s.IsLoading = a.Loading

	case SetNewsletterVisibility:
		s.ShowNewsletter = a.Visible
	}

	return s, nil
}
