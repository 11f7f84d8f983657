package store

import "farm-market-api/models"

// Action is a request to mutate store state. The set is closed: every
// mutation the rest of the system can express is one of the variants below,
// and only the reducer interprets them.
type Action interface {
	actionName() string
}

// SetCurrentUser replaces the session identity. A nil User logs out.
type SetCurrentUser struct {
	User *models.User
}

// RegisterUser appends a user and makes them the session identity. Email
// uniqueness is the dispatching collaborator's job; the reducer inserts
// whatever it is given.
type RegisterUser struct {
	User models.User
}

// AddProduct appends a catalog product.
type AddProduct struct {
	Product models.Product
}

// UpdateProduct replaces the catalog product with the same id. No-op if the
// id is unknown.
type UpdateProduct struct {
	Product models.Product
}

// DeleteProduct removes a catalog product. Snapshots already embedded in
// carts, wishlists or orders are untouched.
type DeleteProduct struct {
	ProductID string
}

// AddToCart merges by product id: an existing line gains quantity, otherwise
// a new line is appended.
type AddToCart struct {
	Product  models.ProductSnapshot
	Quantity int
}

// RemoveFromCart removes the line for a product id. No-op if absent.
type RemoveFromCart struct {
	ProductID string
}

// UpdateCartQuantity sets a line's quantity directly. A quantity of zero or
// less removes the line.
type UpdateCartQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// AddToWishlist appends a product snapshot unless one with the same id is
// already present.
type AddToWishlist struct {
	Product models.ProductSnapshot
}

// RemoveFromWishlist removes the entry for a product id. No-op if absent.
type RemoveFromWishlist struct {
	ProductID string
}

// PlaceOrder appends an order and clears the cart.
type PlaceOrder struct {
	Order models.Order
}

// UpdateOrderStatus moves an order through the lifecycle. The transition is
// validated against the state machine for the acting role; DriverID is set
// only when non-empty, otherwise the existing assignment is kept.
type UpdateOrderStatus struct {
	OrderID  string
	Status   models.OrderStatus
	DriverID string
	Actor    models.UserRole
}

// SetLoading toggles the global busy flag.
type SetLoading struct {
	Loading bool
}

// SetNewsletterVisibility toggles the newsletter prompt flag.
type SetNewsletterVisibility struct {
	Visible bool
}

func (SetCurrentUser) actionName() string          { return "SET_CURRENT_USER" }
func (RegisterUser) actionName() string            { return "REGISTER_USER" }
func (AddProduct) actionName() string              { return "ADD_PRODUCT" }
func (UpdateProduct) actionName() string           { return "UPDATE_PRODUCT" }
func (DeleteProduct) actionName() string           { return "DELETE_PRODUCT" }
func (AddToCart) actionName() string               { return "ADD_TO_CART" }
func (RemoveFromCart) actionName() string          { return "REMOVE_FROM_CART" }
func (UpdateCartQuantity) actionName() string      { return "UPDATE_CART_QUANTITY" }
func (ClearCart) actionName() string               { return "CLEAR_CART" }
func (AddToWishlist) actionName() string           { return "ADD_TO_WISHLIST" }
func (RemoveFromWishlist) actionName() string      { return "REMOVE_FROM_WISHLIST" }
func (PlaceOrder) actionName() string              { return "PLACE_ORDER" }
func (UpdateOrderStatus) actionName() string       { return "UPDATE_ORDER_STATUS" }
func (SetLoading) actionName() string              { return "SET_LOADING" }
func (SetNewsletterVisibility) actionName() string { return "SET_NEWSLETTER_VISIBILITY" }
