package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"farm-market-api/middleware"
	"farm-market-api/models"
	"farm-market-api/store"
)

// GetCart returns the session cart with its derived totals.
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.store.Cart(),
		"total": h.store.CartTotal(),
		"count": h.store.CartCount(),
	})
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// AddToCart snapshots the product into the cart. The stock ceiling is
// enforced here, at add time; the reducer only merges quantities.
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := h.store.ProductByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	inCart := 0
	if item, ok := h.store.CartItem(req.ProductID); ok {
		inCart = item.Quantity
	}
	if inCart+req.Quantity > product.Stock {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Only %d of '%s' in stock", product.Stock, product.Name),
		})
		return
	}

	if err := h.store.Dispatch(store.AddToCart{Product: product.Snapshot(), Quantity: req.Quantity}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Added to cart",
		"count":   h.store.CartCount(),
		"total":   h.store.CartTotal(),
	})
}

type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartQuantity sets a cart line's quantity. Zero or less removes the
// line.
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	productID := c.Param("productId")
	var req UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := h.store.CartItem(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
		return
	}
	if req.Quantity > item.Product.Stock {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Only %d of '%s' in stock", item.Product.Stock, item.Product.Name),
		})
		return
	}

	if err := h.store.Dispatch(store.UpdateCartQuantity{ProductID: productID, Quantity: req.Quantity}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"count":   h.store.CartCount(),
		"total":   h.store.CartTotal(),
	})
}

// RemoveFromCart removes a cart line. Removing an absent line is a no-op.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	if err := h.store.Dispatch(store.RemoveFromCart{ProductID: c.Param("productId")}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "count": h.store.CartCount()})
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.store.Dispatch(store.ClearCart{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// GetWishlist returns the session wishlist.
func (h *Handler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.store.Wishlist(),
		"count": h.store.WishlistCount(),
	})
}

type WishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// AddToWishlist snapshots a product into the wishlist. Adding twice is
// harmless: membership is keyed by product id.
func (h *Handler) AddToWishlist(c *gin.Context) {
	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, ok := h.store.ProductByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err := h.store.Dispatch(store.AddToWishlist{Product: product.Snapshot()}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist", "count": h.store.WishlistCount()})
}

// RemoveFromWishlist removes a wishlist entry.
func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	if err := h.store.Dispatch(store.RemoveFromWishlist{ProductID: c.Param("productId")}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist", "count": h.store.WishlistCount()})
}

type CheckoutRequest struct {
	Address       string `json:"address" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	DeliveryNotes string `json:"delivery_notes"`
	PaymentMethod string `json:"payment_method"`
}

// Checkout runs the simulated payment, then splits the cart into one pending
// order per distinct farmer. The totals of the created orders always add up
// to the pre-checkout cart total.
func (h *Handler) Checkout(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := h.store.Cart()
	if len(cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	customer, ok := h.store.UserByID(customerID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	method := req.PaymentMethod
	if method == "" {
		method = "card"
	}

	// Simulated payment: a fixed wait that always succeeds.
	_ = h.store.Dispatch(store.SetLoading{Loading: true})
	time.Sleep(h.cfg.PaymentDelay)
	payment := &models.Payment{
		TransactionID: uuid.NewString(),
		Method:        method,
		Amount:        h.store.CartTotal(),
		PaidAt:        time.Now().UTC(),
	}
	_ = h.store.Dispatch(store.SetLoading{Loading: false})

	orders := store.OrdersFromCart(cart, customer, req.Address, req.Phone, req.DeliveryNotes, payment)
	for _, order := range orders {
		if err := h.store.Dispatch(store.PlaceOrder{Order: order}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
	}

	h.log.WithFields(logrus.Fields{
		"customer_id": customerID,
		"orders":      len(orders),
	}).Info("checkout completed")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully!",
		"count":   len(orders),
		"orders":  orders,
	})
}

// GetMyOrders returns all orders placed by the logged-in customer
func (h *Handler) GetMyOrders(c *gin.Context) {
	orders := h.store.CustomerOrders(middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order, owner only.
func (h *Handler) GetOrderDetail(c *gin.Context) {
	order, ok := h.store.OrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
