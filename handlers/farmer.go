package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"farm-market-api/middleware"
	"farm-market-api/models"
	"farm-market-api/statemachine"
	"farm-market-api/store"
)

// ListMyProducts returns the farmer's own catalog entries.
func (h *Handler) ListMyProducts(c *gin.Context) {
	products := h.store.FarmerProducts(middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

type ProductRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Category    models.ProductCategory `json:"category" binding:"required"`
	Price       string                 `json:"price" binding:"required"`
	Unit        string                 `json:"unit" binding:"required"`
	Description string                 `json:"description"`
	Image       string                 `json:"image"`
	Stock       int                    `json:"stock" binding:"min=0"`
	Location    string                 `json:"location"`
}

func (h *Handler) parseProductRequest(c *gin.Context) (ProductRequest, decimal.Decimal, bool) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, decimal.Zero, false
	}
	if !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Must be: produce, dairy, livestock, or grains"})
		return req, decimal.Zero, false
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a non-negative decimal"})
		return req, decimal.Zero, false
	}
	return req, price, true
}

// CreateProduct adds a catalog entry owned by the calling farmer.
func (h *Handler) CreateProduct(c *gin.Context) {
	farmerID := middleware.GetUserID(c)
	req, price, ok := h.parseProductRequest(c)
	if !ok {
		return
	}

	farmer, found := h.store.UserByID(farmerID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	farmerName := farmer.FarmName
	if farmerName == "" {
		farmerName = farmer.Name
	}

	location := req.Location
	if location == "" {
		location = farmer.Address
	}

	now := time.Now().UTC()
	product := models.Product{
		ID:          uuid.NewString(),
		FarmerID:    farmerID,
		FarmerName:  farmerName,
		Name:        req.Name,
		Category:    req.Category,
		Price:       price,
		Unit:        req.Unit,
		Description: req.Description,
		Image:       req.Image,
		Stock:       req.Stock,
		Location:    location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.store.Dispatch(store.AddProduct{Product: product}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

// UpdateProduct replaces a catalog entry, owner only. Snapshots already in
// carts or orders are unaffected.
func (h *Handler) UpdateProduct(c *gin.Context) {
	farmerID := middleware.GetUserID(c)
	existing, found := h.store.ProductByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if existing.FarmerID != farmerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This product does not belong to you"})
		return
	}

	req, price, ok := h.parseProductRequest(c)
	if !ok {
		return
	}

	product := existing
	product.Name = req.Name
	product.Category = req.Category
	product.Price = price
	product.Unit = req.Unit
	product.Description = req.Description
	product.Image = req.Image
	product.Stock = req.Stock
	if req.Location != "" {
		product.Location = req.Location
	}
	product.UpdatedAt = time.Now().UTC()

	if err := h.store.Dispatch(store.UpdateProduct{Product: product}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct removes a catalog entry, owner only.
func (h *Handler) DeleteProduct(c *gin.Context) {
	farmerID := middleware.GetUserID(c)
	existing, found := h.store.ProductByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if existing.FarmerID != farmerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This product does not belong to you"})
		return
	}
	if err := h.store.Dispatch(store.DeleteProduct{ProductID: existing.ID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "product_id": existing.ID})
}

// GetFarmerOrders returns orders addressed to the farmer, with a status
// summary for the dashboard.
func (h *Handler) GetFarmerOrders(c *gin.Context) {
	orders := h.store.FarmerOrders(middleware.GetUserID(c))

	if status := c.Query("status"); status != "" {
		matching := orders[:0:0]
		for _, o := range orders {
			if string(o.Status) == status {
				matching = append(matching, o)
			}
		}
		orders = matching
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus handles the farmer's transitions: accept, cancel, start
// preparing. Legality is decided by the state machine inside the reducer.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	farmerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, found := h.store.OrderByID(orderID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.FarmerID != farmerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	err := h.store.Dispatch(store.UpdateOrderStatus{
		OrderID: orderID,
		Status:  req.Status,
		Actor:   models.RoleFarmer,
	})
	var tErr *statemachine.TransitionError
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	case errors.As(err, &tErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order status updated",
		"order_id": orderID,
		"status":   req.Status,
	})
}
