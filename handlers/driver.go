package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"farm-market-api/middleware"
	"farm-market-api/models"
	"farm-market-api/statemachine"
	"farm-market-api/store"
)

// GetAvailableDeliveries shows orders in preparation, waiting for a driver
func (h *Handler) GetAvailableDeliveries(c *gin.Context) {
	orders := h.store.AvailableDeliveries()
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetMyDeliveries returns all orders assigned to the logged-in driver
func (h *Handler) GetMyDeliveries(c *gin.Context) {
	orders := h.store.DriverDeliveries(middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// PickupOrder assigns the order to the driver and transitions
// preparing → out_for_delivery
func (h *Handler) PickupOrder(c *gin.Context) {
	driverID := middleware.GetUserID(c)
	orderID := c.Param("id")

	order, found := h.store.OrderByID(orderID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	// Prevent two drivers taking the same order
	if order.DriverID != "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been taken by another driver"})
		return
	}

	err := h.store.Dispatch(store.UpdateOrderStatus{
		OrderID:  orderID,
		Status:   models.StatusOutForDelivery,
		DriverID: driverID,
		Actor:    models.RoleDriver,
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
		"message":  "Delivery started",
		"order_id": orderID,
		"status":   models.StatusOutForDelivery,
	})
}

// DeliverOrder transitions out_for_delivery → delivered, assigned driver only
func (h *Handler) DeliverOrder(c *gin.Context) {
	driverID := middleware.GetUserID(c)
	orderID := c.Param("id")

	order, found := h.store.OrderByID(orderID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.DriverID != driverID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the assigned driver for this order"})
		return
	}

	err := h.store.Dispatch(store.UpdateOrderStatus{
		OrderID: orderID,
		Status:  models.StatusDelivered,
		Actor:   models.RoleDriver,
	})
	var tErr *statemachine.TransitionError
	switch {
	case errors.As(err, &tErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Invalid state transition",
			"current_status": order.Status,
			"reason":         err.Error(),
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order delivered successfully",
		"order_id": orderID,
		"status":   models.StatusDelivered,
	})
}
