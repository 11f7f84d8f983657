package handlers

import (
	"math/rand"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"farm-market-api/models"
	"farm-market-api/statemachine"
	"farm-market-api/store"
)

// ListProducts returns the catalog (public), with optional filters.
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.store.Products()

	if category := c.Query("category"); category != "" {
		filtered := products[:0:0]
		for _, p := range products {
			if string(p.Category) == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := products[:0:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), search) ||
				strings.Contains(strings.ToLower(p.Description), search) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	if location := strings.ToLower(c.Query("location")); location != "" {
		filtered := products[:0:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Location), location) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}

// GetProduct returns a single catalog entry
func (h *Handler) GetProduct(c *gin.Context) {
	product, ok := h.store.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetStateMachineInfo returns the full order lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		"description":     "Farm Market Order Lifecycle State Machine",
	})
}

type promoOffer struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

var farmerOffers = []promoOffer{
	{Title: "Bulk Seed Discount", Description: "Save 15% on maize and veg seeds this month", Action: "View Seeds"},
	{Title: "Fertilizer Bundle", Description: "R200 off per ton with compost bundle", Action: "See Bundles"},
	{Title: "Market Demand: Leafy Greens", Description: "High demand in Gauteng this week", Action: "List Produce"},
}

var customerOffers = []promoOffer{
	{Title: "R50 Off First Order", Description: "On orders over R200 (limited time)", Action: "Shop Now"},
	{Title: "Free Delivery Weekend", Description: "Free delivery on all orders this weekend", Action: "Browse Deals"},
	{Title: "Organic Produce Sale", Description: "20% off organic vegetables & fruits", Action: "View Organics"},
}

// GetPromo returns a random promotional offer. Farmers get trade offers,
// everyone else gets shopping offers.
func (h *Handler) GetPromo(c *gin.Context) {
	list := customerOffers
	if c.Query("role") == string(models.RoleFarmer) {
		list = farmerOffers
	}
	c.JSON(http.StatusOK, gin.H{"offer": list[rand.Intn(len(list))]})
}

// GetUIState exposes the store's presentation flags.
func (h *Handler) GetUIState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"is_loading":      h.store.IsLoading(),
		"show_newsletter": h.store.NewsletterVisible(),
	})
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SubscribeNewsletter simulates a newsletter signup: nothing is delivered
// anywhere, the prompt is simply hidden afterwards.
func (h *Handler) SubscribeNewsletter(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.Dispatch(store.SetNewsletterVisibility{Visible: false}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update newsletter state"})
		return
	}
	h.log.WithField("email", req.Email).Info("newsletter subscription (simulated)")
	c.JSON(http.StatusOK, gin.H{"message": "Subscribed successfully"})
}

// DismissNewsletter hides the newsletter prompt without subscribing.
func (h *Handler) DismissNewsletter(c *gin.Context) {
	if err := h.store.Dispatch(store.SetNewsletterVisibility{Visible: false}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update newsletter state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Newsletter dismissed"})
}
