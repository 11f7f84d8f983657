package routes

import (
	"github.com/gin-gonic/gin"

	"farm-market-api/handlers"
	"farm-market-api/middleware"
	"farm-market-api/models"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, jwtSecret []byte) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Catalog (no auth needed)
		public.GET("/products", h.ListProducts)
		public.GET("/products/:id", h.GetProduct)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)

		// Presentation extras
		public.GET("/promo", h.GetPromo)
		public.GET("/ui", h.GetUIState)
		public.POST("/newsletter/subscribe", h.SubscribeNewsletter)
		public.POST("/newsletter/dismiss", h.DismissNewsletter)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(jwtSecret))
	{
		auth.GET("/profile", h.GetProfile)
		auth.POST("/auth/logout", h.Logout)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(jwtSecret), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.GET("/cart", h.GetCart)
		customer.POST("/cart", h.AddToCart)
		customer.PUT("/cart/:productId", h.UpdateCartQuantity)
		customer.DELETE("/cart/:productId", h.RemoveFromCart)
		customer.DELETE("/cart", h.ClearCart)

		customer.GET("/wishlist", h.GetWishlist)
		customer.POST("/wishlist", h.AddToWishlist)
		customer.DELETE("/wishlist/:productId", h.RemoveFromWishlist)

		customer.POST("/checkout", h.Checkout)
		customer.GET("/orders", h.GetMyOrders)
		customer.GET("/orders/:id", h.GetOrderDetail)
	}

	// ── Farmer routes ──────────────────────────────────────────────
	farmer := r.Group("/api/farmer")
	farmer.Use(middleware.AuthRequired(jwtSecret), middleware.RoleRequired(models.RoleFarmer))
	{
		farmer.GET("/products", h.ListMyProducts)
		farmer.POST("/products", h.CreateProduct)
		farmer.PUT("/products/:id", h.UpdateProduct)
		farmer.DELETE("/products/:id", h.DeleteProduct)

		farmer.GET("/orders", h.GetFarmerOrders)
		farmer.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}

	// ── Driver routes ──────────────────────────────────────────────
	driver := r.Group("/api/driver")
	driver.Use(middleware.AuthRequired(jwtSecret), middleware.RoleRequired(models.RoleDriver))
	{
		driver.GET("/orders/available", h.GetAvailableDeliveries)
		driver.GET("/orders/my-deliveries", h.GetMyDeliveries)
		driver.PUT("/orders/:id/pickup", h.PickupOrder)
		driver.PUT("/orders/:id/deliver", h.DeliverOrder)
	}
}
