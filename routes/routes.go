package routes

import (
	"campus-canteen-api/handlers"
	"campus-canteen-api/middleware"
	"campus-canteen-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu (no auth needed)
		public.GET("/menu", handlers.GetMenu)
		public.GET("/menu/items/:id", handlers.GetMenuItem)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Cart
		auth.GET("/cart", handlers.GetCart)
		auth.POST("/cart/items", handlers.AddCartItem)
		auth.PUT("/cart/items/:itemId", handlers.SetCartItem)
		auth.DELETE("/cart/items/:itemId", handlers.RemoveCartItem)
		auth.DELETE("/cart", handlers.ClearCart)

		// Orders
		auth.POST("/orders", handlers.PlaceOrder)
		auth.GET("/orders", handlers.GetMyOrders)
		auth.GET("/orders/:id", handlers.GetOrderDetail)
		auth.PUT("/orders/:id/cancel", handlers.CancelOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetOrders)
		admin.GET("/stats", handlers.AdminGetStats)
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
	}
}
