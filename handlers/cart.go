package handlers

import (
	"net/http"

	"campus-canteen-api/cart"
	"campus-canteen-api/config"
	"campus-canteen-api/middleware"
	"campus-canteen-api/models"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity"`
}

type SetCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// fetchCartRows loads the catalog rows for the IDs present in the cart.
func fetchCartRows(c cart.Cart) ([]models.MenuItem, error) {
	if len(c) == 0 {
		return nil, nil
	}
	var items []models.MenuItem
	err := config.DB.Where("id IN ?", c.ItemIDs()).Find(&items).Error
	return items, err
}

// GetCart returns the caller's cart materialized against the live catalog.
// Entries whose item has vanished from the catalog are reported in
// missing_item_ids and excluded from the subtotal.
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	userCart, err := config.Carts.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	rows, err := fetchCartRows(userCart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	materialized := cart.Materialize(userCart, rows)
	c.JSON(http.StatusOK, gin.H{
		"cart":       materialized,
		"item_count": userCart.Count(),
	})
}

// AddCartItem increments an item's quantity (default +1)
func AddCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	userCart, err := config.Carts.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	userCart.Add(req.MenuItemID, req.Quantity)

	if err := config.Carts.Set(c.Request.Context(), userID, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Added to cart",
		"cart":       userCart,
		"item_count": userCart.Count(),
	})
}

// SetCartItem sets an item's quantity outright; zero or negative removes it
func SetCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID := c.Param("itemId")

	var req SetCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userCart, err := config.Carts.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	userCart.Set(itemID, req.Quantity)

	if err := config.Carts.Set(c.Request.Context(), userID, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Cart updated",
		"cart":       userCart,
		"item_count": userCart.Count(),
	})
}

// RemoveCartItem deletes a single entry from the cart
func RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID := c.Param("itemId")

	userCart, err := config.Carts.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	userCart.Remove(itemID)

	if err := config.Carts.Set(c.Request.Context(), userID, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Item removed from cart",
		"cart":       userCart,
		"item_count": userCart.Count(),
	})
}

// ClearCart empties the caller's cart
func ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := config.Carts.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
