package handlers

import (
	"net/http"

	"campus-canteen-api/config"
	"campus-canteen-api/models"
	"campus-canteen-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetMenu returns all available menu items grouped by category (public).
// Items are ordered by category ascending; within a category the backend's
// natural order is kept.
func GetMenu(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Where("is_available = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Order("category asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	categories, grouped := models.GroupByCategory(items)

	c.JSON(http.StatusOK, gin.H{
		"count":      len(items),
		"categories": categories,
		"menu":       grouped,
	})
}

// GetMenuItem returns a single menu item by ID (public)
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// GetStateMachineInfo returns the conventional order lifecycle for docs
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"delivered", "cancelled"},
		"description":     "Canteen Order Lifecycle State Machine (admin updates are not restricted to it)",
	})
}
