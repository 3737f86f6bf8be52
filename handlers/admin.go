package handlers

import (
	"log"
	"net/http"
	"strconv"

	"campus-canteen-api/config"
	"campus-canteen-api/models"
	"campus-canteen-api/statemachine"

	"github.com/gin-gonic/gin"
)

const defaultRecentOrderLimit = 50

// AdminGetOrders returns recent orders across all users, newest-first
func AdminGetOrders(c *gin.Context) {
	limit := defaultRecentOrderLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	query := config.DB.Preload("Items.MenuItem").Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Limit(limit).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(orders),
		"orders": orders,
	})
}

// AdminGetStats aggregates over the full order set: total count, revenue
// summed across every order regardless of status, and the pending backlog.
// This is a separate read from AdminGetOrders and is not transactionally
// consistent with it.
func AdminGetStats(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Select("status", "total_amount").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	var totalRevenue float64
	pending := 0
	for _, o := range orders {
		totalRevenue += o.TotalAmount
		if o.Status == models.StatusPending {
			pending++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_orders":   len(orders),
		"total_revenue":  totalRevenue,
		"pending_orders": pending,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus sets an order's status. The write is unconditional:
// any status can follow any other, so delivered and cancelled orders can be
// reopened. Irregular jumps are flagged in the response and logged but not
// blocked.
func AdminUpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + string(req.Status)})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	resp := gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  req.Status,
	}
	if err := statemachine.CanTransition(prevStatus, req.Status); err != nil {
		log.Printf("order %s: %v", order.ID, err)
		resp["warning"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// AdminGetAllUsers returns all users — admin only
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}
