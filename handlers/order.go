package handlers

import (
	"log"
	"net/http"
	"time"

	"campus-canteen-api/cart"
	"campus-canteen-api/config"
	"campus-canteen-api/middleware"
	"campus-canteen-api/models"
	"campus-canteen-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// estimatedDeliveryOffset is added to the order creation time to produce
// the promised delivery time.
const estimatedDeliveryOffset = 20 * time.Minute

type PlaceOrderRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required,oneof=cash online"`
	DeliveryNotes string               `json:"delivery_notes"`
}

// PlaceOrder converts the caller's cart into a persisted order. The order
// header and its lines are two separate writes with no transaction around
// them, mirroring the two independent backend calls of the checkout flow:
// a lines failure leaves an orphaned header behind. The cart is cleared
// only after both writes succeed.
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userCart, err := config.Carts.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	if len(userCart) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Your cart is empty"})
		return
	}

	rows, err := fetchCartRows(userCart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	materialized := cart.Materialize(userCart, rows)
	if len(materialized.Lines) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":            "None of the items in your cart are in the catalog anymore",
			"missing_item_ids": materialized.MissingItemIDs,
		})
		return
	}

	paymentStatus := models.PaymentStatusPending
	if req.PaymentMethod == models.PaymentOnline {
		paymentStatus = models.PaymentStatusCompleted
	}

	now := time.Now()
	order := models.Order{
		ID:                    uuid.NewString(),
		UserID:                userID,
		Status:                models.StatusPending,
		TotalAmount:           materialized.Subtotal,
		PaymentMethod:         req.PaymentMethod,
		PaymentStatus:         paymentStatus,
		DeliveryNotes:         req.DeliveryNotes,
		EstimatedDeliveryTime: now.Add(estimatedDeliveryOffset),
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	orderItems := make([]models.OrderItem, 0, len(materialized.Lines))
	for _, line := range materialized.Lines {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:     order.ID,
			MenuItemID:  line.Item.ID,
			Quantity:    line.Quantity,
			PriceAtTime: line.Item.Price,
			Name:        line.Item.Name,
		})
	}
	if err := config.DB.Create(&orderItems).Error; err != nil {
		// Header already exists with no lines; nothing compensates for it.
		log.Printf("order %s: line write failed, header orphaned: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	if err := config.Carts.Clear(c.Request.Context(), userID); err != nil {
		log.Printf("order %s: failed to clear cart for user %d: %v", order.ID, userID, err)
	}

	if err := config.DB.Preload("Items.MenuItem").First(&order, "id = ?", order.ID).Error; err != nil {
		// The order is placed; respond with the lines we just wrote.
		log.Printf("order %s: reload after create failed: %v", order.ID, err)
		order.Items = orderItems
	}

	resp := gin.H{
		"message": "Order placed successfully",
		"order":   order,
	}
	if len(materialized.MissingItemIDs) > 0 {
		resp["missing_item_ids"] = materialized.MissingItemIDs
		resp["warning"] = "Some cart items were no longer in the catalog and were not ordered"
	}
	c.JSON(http.StatusCreated, resp)
}

// GetMyOrders returns the caller's orders partitioned into active and past,
// newest-first within each partition.
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var orders []models.Order
	if err := config.DB.Preload("Items.MenuItem").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	active := make([]models.Order, 0)
	past := make([]models.Order, 0)
	for _, o := range orders {
		if statemachine.IsActive(o.Status) {
			active = append(active, o)
		} else {
			past = append(past, o)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(orders),
		"active": active,
		"past":   past,
	})
}

// GetOrderDetail returns a single order's full detail
func GetOrderDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").
		First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	elapsed := time.Since(order.CreatedAt).Minutes()
	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"minutes_elapsed": int(elapsed),
	})
}

// CancelOrder cancels an order (customer can only cancel while pending)
func CancelOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	if order.Status != models.StatusPending {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Only pending orders can be cancelled",
			"current_status": order.Status,
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}
