package models

import "time"

// OrderStatus represents all possible states of a canteen order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod is how the customer chose to pay. Payment is recorded,
// never processed.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

type Order struct {
	ID                    string        `json:"id" gorm:"primaryKey"`
	UserID                uint          `json:"user_id" gorm:"not null"`
	User                  User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status                OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	TotalAmount           float64       `json:"total_amount"`
	PaymentMethod         PaymentMethod `json:"payment_method" gorm:"not null"`
	PaymentStatus         PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`
	DeliveryNotes         string        `json:"delivery_notes"`
	EstimatedDeliveryTime time.Time     `json:"estimated_delivery_time"`
	Items                 []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

type OrderItem struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	OrderID     string   `json:"order_id" gorm:"not null"`
	MenuItemID  string   `json:"menu_item_id" gorm:"not null"`
	MenuItem    MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity    int      `json:"quantity" gorm:"not null"`
	PriceAtTime float64  `json:"price_at_time" gorm:"not null"` // snapshot price at time of order
	Name        string   `json:"name"`                          // snapshot name
}

func (OrderItem) TableName() string { return "order_items" }
