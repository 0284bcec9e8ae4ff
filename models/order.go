package models

import (
	"time"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/query"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order represents a complete customer order.
type Order struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID       string    `json:"-" gorm:"not null;index"`
	OrderNumber     string    `json:"order_number" gorm:"uniqueIndex;not null"`
	Subtotal        float64   `json:"subtotal" gorm:"type:numeric(12,2)"`
	Discount        float64   `json:"discount" gorm:"type:numeric(12,2)"`
	ShippingCost    float64   `json:"shipping_cost" gorm:"type:numeric(12,2)"`
	Tax             float64   `json:"tax" gorm:"type:numeric(12,2)"`
	TotalAmount     float64   `json:"total_amount" gorm:"type:numeric(12,2)"`
	Status          string    `json:"status" gorm:"not null;default:'pending';index"`
	PromoCode       *string   `json:"promo_code,omitempty"`
	DeviceType      string    `json:"-"`
	Browser         string    `json:"-"`
	OS              string    `json:"-"`
	IPAddress       string    `json:"-"`
	AddressSnapshot *string   `json:"address_snapshot,omitempty" gorm:"type:jsonb"`
	CustomerNotes   *string   `json:"customer_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem represents an individual product line in an order.
type OrderItem struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID     int64   `json:"order_id" gorm:"not null;index"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Image       string  `json:"image"`
	Size        *string `json:"size,omitempty"`
	Color       *string `json:"color,omitempty"`
	Price       float64 `json:"price" gorm:"type:numeric(12,2)"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal" gorm:"type:numeric(12,2)"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderWithItems combines an order and its items.
type OrderWithItems struct {
	Order
	Items []OrderItem `gorm:"-" json:"items"`
}

// OrderHistoryRow is the list-view shape for the order history page.
type OrderHistoryRow struct {
	ID          int64     `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderHistoryAccessor wires history rows into the query pipeline:
// searching matches the order number, the status facet filters, and
// "newest" sorts on the order date.
func OrderHistoryAccessor() query.Accessor[OrderHistoryRow] {
	return query.Accessor[OrderHistoryRow]{
		Title: func(o OrderHistoryRow) string { return o.OrderNumber },
		Price: func(o OrderHistoryRow) float64 { return o.TotalAmount },
		Date:  func(o OrderHistoryRow) time.Time { return o.CreatedAt },
		Facet: func(o OrderHistoryRow, name string) []string {
			if name == FacetStatus {
				return []string{o.Status}
			}
			return nil
		},
	}
}

// CreateOrderRequest is the checkout payload. The cart itself lives
// server-side; the request only picks the shipping address.
type CreateOrderRequest struct {
	AddressID     int64   `json:"address_id" binding:"required"`
	CustomerNotes *string `json:"customer_notes,omitempty" binding:"omitempty,max=1000"`
}
