package entity

import "time"

// Order customer order
type Order struct {
	ID            string  `json:"id" gorm:"primaryKey;size:32"`
	CustomerName  string  `json:"customer_name" gorm:"size:100;not null"`
	CustomerEmail string  `json:"customer_email" gorm:"size:200;not null"`
	Status        string  `json:"status" gorm:"size:20;not null;default:pending;index"`
	PaymentMethod string  `json:"payment_method" gorm:"size:50"`
	CouponCode    *string `json:"coupon_code" gorm:"size:50"`
	TotalAmount   float64 `json:"total_amount" gorm:"type:decimal(15,2);default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items   []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	History []OrderStatusHistory `json:"history,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "sales_orders"
}

// OrderItem order line. Item lines carry the plant name denormalized; the
// grower-facing plant catalog is a separate bounded context.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;size:32"`
	OrderID   string  `json:"order_id" gorm:"size:32;not null;index"`
	Name      string  `json:"name" gorm:"size:200;not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(12,2);not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (OrderItem) TableName() string {
	return "sales_order_items"
}

// OrderStatusHistory append-only log of order state changes
type OrderStatusHistory struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	OrderID   string    `json:"order_id" gorm:"size:32;not null;index"`
	Status    string    `json:"status" gorm:"size:20;not null"`
	UpdatedBy string    `json:"updated_by" gorm:"size:100"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderStatusHistory) TableName() string {
	return "sales_order_status_history"
}

// Order statuses, the one canonical vocabulary, lowercase everywhere.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusRejected  = "rejected"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// AllOrderStatuses in lifecycle order, for reporting.
var AllOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusRejected,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// ValidOrderTransitions lists the legal status moves. Jumps not listed here
// (pending→completed, oscillation between terminal states) are rejected.
var ValidOrderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusRejected, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusRejected:  {},
	OrderStatusCancelled: {},
}

// CanTransitionOrder reports whether from→to is legal. Same-state writes are
// allowed and treated as idempotent no-ops by the service.
func CanTransitionOrder(from, to string) bool {
	if from == to {
		return true
	}
	for _, s := range ValidOrderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsOrderStatus reports whether s is a known order status.
func IsOrderStatus(s string) bool {
	_, ok := ValidOrderTransitions[s]
	return ok
}
