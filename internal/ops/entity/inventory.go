package entity

import "time"

// Stock one inventory line. References plants and suppliers by id only, no
// cascade on delete.
type Stock struct {
	ID               string `json:"id" gorm:"primaryKey;size:32"`
	PlantName        string `json:"plant_name" gorm:"size:200;not null"`
	Quantity         int    `json:"quantity" gorm:"not null;default:0"`
	Unit             string `json:"unit" gorm:"size:20;not null"`
	ReorderThreshold int    `json:"reorder_threshold" gorm:"default:0"`
	SupplierID       *string `json:"supplier_id" gorm:"size:32;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Stock) TableName() string {
	return "ops_stocks"
}

// Supplier replenishment source
type Supplier struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	Name        string `json:"name" gorm:"size:200;not null"`
	Email       string `json:"email" gorm:"size:200"`
	Phone       string `json:"phone" gorm:"size:50"`
	Address     string `json:"address" gorm:"size:500"`
	ContactName string `json:"contact_name" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "ops_suppliers"
}

// OrderStock a replenishment order placed with a supplier
type OrderStock struct {
	ID         string     `json:"id" gorm:"primaryKey;size:32"`
	SupplierID string     `json:"supplier_id" gorm:"size:32;not null;index"`
	PlantName  string     `json:"plant_name" gorm:"size:200;not null"`
	Quantity   int        `json:"quantity" gorm:"not null"`
	Unit       string     `json:"unit" gorm:"size:20;not null"`
	Status     string     `json:"status" gorm:"size:20;not null;default:pending"`
	OrderedAt  time.Time  `json:"ordered_at"`
	ReceivedAt *time.Time `json:"received_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderStock) TableName() string {
	return "ops_order_stocks"
}

// OrderStock statuses
const (
	OrderStockStatusPending   = "pending"
	OrderStockStatusReceived  = "received"
	OrderStockStatusCancelled = "cancelled"
)

// IsOrderStockStatus reports whether s is a known replenishment status.
func IsOrderStockStatus(s string) bool {
	switch s {
	case OrderStockStatusPending, OrderStockStatusReceived, OrderStockStatusCancelled:
		return true
	}
	return false
}
