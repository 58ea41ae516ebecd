package entity

import "time"

// Shipment an outbound delivery run
type Shipment struct {
	ID           string    `json:"id" gorm:"primaryKey;size:32"`
	OrderID      *string   `json:"order_id" gorm:"size:32;index"`
	Driver       string    `json:"driver" gorm:"size:100"`
	Vehicle      string    `json:"vehicle" gorm:"size:100"`
	Destination  string    `json:"destination" gorm:"size:500"`
	DeliveryDate time.Time `json:"delivery_date" gorm:"not null"`
	Status       string    `json:"status" gorm:"size:20;not null;default:scheduled;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Shipment) TableName() string {
	return "ops_shipments"
}

// Shipment statuses
const (
	ShipmentStatusScheduled = "scheduled"
	ShipmentStatusInTransit = "in_transit"
	ShipmentStatusDelivered = "delivered"
	ShipmentStatusCancelled = "cancelled"
)

// ValidShipmentTransitions lists the legal shipment moves. Delivered and
// cancelled are terminal; a run can be cancelled until it is delivered.
var ValidShipmentTransitions = map[string][]string{
	ShipmentStatusScheduled: {ShipmentStatusInTransit, ShipmentStatusCancelled},
	ShipmentStatusInTransit: {ShipmentStatusDelivered, ShipmentStatusCancelled},
	ShipmentStatusDelivered: {},
	ShipmentStatusCancelled: {},
}

// CanTransitionShipment reports whether from→to is legal. Same-state writes
// are allowed and treated as idempotent no-ops by the service.
func CanTransitionShipment(from, to string) bool {
	if from == to {
		return true
	}
	for _, s := range ValidShipmentTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsShipmentStatus reports whether s is a known shipment status.
func IsShipmentStatus(s string) bool {
	_, ok := ValidShipmentTransitions[s]
	return ok
}
