package entity

import "time"

// Plant grower-facing catalog record. Separate from order item lines, which
// carry plant names denormalized.
type Plant struct {
	ID          string  `json:"id" gorm:"primaryKey;size:32"`
	Name        string  `json:"name" gorm:"size:200;not null;index"`
	Species     string  `json:"species" gorm:"size:200"`
	Category    string  `json:"category" gorm:"size:100"`
	Description string  `json:"description" gorm:"type:text"`
	UnitPrice   float64 `json:"unit_price" gorm:"type:decimal(12,2);default:0"`
	ImageURL    string  `json:"image_url" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Plant) TableName() string {
	return "ops_plants"
}
