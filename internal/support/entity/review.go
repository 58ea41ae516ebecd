package entity

import "time"

// Review customer review of a storefront plant
type Review struct {
	ID           string `json:"id" gorm:"primaryKey;size:32"`
	PlantName    string `json:"plant_name" gorm:"size:200;not null;index"`
	CustomerName string `json:"customer_name" gorm:"size:100;not null"`
	Rating       int    `json:"rating" gorm:"not null"` // 1..5
	Title        string `json:"title" gorm:"size:200"`
	Body         string `json:"body" gorm:"type:text"`
	PhotoURL     string `json:"photo_url" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "support_reviews"
}
