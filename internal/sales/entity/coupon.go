package entity

import "time"

// Coupon discount coupon referenced by orders
type Coupon struct {
	ID          string     `json:"id" gorm:"primaryKey;size:32"`
	Code        string     `json:"code" gorm:"size:50;uniqueIndex;not null"`
	DiscountPct float64    `json:"discount_pct" gorm:"type:decimal(5,2);not null"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Active      bool       `json:"active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Coupon) TableName() string {
	return "sales_coupons"
}
