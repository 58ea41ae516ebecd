package repository

import (
	"gorm.io/gorm"
)

// Repositories sales context repository set
type Repositories struct {
	Order   *OrderRepository
	Coupon  *CouponRepository
	Visitor *VisitorRepository
}

// NewRepositories creates the sales repository set
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Order:   NewOrderRepository(db),
		Coupon:  NewCouponRepository(db),
		Visitor: NewVisitorRepository(db),
	}
}
