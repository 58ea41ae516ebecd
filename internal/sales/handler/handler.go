package handler

import "github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/service"

// Handlers sales context endpoint set
type Handlers struct {
	Order     *OrderHandler
	Coupon    *CouponHandler
	Visitor   *VisitorHandler
	Dashboard *DashboardHandler
}

func NewHandlers(svcOrder *service.OrderService, svcCoupon *service.CouponService, svcVisitor *service.VisitorService, svcDashboard *service.DashboardService) *Handlers {
	return &Handlers{
		Order:     NewOrderHandler(svcOrder),
		Coupon:    NewCouponHandler(svcCoupon),
		Visitor:   NewVisitorHandler(svcVisitor),
		Dashboard: NewDashboardHandler(svcDashboard),
	}
}
