package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/service"
	"github.com/gin-gonic/gin"
)

// CouponHandler coupon endpoints
type CouponHandler struct {
	svc *service.CouponService
}

func NewCouponHandler(svc *service.CouponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

// CreateCoupon new discount code
// POST /api/v1/coupons
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req service.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid coupon payload: "+err.Error())
		return
	}

	coupon, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create coupon")
		return
	}

	httputil.Created(c, coupon)
}

// ListCoupons coupon list
// GET /api/v1/coupons
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		httputil.Fail(c, err, "list coupons")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetCoupon coupon detail
// GET /api/v1/coupons/:id
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	coupon, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get coupon")
		return
	}
	httputil.Success(c, coupon)
}

// UpdateCoupon partial coupon update
// PUT /api/v1/coupons/:id
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	var req service.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid coupon payload: "+err.Error())
		return
	}

	coupon, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.Fail(c, err, "update coupon")
		return
	}

	httputil.Success(c, coupon)
}

// DeleteCoupon removes a coupon
// DELETE /api/v1/coupons/:id
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err, "delete coupon")
		return
	}
	httputil.Success(c, gin.H{"message": "coupon deleted"})
}
