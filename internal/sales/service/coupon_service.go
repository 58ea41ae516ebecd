package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/repository"
	"github.com/google/uuid"
)

// CouponService discount code management
type CouponService struct {
	repo *repository.CouponRepository
}

func NewCouponService(repo *repository.CouponRepository) *CouponService {
	return &CouponService{repo: repo}
}

// CreateCouponRequest new coupon payload
type CreateCouponRequest struct {
	Code        string     `json:"code" binding:"required"`
	DiscountPct float64    `json:"discount_pct" binding:"required"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// UpdateCouponRequest partial coupon update
type UpdateCouponRequest struct {
	DiscountPct *float64   `json:"discount_pct"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Active      *bool      `json:"active"`
}

func (s *CouponService) Create(ctx context.Context, req *CreateCouponRequest) (*entity.Coupon, error) {
	if req.DiscountPct <= 0 || req.DiscountPct > 100 {
		return nil, fmt.Errorf("%w: discount must be between 0 and 100", httputil.ErrValidation)
	}
	coupon := &entity.Coupon{
		ID:          uuid.New().String()[:32],
		Code:        req.Code,
		DiscountPct: req.DiscountPct,
		ExpiresAt:   req.ExpiresAt,
		Active:      true,
	}
	if err := s.repo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) List(ctx context.Context, page, pageSize int) ([]entity.Coupon, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize)
}

func (s *CouponService) Get(ctx context.Context, id string) (*entity.Coupon, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CouponService) Update(ctx context.Context, id string, req *UpdateCouponRequest) (*entity.Coupon, error) {
	coupon, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.DiscountPct != nil {
		if *req.DiscountPct <= 0 || *req.DiscountPct > 100 {
			return nil, fmt.Errorf("%w: discount must be between 0 and 100", httputil.ErrValidation)
		}
		coupon.DiscountPct = *req.DiscountPct
	}
	if req.ExpiresAt != nil {
		coupon.ExpiresAt = req.ExpiresAt
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if err := s.repo.Update(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
