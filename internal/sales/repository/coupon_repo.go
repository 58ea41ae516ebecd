package repository

import (
	"context"
	"errors"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/entity"
	"gorm.io/gorm"
)

// CouponRepository coupon storage
type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) FindAll(ctx context.Context, page, pageSize int) ([]entity.Coupon, int64, error) {
	var items []entity.Coupon
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Coupon{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *CouponRepository) FindByID(ctx context.Context, id string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *CouponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	return r.db.WithContext(ctx).Save(coupon).Error
}

func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Coupon{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}
