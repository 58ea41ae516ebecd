package repository

import (
	"context"
	"errors"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/entity"
	"gorm.io/gorm"
)

// FAQRepository FAQ storage
type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

// FindAll lists all FAQs, oldest first.
func (r *FAQRepository) FindAll(ctx context.Context, page, pageSize int) ([]entity.FAQ, int64, error) {
	var items []entity.FAQ
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.FAQ{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *FAQRepository) FindByID(ctx context.Context, id string) (*entity.FAQ, error) {
	var faq entity.FAQ
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&faq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &faq, nil
}

func (r *FAQRepository) Create(ctx context.Context, faq *entity.FAQ) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

func (r *FAQRepository) Update(ctx context.Context, faq *entity.FAQ) error {
	return r.db.WithContext(ctx).Save(faq).Error
}

func (r *FAQRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.FAQ{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}
