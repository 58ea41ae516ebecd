package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/entity"
	"gorm.io/gorm"
)

// ReadingRepository sensor log storage
type ReadingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

func (r *ReadingRepository) FindAll(ctx context.Context, page, pageSize int, plantName, category string, from, to *time.Time) ([]entity.EnvironmentalReading, int64, error) {
	var items []entity.EnvironmentalReading
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.EnvironmentalReading{})
	if plantName != "" {
		query = query.Where("plant_name = ?", plantName)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if from != nil {
		query = query.Where("recorded_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("recorded_at <= ?", *to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("recorded_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *ReadingRepository) FindByID(ctx context.Context, id string) (*entity.EnvironmentalReading, error) {
	var reading entity.EnvironmentalReading
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&reading).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &reading, nil
}

func (r *ReadingRepository) Create(ctx context.Context, reading *entity.EnvironmentalReading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

func (r *ReadingRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.EnvironmentalReading{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}
