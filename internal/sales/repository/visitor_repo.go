package repository

import (
	"context"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/entity"
	"gorm.io/gorm"
)

// VisitorRepository write-only visit log with SQL-side aggregation
type VisitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

func (r *VisitorRepository) Create(ctx context.Context, visit *entity.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

// VisitBucket one aggregation bucket
type VisitBucket struct {
	Bucket time.Time `json:"bucket"`
	Count  int64     `json:"count"`
}

// CountByBucket buckets visit counts with date_trunc. granularity must be one
// of day/month/year (validated by the service).
func (r *VisitorRepository) CountByBucket(ctx context.Context, granularity string, from, to *time.Time) ([]VisitBucket, error) {
	var buckets []VisitBucket

	query := r.db.WithContext(ctx).
		Model(&entity.Visit{}).
		Select("date_trunc(?, visited_at) AS bucket, COUNT(*) AS count", granularity)
	if from != nil {
		query = query.Where("visited_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("visited_at < ?", *to)
	}

	err := query.
		Group("bucket").
		Order("bucket ASC").
		Scan(&buckets).Error
	return buckets, err
}

// CountTotal counts visits in the range.
func (r *VisitorRepository) CountTotal(ctx context.Context, from, to *time.Time) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&entity.Visit{})
	if from != nil {
		query = query.Where("visited_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("visited_at < ?", *to)
	}
	err := query.Count(&total).Error
	return total, err
}
