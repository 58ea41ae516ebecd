package repository

import (
	"context"
	"errors"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/entity"
	"gorm.io/gorm"
)

// PlantRepository catalog storage
type PlantRepository struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) *PlantRepository {
	return &PlantRepository{db: db}
}

// FindAll lists plants, optionally filtered by category or name substring.
func (r *PlantRepository) FindAll(ctx context.Context, page, pageSize int, category, name string) ([]entity.Plant, int64, error) {
	var items []entity.Plant
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Plant{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("name ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *PlantRepository) FindByID(ctx context.Context, id string) (*entity.Plant, error) {
	var plant entity.Plant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&plant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &plant, nil
}

func (r *PlantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	return r.db.WithContext(ctx).Create(plant).Error
}

func (r *PlantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	return r.db.WithContext(ctx).Save(plant).Error
}

func (r *PlantRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Plant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}
