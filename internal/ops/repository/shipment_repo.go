package repository

import (
	"context"
	"errors"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/entity"
	"gorm.io/gorm"
)

// ShipmentRepository delivery run storage
type ShipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) FindAll(ctx context.Context, page, pageSize int, status string) ([]entity.Shipment, int64, error) {
	var items []entity.Shipment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Shipment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("delivery_date ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *ShipmentRepository) FindByID(ctx context.Context, id string) (*entity.Shipment, error) {
	var shipment entity.Shipment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&shipment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &shipment, nil
}

func (r *ShipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	return r.db.WithContext(ctx).Create(shipment).Error
}

func (r *ShipmentRepository) Update(ctx context.Context, shipment *entity.Shipment) error {
	return r.db.WithContext(ctx).Save(shipment).Error
}

// UpdateStatus writes the new status only when the row still holds the
// expected current status, so concurrent movers cannot double-fire a
// transition.
func (r *ShipmentRepository) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Shipment{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}

func (r *ShipmentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Shipment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}
