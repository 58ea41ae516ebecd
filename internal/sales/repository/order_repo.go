package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/entity"
	"gorm.io/gorm"
)

// OrderRepository order storage
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindAll lists orders, newest first, optionally filtered by status and date range.
func (r *OrderRepository) FindAll(ctx context.Context, page, pageSize int, status string, from, to *time.Time) ([]entity.Order, int64, error) {
	var items []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindByID loads an order with items and status history.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("updated_at ASC")
		}).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// Create persists an order with its line items.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// UpdateStatus overwrites the order status and appends the history row in one
// transaction. The update is guarded by the expected current status so two
// concurrent writers cannot both append history for the same transition.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string, history *entity.OrderStatusHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Order{}).
			Where("id = ? AND status = ?", id, fromStatus).
			Update("status", toStatus)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return httputil.ErrNotFound
		}
		return tx.Create(history).Error
	})
}

// Delete removes the order, its items and history permanently.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderStatusHistory{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.Order{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return httputil.ErrNotFound
		}
		return nil
	})
}

// FindHistory lists the status history of an order.
func (r *OrderRepository) FindHistory(ctx context.Context, orderID string) ([]entity.OrderStatusHistory, error) {
	var history []entity.OrderStatusHistory
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("updated_at ASC").
		Find(&history).Error
	return history, err
}

// CountByStatus aggregates order counts per status, optionally date-bounded.
// Aggregation runs in SQL; full collections never leave the database.
func (r *OrderRepository) CountByStatus(ctx context.Context, from, to *time.Time) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row

	query := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Select("status, COUNT(*) as count")
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}

	if err := query.Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

// SumRevenue totals order amounts for completed/delivered orders in the range.
func (r *OrderRepository) SumRevenue(ctx context.Context, from, to *time.Time) (float64, error) {
	var revenue float64
	query := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status IN ?", []string{entity.OrderStatusDelivered, entity.OrderStatusCompleted})
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}
	err := query.Scan(&revenue).Error
	return revenue, err
}
