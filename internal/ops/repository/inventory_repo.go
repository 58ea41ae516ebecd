package repository

import (
	"context"
	"errors"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/entity"
	"gorm.io/gorm"
)

// StockRepository inventory storage
type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// FindAll lists stock lines. lowOnly restricts to lines at or below their
// reorder threshold.
func (r *StockRepository) FindAll(ctx context.Context, page, pageSize int, lowOnly bool) ([]entity.Stock, int64, error) {
	var items []entity.Stock
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Stock{})
	if lowOnly {
		query = query.Where("quantity <= reorder_threshold")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("plant_name ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *StockRepository) FindByID(ctx context.Context, id string) (*entity.Stock, error) {
	var stock entity.Stock
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

func (r *StockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

func (r *StockRepository) Update(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// AdjustQuantity adds delta to the stored quantity atomically.
func (r *StockRepository) AdjustQuantity(ctx context.Context, id string, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}

func (r *StockRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Stock{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}

// SupplierRepository supplier storage
type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) FindAll(ctx context.Context, page, pageSize int) ([]entity.Supplier, int64, error) {
	var items []entity.Supplier
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Supplier{})
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

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *SupplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete removes the supplier. Stock lines and replenishment orders keep
// their supplier id, dangling references are allowed.
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Supplier{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}

// OrderStockRepository replenishment order storage
type OrderStockRepository struct {
	db *gorm.DB
}

func NewOrderStockRepository(db *gorm.DB) *OrderStockRepository {
	return &OrderStockRepository{db: db}
}

func (r *OrderStockRepository) FindAll(ctx context.Context, page, pageSize int, status string) ([]entity.OrderStock, int64, error) {
	var items []entity.OrderStock
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.OrderStock{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("ordered_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

func (r *OrderStockRepository) FindByID(ctx context.Context, id string) (*entity.OrderStock, error) {
	var order entity.OrderStock
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderStockRepository) Create(ctx context.Context, order *entity.OrderStock) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderStockRepository) Update(ctx context.Context, order *entity.OrderStock) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *OrderStockRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.OrderStock{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}
