package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/repository"
	"github.com/google/uuid"
)

// InventoryService stock lines, suppliers and replenishment orders
type InventoryService struct {
	stockRepo      *repository.StockRepository
	supplierRepo   *repository.SupplierRepository
	orderStockRepo *repository.OrderStockRepository
}

func NewInventoryService(stockRepo *repository.StockRepository, supplierRepo *repository.SupplierRepository, orderStockRepo *repository.OrderStockRepository) *InventoryService {
	return &InventoryService{
		stockRepo:      stockRepo,
		supplierRepo:   supplierRepo,
		orderStockRepo: orderStockRepo,
	}
}

// CreateStockRequest new stock line
type CreateStockRequest struct {
	PlantName        string  `json:"plant_name" binding:"required"`
	Quantity         int     `json:"quantity"`
	Unit             string  `json:"unit" binding:"required"`
	ReorderThreshold int     `json:"reorder_threshold"`
	SupplierID       *string `json:"supplier_id"`
}

// UpdateStockRequest partial stock update
type UpdateStockRequest struct {
	Quantity         *int    `json:"quantity"`
	Unit             *string `json:"unit"`
	ReorderThreshold *int    `json:"reorder_threshold"`
	SupplierID       *string `json:"supplier_id"`
}

func (s *InventoryService) CreateStock(ctx context.Context, req *CreateStockRequest) (*entity.Stock, error) {
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", httputil.ErrValidation)
	}
	stock := &entity.Stock{
		ID:               uuid.New().String()[:32],
		PlantName:        req.PlantName,
		Quantity:         req.Quantity,
		Unit:             req.Unit,
		ReorderThreshold: req.ReorderThreshold,
		SupplierID:       req.SupplierID,
	}
	if err := s.stockRepo.Create(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *InventoryService) ListStock(ctx context.Context, page, pageSize int, lowOnly bool) ([]entity.Stock, int64, error) {
	return s.stockRepo.FindAll(ctx, page, pageSize, lowOnly)
}

func (s *InventoryService) GetStock(ctx context.Context, id string) (*entity.Stock, error) {
	return s.stockRepo.FindByID(ctx, id)
}

func (s *InventoryService) UpdateStock(ctx context.Context, id string, req *UpdateStockRequest) (*entity.Stock, error) {
	stock, err := s.stockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity cannot be negative", httputil.ErrValidation)
		}
		stock.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		stock.Unit = *req.Unit
	}
	if req.ReorderThreshold != nil {
		stock.ReorderThreshold = *req.ReorderThreshold
	}
	if req.SupplierID != nil {
		stock.SupplierID = req.SupplierID
	}
	if err := s.stockRepo.Update(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *InventoryService) DeleteStock(ctx context.Context, id string) error {
	return s.stockRepo.Delete(ctx, id)
}

// CreateSupplierRequest new supplier
type CreateSupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	ContactName string `json:"contact_name"`
}

// UpdateSupplierRequest partial supplier update
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	ContactName *string `json:"contact_name"`
}

func (s *InventoryService) CreateSupplier(ctx context.Context, req *CreateSupplierRequest) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		ID:          uuid.New().String()[:32],
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		ContactName: req.ContactName,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *InventoryService) ListSuppliers(ctx context.Context, page, pageSize int) ([]entity.Supplier, int64, error) {
	return s.supplierRepo.FindAll(ctx, page, pageSize)
}

func (s *InventoryService) GetSupplier(ctx context.Context, id string) (*entity.Supplier, error) {
	return s.supplierRepo.FindByID(ctx, id)
}

func (s *InventoryService) UpdateSupplier(ctx context.Context, id string, req *UpdateSupplierRequest) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.ContactName != nil {
		supplier.ContactName = *req.ContactName
	}
	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *InventoryService) DeleteSupplier(ctx context.Context, id string) error {
	return s.supplierRepo.Delete(ctx, id)
}

// CreateOrderStockRequest new replenishment order
type CreateOrderStockRequest struct {
	SupplierID string `json:"supplier_id" binding:"required"`
	PlantName  string `json:"plant_name" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Unit       string `json:"unit" binding:"required"`
}

func (s *InventoryService) CreateOrderStock(ctx context.Context, req *CreateOrderStockRequest) (*entity.OrderStock, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", httputil.ErrValidation)
	}
	// The supplier must exist at order time; it may be deleted later.
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}
	order := &entity.OrderStock{
		ID:         uuid.New().String()[:32],
		SupplierID: req.SupplierID,
		PlantName:  req.PlantName,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Status:     entity.OrderStockStatusPending,
		OrderedAt:  time.Now(),
	}
	if err := s.orderStockRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *InventoryService) ListOrderStock(ctx context.Context, page, pageSize int, status string) ([]entity.OrderStock, int64, error) {
	if status != "" && !entity.IsOrderStockStatus(status) {
		return nil, 0, fmt.Errorf("%w: unknown status %q", httputil.ErrValidation, status)
	}
	return s.orderStockRepo.FindAll(ctx, page, pageSize, status)
}

func (s *InventoryService) GetOrderStock(ctx context.Context, id string) (*entity.OrderStock, error) {
	return s.orderStockRepo.FindByID(ctx, id)
}

// ReceiveOrderStock marks the replenishment order received and adds its
// quantity to the matching stock line when one exists.
func (s *InventoryService) ReceiveOrderStock(ctx context.Context, id, stockID string) (*entity.OrderStock, error) {
	order, err := s.orderStockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.OrderStockStatusReceived {
		return order, nil
	}
	if order.Status == entity.OrderStockStatusCancelled {
		return nil, fmt.Errorf("%w: cannot receive a cancelled replenishment order", httputil.ErrValidation)
	}

	now := time.Now()
	order.Status = entity.OrderStockStatusReceived
	order.ReceivedAt = &now
	if err := s.orderStockRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if stockID != "" {
		if err := s.stockRepo.AdjustQuantity(ctx, stockID, order.Quantity); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// CancelOrderStock cancels a pending replenishment order.
func (s *InventoryService) CancelOrderStock(ctx context.Context, id string) (*entity.OrderStock, error) {
	order, err := s.orderStockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.OrderStockStatusCancelled {
		return order, nil
	}
	if order.Status == entity.OrderStockStatusReceived {
		return nil, fmt.Errorf("%w: cannot cancel a received replenishment order", httputil.ErrValidation)
	}
	order.Status = entity.OrderStockStatusCancelled
	if err := s.orderStockRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *InventoryService) DeleteOrderStock(ctx context.Context, id string) error {
	return s.orderStockRepo.Delete(ctx, id)
}
