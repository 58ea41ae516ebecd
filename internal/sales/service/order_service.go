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

// OrderNotifier enqueues a customer notification for an order status change.
// Implemented by the notify context; nil means notifications are disabled.
type OrderNotifier interface {
	EnqueueOrderStatus(ctx context.Context, to, name, orderID, status string) error
}

// OrderEventPublisher publishes order status-change events to the audit stream.
type OrderEventPublisher interface {
	PublishOrderStatus(orderID, fromStatus, toStatus, updatedBy string) error
}

// OrderService order lifecycle
type OrderService struct {
	repo       *repository.OrderRepository
	couponRepo *repository.CouponRepository
	notifier   OrderNotifier
	publisher  OrderEventPublisher
}

func NewOrderService(repo *repository.OrderRepository, couponRepo *repository.CouponRepository) *OrderService {
	return &OrderService{repo: repo, couponRepo: couponRepo}
}

// SetNotifier injects the notification outbox.
func (s *OrderService) SetNotifier(n OrderNotifier) {
	s.notifier = n
}

// SetEventPublisher injects the audit stream producer.
func (s *OrderService) SetEventPublisher(p OrderEventPublisher) {
	s.publisher = p
}

// OrderItemInput one order line
type OrderItemInput struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"required"`
}

// CreateOrderRequest new order payload
type CreateOrderRequest struct {
	CustomerName  string           `json:"customer_name" binding:"required"`
	CustomerEmail string           `json:"customer_email" binding:"required,email"`
	PaymentMethod string           `json:"payment_method"`
	CouponCode    *string          `json:"coupon_code"`
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// Create opens an order in pending with one initial history row.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error) {
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", httputil.ErrValidation)
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: item unit price cannot be negative", httputil.ErrValidation)
		}
	}

	var discountPct float64
	if req.CouponCode != nil && *req.CouponCode != "" {
		coupon, err := s.couponRepo.FindByCode(ctx, *req.CouponCode)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown coupon code", httputil.ErrValidation)
		}
		if !coupon.Active || (coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(time.Now())) {
			return nil, fmt.Errorf("%w: coupon is not active", httputil.ErrValidation)
		}
		discountPct = coupon.DiscountPct
	}

	orderID := uuid.New().String()[:32]
	var total float64
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, in := range req.Items {
		items = append(items, entity.OrderItem{
			ID:        uuid.New().String()[:32],
			OrderID:   orderID,
			Name:      in.Name,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
		})
		total += float64(in.Quantity) * in.UnitPrice
	}
	if discountPct > 0 {
		total = total * (100 - discountPct) / 100
	}

	order := &entity.Order{
		ID:            orderID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        entity.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		CouponCode:    req.CouponCode,
		TotalAmount:   total,
		Items:         items,
		History: []entity.OrderStatusHistory{{
			ID:        uuid.New().String()[:32],
			OrderID:   orderID,
			Status:    entity.OrderStatusPending,
			UpdatedBy: req.CustomerName,
			UpdatedAt: time.Now(),
		}},
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns orders newest first.
func (s *OrderService) List(ctx context.Context, page, pageSize int, status string, from, to *time.Time) ([]entity.Order, int64, error) {
	if status != "" && !entity.IsOrderStatus(status) {
		return nil, 0, fmt.Errorf("%w: unknown status %q", httputil.ErrValidation, status)
	}
	return s.repo.FindAll(ctx, page, pageSize, status, from, to)
}

// Get loads an order with items and history.
func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateOrderStatusRequest status change payload
type UpdateOrderStatusRequest struct {
	Status    string `json:"status" binding:"required"`
	UpdatedBy string `json:"updated_by" binding:"required"`
}

// UpdateStatus moves the order through the canonical lifecycle. Moves not in
// the adjacency table are rejected; repeating the current status is an
// idempotent no-op and appends no history. On a real transition the customer
// notification is enqueued durably and the audit event published.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, req *UpdateOrderStatusRequest) (*entity.Order, error) {
	if !entity.IsOrderStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", httputil.ErrValidation, req.Status)
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == req.Status {
		return order, nil
	}

	if !entity.CanTransitionOrder(order.Status, req.Status) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", httputil.ErrValidation, order.Status, req.Status)
	}

	fromStatus := order.Status
	history := &entity.OrderStatusHistory{
		ID:        uuid.New().String()[:32],
		OrderID:   id,
		Status:    req.Status,
		UpdatedBy: req.UpdatedBy,
		UpdatedAt: time.Now(),
	}
	if err := s.repo.UpdateStatus(ctx, id, fromStatus, req.Status, history); err != nil {
		return nil, err
	}

	order.Status = req.Status
	order.History = append(order.History, *history)

	// Durable enqueue only; delivery happens in the dispatcher.
	if s.notifier != nil {
		if err := s.notifier.EnqueueOrderStatus(ctx, order.CustomerEmail, order.CustomerName, order.ID, req.Status); err != nil {
			return nil, err
		}
	}
	if s.publisher != nil {
		s.publisher.PublishOrderStatus(order.ID, fromStatus, req.Status, req.UpdatedBy)
	}

	return order, nil
}

// History returns the status history of an order.
func (s *OrderService) History(ctx context.Context, id string) ([]entity.OrderStatusHistory, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.FindHistory(ctx, id)
}

// Delete removes the order permanently.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
