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

// ShipmentService delivery run lifecycle
type ShipmentService struct {
	repo *repository.ShipmentRepository
}

func NewShipmentService(repo *repository.ShipmentRepository) *ShipmentService {
	return &ShipmentService{repo: repo}
}

// CreateShipmentRequest new delivery run
type CreateShipmentRequest struct {
	OrderID      *string   `json:"order_id"`
	Driver       string    `json:"driver"`
	Vehicle      string    `json:"vehicle"`
	Destination  string    `json:"destination" binding:"required"`
	DeliveryDate time.Time `json:"delivery_date" binding:"required"`
}

// UpdateShipmentRequest partial shipment update, status moves go through
// UpdateStatus instead.
type UpdateShipmentRequest struct {
	Driver       *string    `json:"driver"`
	Vehicle      *string    `json:"vehicle"`
	Destination  *string    `json:"destination"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

func (s *ShipmentService) Create(ctx context.Context, req *CreateShipmentRequest) (*entity.Shipment, error) {
	shipment := &entity.Shipment{
		ID:           uuid.New().String()[:32],
		OrderID:      req.OrderID,
		Driver:       req.Driver,
		Vehicle:      req.Vehicle,
		Destination:  req.Destination,
		DeliveryDate: req.DeliveryDate,
		Status:       entity.ShipmentStatusScheduled,
	}
	if err := s.repo.Create(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *ShipmentService) List(ctx context.Context, page, pageSize int, status string) ([]entity.Shipment, int64, error) {
	if status != "" && !entity.IsShipmentStatus(status) {
		return nil, 0, fmt.Errorf("%w: unknown status %q", httputil.ErrValidation, status)
	}
	return s.repo.FindAll(ctx, page, pageSize, status)
}

func (s *ShipmentService) Get(ctx context.Context, id string) (*entity.Shipment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ShipmentService) Update(ctx context.Context, id string, req *UpdateShipmentRequest) (*entity.Shipment, error) {
	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Driver != nil {
		shipment.Driver = *req.Driver
	}
	if req.Vehicle != nil {
		shipment.Vehicle = *req.Vehicle
	}
	if req.Destination != nil {
		shipment.Destination = *req.Destination
	}
	if req.DeliveryDate != nil {
		shipment.DeliveryDate = *req.DeliveryDate
	}
	if err := s.repo.Update(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

// UpdateShipmentStatusRequest status change payload
type UpdateShipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves the run through scheduled, in_transit, delivered.
// Cancellation is allowed until the run is delivered. Repeating the current
// status is an idempotent no-op.
func (s *ShipmentService) UpdateStatus(ctx context.Context, id string, req *UpdateShipmentStatusRequest) (*entity.Shipment, error) {
	if !entity.IsShipmentStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", httputil.ErrValidation, req.Status)
	}

	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if shipment.Status == req.Status {
		return shipment, nil
	}

	if !entity.CanTransitionShipment(shipment.Status, req.Status) {
		return nil, fmt.Errorf("%w: cannot move shipment from %s to %s", httputil.ErrValidation, shipment.Status, req.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, shipment.Status, req.Status); err != nil {
		return nil, err
	}
	shipment.Status = req.Status
	return shipment, nil
}

func (s *ShipmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
