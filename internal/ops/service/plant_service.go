package service

import (
	"context"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/repository"
	"github.com/google/uuid"
)

// PlantService grower catalog
type PlantService struct {
	repo *repository.PlantRepository
}

func NewPlantService(repo *repository.PlantRepository) *PlantService {
	return &PlantService{repo: repo}
}

// CreatePlantRequest new catalog entry
type CreatePlantRequest struct {
	Name        string  `json:"name" binding:"required"`
	Species     string  `json:"species"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	ImageURL    string  `json:"image_url"`
}

// UpdatePlantRequest partial catalog update
type UpdatePlantRequest struct {
	Name        *string  `json:"name"`
	Species     *string  `json:"species"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	UnitPrice   *float64 `json:"unit_price"`
	ImageURL    *string  `json:"image_url"`
}

func (s *PlantService) Create(ctx context.Context, req *CreatePlantRequest) (*entity.Plant, error) {
	plant := &entity.Plant{
		ID:          uuid.New().String()[:32],
		Name:        req.Name,
		Species:     req.Species,
		Category:    req.Category,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		ImageURL:    req.ImageURL,
	}
	if err := s.repo.Create(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (s *PlantService) List(ctx context.Context, page, pageSize int, category, name string) ([]entity.Plant, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, category, name)
}

func (s *PlantService) Get(ctx context.Context, id string) (*entity.Plant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PlantService) Update(ctx context.Context, id string, req *UpdatePlantRequest) (*entity.Plant, error) {
	plant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		plant.Name = *req.Name
	}
	if req.Species != nil {
		plant.Species = *req.Species
	}
	if req.Category != nil {
		plant.Category = *req.Category
	}
	if req.Description != nil {
		plant.Description = *req.Description
	}
	if req.UnitPrice != nil {
		plant.UnitPrice = *req.UnitPrice
	}
	if req.ImageURL != nil {
		plant.ImageURL = *req.ImageURL
	}
	if err := s.repo.Update(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (s *PlantService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
