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

// ReadingService greenhouse sensor log
type ReadingService struct {
	repo *repository.ReadingRepository
}

func NewReadingService(repo *repository.ReadingRepository) *ReadingService {
	return &ReadingService{repo: repo}
}

// CreateReadingRequest one sensor sample
type CreateReadingRequest struct {
	PlantName    string     `json:"plant_name" binding:"required"`
	Category     string     `json:"category" binding:"required"`
	Temperature  float64    `json:"temperature"`
	Humidity     float64    `json:"humidity"`
	LightLevel   float64    `json:"light_level"`
	SoilMoisture float64    `json:"soil_moisture"`
	RecordedAt   *time.Time `json:"recorded_at"`
}

// Create validates sensor ranges and stores the sample. Out-of-range values
// are rejected, not clamped.
func (s *ReadingService) Create(ctx context.Context, req *CreateReadingRequest) (*entity.EnvironmentalReading, error) {
	if !entity.IsReadingCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", httputil.ErrValidation, req.Category)
	}
	if req.Temperature < entity.TemperatureMin || req.Temperature > entity.TemperatureMax {
		return nil, fmt.Errorf("%w: temperature must be between %.0f and %.0f", httputil.ErrValidation, entity.TemperatureMin, entity.TemperatureMax)
	}
	if req.Humidity < entity.HumidityMin || req.Humidity > entity.HumidityMax {
		return nil, fmt.Errorf("%w: humidity must be between %.0f and %.0f", httputil.ErrValidation, entity.HumidityMin, entity.HumidityMax)
	}
	if req.LightLevel < entity.LightLevelMin || req.LightLevel > entity.LightLevelMax {
		return nil, fmt.Errorf("%w: light level must be between %.0f and %.0f", httputil.ErrValidation, entity.LightLevelMin, entity.LightLevelMax)
	}
	if req.SoilMoisture < entity.SoilMoistureMin || req.SoilMoisture > entity.SoilMoistureMax {
		return nil, fmt.Errorf("%w: soil moisture must be between %.0f and %.0f", httputil.ErrValidation, entity.SoilMoistureMin, entity.SoilMoistureMax)
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	reading := &entity.EnvironmentalReading{
		ID:           uuid.New().String()[:32],
		PlantName:    req.PlantName,
		Category:     req.Category,
		Temperature:  req.Temperature,
		Humidity:     req.Humidity,
		LightLevel:   req.LightLevel,
		SoilMoisture: req.SoilMoisture,
		RecordedAt:   recordedAt,
	}
	if err := s.repo.Create(ctx, reading); err != nil {
		return nil, err
	}
	return reading, nil
}

func (s *ReadingService) List(ctx context.Context, page, pageSize int, plantName, category string, from, to *time.Time) ([]entity.EnvironmentalReading, int64, error) {
	if category != "" && !entity.IsReadingCategory(category) {
		return nil, 0, fmt.Errorf("%w: unknown category %q", httputil.ErrValidation, category)
	}
	return s.repo.FindAll(ctx, page, pageSize, plantName, category, from, to)
}

func (s *ReadingService) Get(ctx context.Context, id string) (*entity.EnvironmentalReading, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ReadingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
