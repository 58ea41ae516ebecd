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

// VisitorService records storefront visits for traffic reporting.
type VisitorService struct {
	repo *repository.VisitorRepository
}

func NewVisitorService(repo *repository.VisitorRepository) *VisitorService {
	return &VisitorService{repo: repo}
}

// Record stores one visit stamped with the server clock.
func (s *VisitorService) Record(ctx context.Context, sourceIP string) (*entity.Visit, error) {
	visit := &entity.Visit{
		ID:        uuid.New().String()[:32],
		SourceIP:  sourceIP,
		VisitedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// Buckets aggregates visit counts per day, month or year.
func (s *VisitorService) Buckets(ctx context.Context, granularity string, from, to *time.Time) ([]repository.VisitBucket, error) {
	switch granularity {
	case "day", "month", "year":
	default:
		return nil, fmt.Errorf("%w: granularity must be day, month or year", httputil.ErrValidation)
	}
	return s.repo.CountByBucket(ctx, granularity, from, to)
}

// Total returns the all-time visit count.
func (s *VisitorService) Total(ctx context.Context) (int64, error) {
	return s.repo.CountTotal(ctx, nil, nil)
}
