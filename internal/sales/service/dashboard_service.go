package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/repository"
	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const dashboardCacheKey = "crips:dashboard:sales"

// DashboardSummary aggregated sales figures for the manager view.
type DashboardSummary struct {
	TotalOrders    int64                    `json:"total_orders"`
	OrdersByStatus map[string]int64         `json:"orders_by_status"`
	Revenue        float64                  `json:"revenue"`
	TotalVisits    int64                    `json:"total_visits"`
	VisitsByDay    []repository.VisitBucket `json:"visits_by_day"`
	GeneratedAt    time.Time                `json:"generated_at"`
}

// DashboardService computes sales summaries with a short-lived Redis cache
// in front of the SQL aggregation.
type DashboardService struct {
	orderRepo   *repository.OrderRepository
	visitorRepo *repository.VisitorRepository
	rdb         *redis.Client
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewDashboardService(orderRepo *repository.OrderRepository, visitorRepo *repository.VisitorRepository, rdb *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &DashboardService{
		orderRepo:   orderRepo,
		visitorRepo: visitorRepo,
		rdb:         rdb,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Summary returns the dashboard figures for the given window. Unbounded
// windows are served from cache when available; cache failures fall through
// to the database.
func (s *DashboardService) Summary(ctx context.Context, from, to *time.Time) (*DashboardSummary, error) {
	cacheable := from == nil && to == nil && s.rdb != nil

	if cacheable {
		if raw, err := s.rdb.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var cached DashboardSummary
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	counts, err := s.orderRepo.CountByStatus(ctx, from, to)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, n := range counts {
		total += n
	}

	revenue, err := s.orderRepo.SumRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}

	visits, err := s.visitorRepo.CountTotal(ctx, from, to)
	if err != nil {
		return nil, err
	}
	buckets, err := s.visitorRepo.CountByBucket(ctx, "day", from, to)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TotalOrders:    total,
		OrdersByStatus: counts,
		Revenue:        revenue,
		TotalVisits:    visits,
		VisitsByDay:    buckets,
		GeneratedAt:    time.Now(),
	}

	if cacheable {
		if raw, err := json.Marshal(summary); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, raw, s.cacheTTL).Err(); err != nil && s.logger != nil {
				s.logger.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}

	return summary, nil
}

// ExportOrders renders the orders within the window as an xlsx workbook.
func (s *DashboardService) ExportOrders(ctx context.Context, from, to *time.Time) (*excelize.File, error) {
	orders, _, err := s.orderRepo.FindAll(ctx, 1, 10000, "", from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Orders"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Order ID", "Customer", "Email", "Status", "Payment Method", "Total Amount", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, order := range orders {
		values := []interface{}{
			order.ID,
			order.CustomerName,
			order.CustomerEmail,
			order.Status,
			order.PaymentMethod,
			order.TotalAmount,
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}

// OrderCountsByStatus exposes raw counts for the status widget.
func (s *DashboardService) OrderCountsByStatus(ctx context.Context, from, to *time.Time) (map[string]int64, error) {
	counts, err := s.orderRepo.CountByStatus(ctx, from, to)
	if err != nil {
		return nil, err
	}
	for _, status := range entity.AllOrderStatuses {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}
	return counts, nil
}
