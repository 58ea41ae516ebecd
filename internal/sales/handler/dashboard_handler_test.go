package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/repository"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/service"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/testutil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupDashboardTest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)

	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)

	orderSvc := service.NewOrderService(orderRepo, couponRepo)
	orderHandler := NewOrderHandler(orderSvc)
	visitorSvc := service.NewVisitorService(visitorRepo)
	visitorHandler := NewVisitorHandler(visitorSvc)
	// nil Redis client: summaries fall through to SQL
	dashboardSvc := service.NewDashboardService(orderRepo, visitorRepo, nil, 0, zap.NewNop())
	dashboardHandler := NewDashboardHandler(dashboardSvc)

	router := testutil.SetupRouter()
	router.POST("/api/v1/orders", orderHandler.CreateOrder)
	router.POST("/api/v1/visitors", visitorHandler.RecordVisit)

	api := testutil.AuthGroup(router, "/api/v1")
	api.POST("/orders/:id/status", orderHandler.UpdateStatus)
	api.GET("/dashboard/sales", dashboardHandler.GetSummary)
	api.GET("/dashboard/orders", dashboardHandler.GetOrderCounts)
	api.GET("/dashboard/visitors", visitorHandler.GetVisitStats)

	return router
}

func seedOrder(t *testing.T, router *gin.Engine, amount float64) string {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/orders", map[string]interface{}{
		"customer_name":  "Ann",
		"customer_email": "ann@example.com",
		"items": []map[string]interface{}{
			{"name": "Monstera deliciosa", "quantity": 1, "unit_price": amount},
		},
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)
}

func TestDashboardSummary(t *testing.T) {
	router := setupDashboardTest(t)
	token := testutil.DefaultTestToken()

	seedOrder(t, router, 30)
	id := seedOrder(t, router, 70)
	w := testutil.DoRequest(router, "POST", "/api/v1/orders/"+id+"/status",
		map[string]string{"status": "confirmed", "updated_by": "Sam"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	testutil.DoRequest(router, "POST", "/api/v1/visitors", map[string]string{"source_ip": "10.0.0.1"}, "")
	testutil.DoRequest(router, "POST", "/api/v1/visitors", map[string]string{"source_ip": "10.0.0.2"}, "")

	w = testutil.DoRequest(router, "GET", "/api/v1/dashboard/sales", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	summary := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if summary["total_orders"].(float64) != 2 {
		t.Errorf("Expected 2 orders, got %v", summary["total_orders"])
	}
	if summary["revenue"].(float64) != 100 {
		t.Errorf("Expected revenue 100, got %v", summary["revenue"])
	}
	if summary["total_visits"].(float64) != 2 {
		t.Errorf("Expected 2 visits, got %v", summary["total_visits"])
	}
	byStatus := summary["orders_by_status"].(map[string]interface{})
	if byStatus["pending"].(float64) != 1 || byStatus["confirmed"].(float64) != 1 {
		t.Errorf("Expected one pending and one confirmed, got %v", byStatus)
	}
}

func TestDashboardSummaryWindowRestrictsVisits(t *testing.T) {
	router := setupDashboardTest(t)
	token := testutil.DefaultTestToken()

	seedOrder(t, router, 50)
	testutil.DoRequest(router, "POST", "/api/v1/visitors", map[string]string{"source_ip": "10.0.0.1"}, "")

	future := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/sales?from="+future, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	summary := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if summary["total_orders"].(float64) != 0 {
		t.Errorf("Expected no orders in a future window, got %v", summary["total_orders"])
	}
	if summary["total_visits"].(float64) != 0 {
		t.Errorf("Expected no visits in a future window, got %v", summary["total_visits"])
	}

	past := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	w = testutil.DoRequest(router, "GET", "/api/v1/dashboard/sales?from="+past, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	summary = testutil.ParseResponse(w)["data"].(map[string]interface{})
	if summary["total_orders"].(float64) != 1 {
		t.Errorf("Expected 1 order since yesterday, got %v", summary["total_orders"])
	}
	if summary["total_visits"].(float64) != 1 {
		t.Errorf("Expected 1 visit since yesterday, got %v", summary["total_visits"])
	}
}

func TestDashboardOrderCountsZeroFilled(t *testing.T) {
	router := setupDashboardTest(t)
	token := testutil.DefaultTestToken()

	seedOrder(t, router, 30)

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/orders", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	counts := testutil.ParseResponse(w)["data"].(map[string]interface{})["counts"].(map[string]interface{})
	for _, status := range []string{"pending", "confirmed", "rejected", "shipped", "delivered", "completed", "cancelled"} {
		if _, ok := counts[status]; !ok {
			t.Errorf("Expected %s bucket present", status)
		}
	}
	if counts["pending"].(float64) != 1 {
		t.Errorf("Expected 1 pending order, got %v", counts["pending"])
	}
}

func TestVisitorStatsGranularity(t *testing.T) {
	router := setupDashboardTest(t)
	token := testutil.DefaultTestToken()

	testutil.DoRequest(router, "POST", "/api/v1/visitors", map[string]string{"source_ip": "10.0.0.1"}, "")

	for _, g := range []string{"day", "month", "year"} {
		w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/visitors?granularity="+g, nil, token)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200 for granularity %s, got %d: %s", g, w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/visitors?granularity=week", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown granularity, got %d: %s", w.Code, w.Body.String())
	}
}
