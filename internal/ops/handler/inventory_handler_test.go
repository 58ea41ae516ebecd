package handler

import (
	"net/http"
	"testing"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/repository"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/service"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/testutil"
	"github.com/gin-gonic/gin"
)

func setupInventoryTest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)

	inventorySvc := service.NewInventoryService(
		repository.NewStockRepository(db),
		repository.NewSupplierRepository(db),
		repository.NewOrderStockRepository(db),
	)
	inventoryHandler := NewInventoryHandler(inventorySvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	stock := api.Group("/stock")
	stock.POST("", inventoryHandler.CreateStock)
	stock.GET("", inventoryHandler.ListStock)
	stock.GET("/:id", inventoryHandler.GetStock)
	stock.PUT("/:id", inventoryHandler.UpdateStock)

	suppliers := api.Group("/suppliers")
	suppliers.POST("", inventoryHandler.CreateSupplier)
	suppliers.DELETE("/:id", inventoryHandler.DeleteSupplier)

	orderStock := api.Group("/order-stock")
	orderStock.POST("", inventoryHandler.CreateOrderStock)
	orderStock.GET("/:id", inventoryHandler.GetOrderStock)
	orderStock.POST("/:id/receive", inventoryHandler.ReceiveOrderStock)
	orderStock.POST("/:id/cancel", inventoryHandler.CancelOrderStock)

	return router
}

func createSupplier(t *testing.T, router *gin.Engine, token string) string {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/suppliers", map[string]string{
		"name":  "Green Lanka Nursery",
		"email": "orders@greenlanka.example",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)
}

func createStock(t *testing.T, router *gin.Engine, token, plantName string, quantity, threshold int) string {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/stock", map[string]interface{}{
		"plant_name":        plantName,
		"quantity":          quantity,
		"unit":              "pots",
		"reorder_threshold": threshold,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)
}

func TestStockLowFilter(t *testing.T) {
	router := setupInventoryTest(t)
	token := testutil.DefaultTestToken()

	createStock(t, router, token, "Monstera deliciosa", 50, 10)
	createStock(t, router, token, "Ficus lyrata", 3, 10)

	w := testutil.DoRequest(router, "GET", "/api/v1/stock?low=true", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("Expected 1 low stock line, got %d", len(items))
	}
	if items[0].(map[string]interface{})["plant_name"] != "Ficus lyrata" {
		t.Errorf("Expected the depleted line, got %v", items[0])
	}
}

func TestStockNegativeQuantityRejected(t *testing.T) {
	router := setupInventoryTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/stock", map[string]interface{}{
		"plant_name": "Monstera deliciosa",
		"quantity":   -5,
		"unit":       "pots",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrderStockRequiresSupplier(t *testing.T) {
	router := setupInventoryTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/order-stock", map[string]interface{}{
		"supplier_id": "no-such-supplier",
		"plant_name":  "Monstera deliciosa",
		"quantity":    20,
		"unit":        "pots",
	}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown supplier, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrderStockReceiveAdjustsStock(t *testing.T) {
	router := setupInventoryTest(t)
	token := testutil.DefaultTestToken()

	supplierID := createSupplier(t, router, token)
	stockID := createStock(t, router, token, "Monstera deliciosa", 5, 10)

	w := testutil.DoRequest(router, "POST", "/api/v1/order-stock", map[string]interface{}{
		"supplier_id": supplierID,
		"plant_name":  "Monstera deliciosa",
		"quantity":    20,
		"unit":        "pots",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	orderID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(router, "POST", "/api/v1/order-stock/"+orderID+"/receive",
		map[string]string{"stock_id": stockID}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	received := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if received["status"] != "received" {
		t.Errorf("Expected status 'received', got %v", received["status"])
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/stock/"+stockID, nil, token)
	stock := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if stock["quantity"].(float64) != 25 {
		t.Errorf("Expected quantity 25 after receive, got %v", stock["quantity"])
	}

	// Receiving again is a no-op, the quantity is not added twice
	w = testutil.DoRequest(router, "POST", "/api/v1/order-stock/"+orderID+"/receive",
		map[string]string{"stock_id": stockID}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for repeated receive, got %d: %s", w.Code, w.Body.String())
	}
	w = testutil.DoRequest(router, "GET", "/api/v1/stock/"+stockID, nil, token)
	stock = testutil.ParseResponse(w)["data"].(map[string]interface{})
	if stock["quantity"].(float64) != 25 {
		t.Errorf("Expected quantity to stay 25, got %v", stock["quantity"])
	}
}

func TestOrderStockCancelledCannotBeReceived(t *testing.T) {
	router := setupInventoryTest(t)
	token := testutil.DefaultTestToken()

	supplierID := createSupplier(t, router, token)

	w := testutil.DoRequest(router, "POST", "/api/v1/order-stock", map[string]interface{}{
		"supplier_id": supplierID,
		"plant_name":  "Ficus lyrata",
		"quantity":    10,
		"unit":        "pots",
	}, token)
	orderID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(router, "POST", "/api/v1/order-stock/"+orderID+"/cancel", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "POST", "/api/v1/order-stock/"+orderID+"/receive",
		map[string]string{}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 receiving a cancelled order, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSupplierDeleteLeavesOrders(t *testing.T) {
	router := setupInventoryTest(t)
	token := testutil.DefaultTestToken()

	supplierID := createSupplier(t, router, token)

	w := testutil.DoRequest(router, "POST", "/api/v1/order-stock", map[string]interface{}{
		"supplier_id": supplierID,
		"plant_name":  "Monstera deliciosa",
		"quantity":    20,
		"unit":        "pots",
	}, token)
	orderID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	// Hard delete, no cascade: the replenishment order keeps its dangling reference.
	w = testutil.DoRequest(router, "DELETE", "/api/v1/suppliers/"+supplierID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/order-stock/"+orderID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected order to survive supplier delete, got %d: %s", w.Code, w.Body.String())
	}
	order := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if order["supplier_id"] != supplierID {
		t.Errorf("Expected dangling supplier reference kept, got %v", order["supplier_id"])
	}
}
