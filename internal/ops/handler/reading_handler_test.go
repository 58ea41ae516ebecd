package handler

import (
	"net/http"
	"testing"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/repository"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/service"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/testutil"
	"github.com/gin-gonic/gin"
)

func setupReadingTest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)

	readingSvc := service.NewReadingService(repository.NewReadingRepository(db))
	readingHandler := NewReadingHandler(readingSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	readings := api.Group("/readings")
	readings.POST("", readingHandler.CreateReading)
	readings.GET("", readingHandler.ListReadings)

	return router
}

func readingBody(overrides map[string]interface{}) map[string]interface{} {
	body := map[string]interface{}{
		"plant_name":    "Monstera deliciosa",
		"category":      "greenhouse",
		"temperature":   24.5,
		"humidity":      60.0,
		"light_level":   12000.0,
		"soil_moisture": 45.0,
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

func TestReadingCreate(t *testing.T) {
	router := setupReadingTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/readings", readingBody(nil), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	reading := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if reading["recorded_at"] == nil {
		t.Error("Expected recorded_at to be stamped")
	}
}

func TestReadingRangeViolations(t *testing.T) {
	router := setupReadingTest(t)
	token := testutil.DefaultTestToken()

	cases := []map[string]interface{}{
		{"temperature": -15.0},
		{"temperature": 61.0},
		{"humidity": -1.0},
		{"humidity": 101.0},
		{"light_level": -5.0},
		{"light_level": 100001.0},
		{"soil_moisture": -0.5},
		{"soil_moisture": 100.5},
		{"category": "rooftop"},
	}

	for _, override := range cases {
		w := testutil.DoRequest(router, "POST", "/api/v1/readings", readingBody(override), token)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for %v, got %d: %s", override, w.Code, w.Body.String())
		}
	}

	// Rejected samples are not stored
	w := testutil.DoRequest(router, "GET", "/api/v1/readings", nil, token)
	resp := testutil.ParseResponse(w)
	pagination := resp["data"].(map[string]interface{})["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 0 {
		t.Errorf("Expected no stored readings, got %v", pagination["total"])
	}
}

func TestReadingBoundaryValuesAccepted(t *testing.T) {
	router := setupReadingTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/readings", readingBody(map[string]interface{}{
		"temperature":   -10.0,
		"humidity":      100.0,
		"light_level":   100000.0,
		"soil_moisture": 0.0,
	}), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 for boundary values, got %d: %s", w.Code, w.Body.String())
	}
}
