package handler

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/repository"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/service"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/testutil"
	"github.com/gin-gonic/gin"
)

func setupTicketTest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ticketRepo := repository.NewTicketRepository(db)
	ticketSvc := service.NewTicketService(ticketRepo)
	ticketHandler := NewTicketHandler(ticketSvc)

	router := testutil.SetupRouter()

	support := router.Group("/api/v1/support")
	support.POST("", ticketHandler.CreateTicket)
	support.GET("", ticketHandler.ListTickets)
	support.GET("/:id", ticketHandler.GetTicket)
	support.PUT("/:id/reply", ticketHandler.AppendReply)

	api := testutil.AuthGroup(router, "/api/v1")
	api.PUT("/support/:id/status", ticketHandler.SetStatus)
	api.DELETE("/support/:id", ticketHandler.DeleteTicket)
	api.GET("/dashboard/tickets", ticketHandler.GetStats)

	return router
}

func createTicket(t *testing.T, router *gin.Engine, name, email, subject, message string) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/support", map[string]string{
		"name":    name,
		"email":   email,
		"subject": subject,
		"message": message,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestTicketCreate(t *testing.T) {
	router := setupTicketTest(t)

	ticket := createTicket(t, router, "Ann", "ann@example.com", "Wilted monstera", "Leaves arrived wilted")

	if ticket["id"] == nil || ticket["id"] == "" {
		t.Error("Expected non-empty id")
	}
	if ticket["status"] != "Pending" {
		t.Errorf("Expected status 'Pending', got %v", ticket["status"])
	}
	if ticket["replies"] != nil {
		t.Errorf("Expected empty reply thread, got %v", ticket["replies"])
	}
}

func TestTicketCreateMissingFields(t *testing.T) {
	router := setupTicketTest(t)

	w := testutil.DoRequest(router, "POST", "/api/v1/support", map[string]string{
		"name":  "Ann",
		"email": "ann@example.com",
		// subject and message missing
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// Nothing persisted
	w = testutil.DoRequest(router, "GET", "/api/v1/support", nil, "")
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 0 {
		t.Errorf("Expected no tickets after rejected create, got %v", pagination["total"])
	}
}

func TestTicketReplyAdvancesPending(t *testing.T) {
	router := setupTicketTest(t)
	token := testutil.DefaultTestToken()

	ticket := createTicket(t, router, "Ann", "ann@example.com", "Wilted monstera", "Leaves arrived wilted")
	id := ticket["id"].(string)

	// CSM reply moves Pending to Responded
	w := testutil.DoRequest(router, "PUT", "/api/v1/support/"+id+"/reply", map[string]string{
		"sender":  "CSM",
		"message": "We will ship a replacement",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	responses := resp["data"].(map[string]interface{})["responses"].([]interface{})
	if len(responses) != 1 {
		t.Fatalf("Expected 1 reply, got %d", len(responses))
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/support/"+id, nil, "")
	resp = testutil.ParseResponse(w)
	if got := resp["data"].(map[string]interface{})["status"]; got != "Responded" {
		t.Errorf("Expected status 'Responded' after reply, got %v", got)
	}

	// Resolve, then a further reply must not revert the status
	w = testutil.DoRequest(router, "PUT", "/api/v1/support/"+id+"/status",
		map[string]string{"status": "Resolved"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "PUT", "/api/v1/support/"+id+"/reply", map[string]string{
		"sender":  "Customer",
		"message": "Thanks, received it",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/support/"+id, nil, "")
	resp = testutil.ParseResponse(w)
	if got := resp["data"].(map[string]interface{})["status"]; got != "Resolved" {
		t.Errorf("Expected status to stay 'Resolved' after late reply, got %v", got)
	}
}

func TestTicketReplyUnknownSender(t *testing.T) {
	router := setupTicketTest(t)

	ticket := createTicket(t, router, "Ann", "ann@example.com", "Subject", "Message")
	id := ticket["id"].(string)

	w := testutil.DoRequest(router, "PUT", "/api/v1/support/"+id+"/reply", map[string]string{
		"sender":  "Bot",
		"message": "hello",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown sender, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTicketConcurrentReplies(t *testing.T) {
	router := setupTicketTest(t)

	ticket := createTicket(t, router, "Ann", "ann@example.com", "Subject", "Message")
	id := ticket["id"].(string)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			testutil.DoRequest(router, "PUT", "/api/v1/support/"+id+"/reply", map[string]string{
				"sender":  "Customer",
				"message": fmt.Sprintf("concurrent reply %d", n),
			}, "")
		}(i)
	}
	wg.Wait()

	w := testutil.DoRequest(router, "GET", "/api/v1/support/"+id, nil, "")
	resp := testutil.ParseResponse(w)
	replies := resp["data"].(map[string]interface{})["replies"].([]interface{})
	if len(replies) != 2 {
		t.Errorf("Expected both concurrent replies to survive, got %d", len(replies))
	}
}

func TestTicketStatusTransitions(t *testing.T) {
	router := setupTicketTest(t)
	token := testutil.DefaultTestToken()

	ticket := createTicket(t, router, "Ann", "ann@example.com", "Subject", "Message")
	id := ticket["id"].(string)

	// Same-state write is an idempotent no-op
	w := testutil.DoRequest(router, "PUT", "/api/v1/support/"+id+"/status",
		map[string]string{"status": "Pending"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for same-state write, got %d: %s", w.Code, w.Body.String())
	}

	// Pending → Resolved is legal
	w = testutil.DoRequest(router, "PUT", "/api/v1/support/"+id+"/status",
		map[string]string{"status": "Resolved"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Resolved is terminal
	w = testutil.DoRequest(router, "PUT", "/api/v1/support/"+id+"/status",
		map[string]string{"status": "Responded"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for move out of Resolved, got %d: %s", w.Code, w.Body.String())
	}

	// Unknown status rejected
	w = testutil.DoRequest(router, "PUT", "/api/v1/support/"+id+"/status",
		map[string]string{"status": "Closed"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown status, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTicketGetNotFound(t *testing.T) {
	router := setupTicketTest(t)

	w := testutil.DoRequest(router, "GET", "/api/v1/support/does-not-exist", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTicketDelete(t *testing.T) {
	router := setupTicketTest(t)
	token := testutil.DefaultTestToken()

	ticket := createTicket(t, router, "Ann", "ann@example.com", "Subject", "Message")
	id := ticket["id"].(string)

	w := testutil.DoRequest(router, "DELETE", "/api/v1/support/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/support/"+id, nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestTicketStats(t *testing.T) {
	router := setupTicketTest(t)
	token := testutil.DefaultTestToken()

	createTicket(t, router, "Ann", "ann@example.com", "One", "Message")
	createTicket(t, router, "Ben", "ben@example.com", "Two", "Message")

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/tickets", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	counts := resp["data"].(map[string]interface{})["counts"].(map[string]interface{})
	if counts["Pending"].(float64) != 2 {
		t.Errorf("Expected 2 pending tickets, got %v", counts["Pending"])
	}
	// Zero-filled buckets are present
	if _, ok := counts["Resolved"]; !ok {
		t.Error("Expected Resolved bucket in stats")
	}
}
