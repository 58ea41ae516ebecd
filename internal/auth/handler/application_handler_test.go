package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/repository"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/service"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/testutil"
	"github.com/gin-gonic/gin"
)

// staffMailRecorder captures decision mails without a transport.
type staffMailRecorder struct {
	outcomes  []string
	usernames []string
	passwords []string
}

func (r *staffMailRecorder) EnqueueStaffDecision(ctx context.Context, to, name, role, outcome, reason, username, password string) error {
	r.outcomes = append(r.outcomes, outcome)
	r.usernames = append(r.usernames, username)
	r.passwords = append(r.passwords, password)
	return nil
}

func setupApplicationTest(t *testing.T) (*gin.Engine, *repository.UserRepository, *staffMailRecorder) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	appSvc := service.NewApplicationService(appRepo, userRepo)
	recorder := &staffMailRecorder{}
	appSvc.SetNotifier(recorder)
	appHandler := NewApplicationHandler(appSvc)

	router := testutil.SetupRouter()
	router.POST("/api/v1/applications", appHandler.Apply)

	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/applications", appHandler.ListApplications)
	api.POST("/applications/:id/approve", appHandler.ApproveApplication)
	api.POST("/applications/:id/reject", appHandler.RejectApplication)

	return router, userRepo, recorder
}

func fileApplication(t *testing.T, router *gin.Engine, name, email, role string) string {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/applications", map[string]string{
		"name":  name,
		"email": email,
		"role":  role,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)
}

func TestApplicationApplyUnknownRole(t *testing.T) {
	router, _, _ := setupApplicationTest(t)

	w := testutil.DoRequest(router, "POST", "/api/v1/applications", map[string]string{
		"name":  "Ben",
		"email": "ben@example.com",
		"role":  "ceo",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown role, got %d: %s", w.Code, w.Body.String())
	}
}

func TestApplicationApprove(t *testing.T) {
	router, userRepo, recorder := setupApplicationTest(t)
	token := testutil.DefaultTestToken()

	id := fileApplication(t, router, "Ben Wick", "ben@example.com", "grower")

	w := testutil.DoRequest(router, "POST", "/api/v1/applications/"+id+"/approve", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	app := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if app["status"] != "approved" {
		t.Errorf("Expected status 'approved', got %v", app["status"])
	}
	if app["user_id"] == nil {
		t.Fatal("Expected user_id linked on approval")
	}

	// The account exists, is active and carries the applied role
	user, err := userRepo.FindByEmail(context.Background(), "ben@example.com")
	if err != nil {
		t.Fatalf("Expected user created: %v", err)
	}
	if user.Role != "grower" {
		t.Errorf("Expected role 'grower', got %s", user.Role)
	}
	if user.Status != "active" {
		t.Errorf("Expected active user, got %s", user.Status)
	}
	if user.PasswordHash == "" {
		t.Error("Expected a password hash stored")
	}

	// Credentials went into the decision mail
	if len(recorder.outcomes) != 1 || recorder.outcomes[0] != "approved" {
		t.Fatalf("Expected one approved mail, got %v", recorder.outcomes)
	}
	if recorder.usernames[0] == "" || recorder.passwords[0] == "" {
		t.Error("Expected credentials in the approval mail")
	}
	if recorder.passwords[0] == user.PasswordHash {
		t.Error("Expected the mail to carry the plain password, not the hash")
	}
}

func TestApplicationReject(t *testing.T) {
	router, userRepo, recorder := setupApplicationTest(t)
	token := testutil.DefaultTestToken()

	id := fileApplication(t, router, "Ben Wick", "ben@example.com", "grower")

	w := testutil.DoRequest(router, "POST", "/api/v1/applications/"+id+"/reject",
		map[string]string{"reason": "position filled"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	app := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if app["status"] != "rejected" {
		t.Errorf("Expected status 'rejected', got %v", app["status"])
	}
	if app["rejection_reason"] != "position filled" {
		t.Errorf("Expected the reason recorded, got %v", app["rejection_reason"])
	}

	// No account is created on rejection
	if _, err := userRepo.FindByEmail(context.Background(), "ben@example.com"); err == nil {
		t.Error("Expected no user after rejection")
	}

	if len(recorder.outcomes) != 1 || recorder.outcomes[0] != "rejected" {
		t.Fatalf("Expected one rejected mail, got %v", recorder.outcomes)
	}
	if recorder.usernames[0] != "" || recorder.passwords[0] != "" {
		t.Error("Expected no credentials in a rejection mail")
	}
}

func TestApplicationDecideTwice(t *testing.T) {
	router, _, _ := setupApplicationTest(t)
	token := testutil.DefaultTestToken()

	id := fileApplication(t, router, "Ben Wick", "ben@example.com", "grower")

	w := testutil.DoRequest(router, "POST", "/api/v1/applications/"+id+"/approve", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// A second decision of either kind is rejected
	w = testutil.DoRequest(router, "POST", "/api/v1/applications/"+id+"/approve", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 approving twice, got %d: %s", w.Code, w.Body.String())
	}
	w = testutil.DoRequest(router, "POST", "/api/v1/applications/"+id+"/reject",
		map[string]string{"reason": "late"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 rejecting an approved application, got %d: %s", w.Code, w.Body.String())
	}
}
