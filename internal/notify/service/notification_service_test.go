package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/notify/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/notify/repository"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/testutil"
	"go.uber.org/zap"
)

// fakeSender records sends and fails on demand.
type fakeSender struct {
	sent     []string
	failNext int
}

func (f *fakeSender) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	if f.failNext > 0 {
		f.failNext--
		return "", errors.New("smtp connection refused")
	}
	f.sent = append(f.sent, to+"|"+subject)
	return "msg-" + to, nil
}

func setupNotifyTest(t *testing.T, sender Sender, opts Options) (*NotificationService, *repository.NotificationRepository) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := repository.NewNotificationRepository(db)
	svc := NewNotificationService(repo, sender, opts, zap.NewNop())
	return svc, repo
}

func TestDispatchDelivers(t *testing.T) {
	sender := &fakeSender{}
	svc, repo := setupNotifyTest(t, sender, Options{})
	ctx := context.Background()

	if err := svc.EnqueueOrderStatus(ctx, "ann@example.com", "Ann", "ord-1", "shipped"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	if err := svc.DispatchDue(ctx); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("Expected 1 delivery, got %d", len(sender.sent))
	}

	rows, _, err := repo.FindAll(ctx, 1, 10, "")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 outbox row, got %d", len(rows))
	}
	row := rows[0]
	if row.Status != entity.StatusSent {
		t.Errorf("Expected status sent, got %s", row.Status)
	}
	if row.Attempts != 1 {
		t.Errorf("Expected 1 attempt, got %d", row.Attempts)
	}
	if row.MessageID == "" {
		t.Error("Expected transport message id recorded")
	}
	if row.SentAt == nil {
		t.Error("Expected sent_at stamped")
	}
}

func TestDispatchRetriesThenDelivers(t *testing.T) {
	sender := &fakeSender{failNext: 1}
	svc, repo := setupNotifyTest(t, sender, Options{RetryBackoff: time.Millisecond})
	ctx := context.Background()

	if err := svc.EnqueueStaffDecision(ctx, "ben@example.com", "Ben", "grower", "approved", "", "ben.w", "secret12"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	// First pass fails, row stays pending with a recorded error.
	if err := svc.DispatchDue(ctx); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	rows, _, _ := repo.FindAll(ctx, 1, 10, "")
	if rows[0].Status != entity.StatusPending {
		t.Fatalf("Expected pending after first failure, got %s", rows[0].Status)
	}
	if rows[0].Attempts != 1 {
		t.Errorf("Expected 1 attempt recorded, got %d", rows[0].Attempts)
	}
	if rows[0].LastError == "" {
		t.Error("Expected last_error recorded")
	}

	// Second pass succeeds once the backoff has elapsed.
	time.Sleep(5 * time.Millisecond)
	if err := svc.DispatchDue(ctx); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	rows, _, _ = repo.FindAll(ctx, 1, 10, "")
	if rows[0].Status != entity.StatusSent {
		t.Errorf("Expected sent after retry, got %s", rows[0].Status)
	}
	if rows[0].Attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", rows[0].Attempts)
	}
}

func TestDispatchGivesUpAfterMaxAttempts(t *testing.T) {
	sender := &fakeSender{failNext: 100}
	svc, repo := setupNotifyTest(t, sender, Options{MaxAttempts: 2, RetryBackoff: time.Millisecond})
	ctx := context.Background()

	if err := svc.EnqueueOrderStatus(ctx, "ann@example.com", "Ann", "ord-1", "shipped"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	for i := 0; i < 4; i++ {
		if err := svc.DispatchDue(ctx); err != nil {
			t.Fatalf("dispatch: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	rows, _, _ := repo.FindAll(ctx, 1, 10, "")
	if rows[0].Status != entity.StatusFailed {
		t.Errorf("Expected failed after attempt budget, got %s", rows[0].Status)
	}
	if rows[0].Attempts != 2 {
		t.Errorf("Expected exactly 2 attempts, got %d", rows[0].Attempts)
	}
}

func TestDispatchRespectsBackoff(t *testing.T) {
	sender := &fakeSender{failNext: 1}
	svc, repo := setupNotifyTest(t, sender, Options{RetryBackoff: time.Hour})
	ctx := context.Background()

	if err := svc.EnqueueOrderStatus(ctx, "ann@example.com", "Ann", "ord-1", "confirmed"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := svc.DispatchDue(ctx); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	// Row is backed off an hour, an immediate pass must not touch it.
	if err := svc.DispatchDue(ctx); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	rows, _, _ := repo.FindAll(ctx, 1, 10, "")
	if rows[0].Attempts != 1 {
		t.Errorf("Expected backed-off row untouched, got %d attempts", rows[0].Attempts)
	}
}

func TestClaimHoldsRowsPastCommit(t *testing.T) {
	svc, repo := setupNotifyTest(t, &fakeSender{}, Options{})
	ctx := context.Background()

	if err := svc.EnqueueOrderStatus(ctx, "ann@example.com", "Ann", "ord-1", "shipped"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	now := time.Now()
	claimed, err := repo.ClaimDue(ctx, now, time.Hour, 10)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if len(claimed) != 1 {
		t.Fatalf("Expected 1 claimed row, got %d", len(claimed))
	}

	// The first claim's lease must keep the row off a second dispatcher
	// even after its transaction committed.
	again, err := repo.ClaimDue(ctx, now, time.Hour, 10)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("Expected leased row withheld, got %d rows", len(again))
	}
}

func TestComposeStaffApproved(t *testing.T) {
	svc, _ := setupNotifyTest(t, &fakeSender{}, Options{})
	ctx := context.Background()

	if err := svc.EnqueueStaffDecision(ctx, "ben@example.com", "Ben", "grower", "approved", "", "ben.w", "secret12"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	rows, _, _ := svc.List(ctx, 1, 10, "")
	if rows[0].Kind != entity.KindStaffApproved {
		t.Fatalf("Expected staff_approved kind, got %s", rows[0].Kind)
	}

	subject, body, err := svc.compose(&rows[0])
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if subject == "" {
		t.Error("Expected non-empty subject")
	}
	for _, want := range []string{"Ben", "grower", "ben.w", "secret12"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
}

func TestComposeRejectionCarriesReason(t *testing.T) {
	svc, _ := setupNotifyTest(t, &fakeSender{}, Options{})
	ctx := context.Background()

	if err := svc.EnqueueStaffDecision(ctx, "ben@example.com", "Ben", "grower", "rejected", "position filled", "", ""); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	rows, _, _ := svc.List(ctx, 1, 10, "")
	if rows[0].Kind != entity.KindStaffRejected {
		t.Fatalf("Expected staff_rejected kind, got %s", rows[0].Kind)
	}

	_, body, err := svc.compose(&rows[0])
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !strings.Contains(body, "position filled") {
		t.Error("Expected body to carry the rejection reason")
	}
}

func TestDispatchClosesMalformedPayload(t *testing.T) {
	svc, repo := setupNotifyTest(t, &fakeSender{}, Options{})
	ctx := context.Background()

	n := &entity.Notification{
		ID:            "bad-payload-row-0000000000000000",
		Kind:          "unknown_kind",
		Recipient:     "ann@example.com",
		Payload:       `{}`,
		Status:        entity.StatusPending,
		NextAttemptAt: time.Now(),
	}
	if err := repo.Create(ctx, n); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DispatchDue(ctx); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	row, err := repo.FindByID(ctx, n.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if row.Status != entity.StatusFailed {
		t.Errorf("Expected unreadable row closed as failed, got %s", row.Status)
	}
}
