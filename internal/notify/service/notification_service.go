package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/notify/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/notify/repository"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/shared/mailer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sender delivers one composed message. Implemented by the SMTP mailer.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) (string, error)
}

// Options dispatcher tuning
type Options struct {
	PollInterval time.Duration
	SendTimeout  time.Duration
	MaxAttempts  int
	RetryBackoff time.Duration
	BatchSize    int
	ClaimLease   time.Duration
}

func (o *Options) fillDefaults() {
	if o.PollInterval <= 0 {
		o.PollInterval = 15 * time.Second
	}
	if o.SendTimeout <= 0 {
		o.SendTimeout = 10 * time.Second
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 5
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = time.Minute
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 20
	}
	if o.ClaimLease <= 0 {
		o.ClaimLease = time.Minute
	}
}

// NotificationService the outbox. Enqueue writes are durable and cheap;
// delivery happens in the dispatcher loop with bounded retry.
type NotificationService struct {
	repo   *repository.NotificationRepository
	sender Sender
	opts   Options
	logger *zap.Logger
}

func NewNotificationService(repo *repository.NotificationRepository, sender Sender, opts Options, logger *zap.Logger) *NotificationService {
	opts.fillDefaults()
	return &NotificationService{
		repo:   repo,
		sender: sender,
		opts:   opts,
		logger: logger,
	}
}

func (s *NotificationService) enqueue(ctx context.Context, kind, recipient string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	n := &entity.Notification{
		ID:            uuid.New().String()[:32],
		Kind:          kind,
		Recipient:     recipient,
		Payload:       string(raw),
		Status:        entity.StatusPending,
		NextAttemptAt: time.Now(),
	}
	return s.repo.Create(ctx, n)
}

// EnqueueOrderStatus queues a customer mail for an order status change.
func (s *NotificationService) EnqueueOrderStatus(ctx context.Context, to, name, orderID, status string) error {
	return s.enqueue(ctx, entity.KindOrderStatus, to, entity.OrderStatusPayload{
		Name:    name,
		OrderID: orderID,
		Status:  status,
	})
}

// EnqueueStaffDecision queues the applicant mail for a staffing decision.
func (s *NotificationService) EnqueueStaffDecision(ctx context.Context, to, name, role, outcome, reason, username, password string) error {
	kind := entity.KindStaffRejected
	if outcome == "approved" {
		kind = entity.KindStaffApproved
	}
	return s.enqueue(ctx, kind, to, entity.StaffDecisionPayload{
		Name:     name,
		Role:     role,
		Outcome:  outcome,
		Reason:   reason,
		Username: username,
		Password: password,
	})
}

func (s *NotificationService) List(ctx context.Context, page, pageSize int, status string) ([]entity.Notification, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, status)
}

func (s *NotificationService) Get(ctx context.Context, id string) (*entity.Notification, error) {
	return s.repo.FindByID(ctx, id)
}

// Stats outbox rows per status.
func (s *NotificationService) Stats(ctx context.Context) (map[string]int64, error) {
	return s.repo.CountByStatus(ctx)
}

// Run polls the outbox until ctx is cancelled. Call in its own goroutine.
func (s *NotificationService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	s.logger.Info("notification dispatcher started",
		zap.Duration("poll_interval", s.opts.PollInterval),
		zap.Int("max_attempts", s.opts.MaxAttempts))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notification dispatcher stopped")
			return
		case <-ticker.C:
			if err := s.DispatchDue(ctx); err != nil {
				s.logger.Error("dispatch pass failed", zap.Error(err))
			}
		}
	}
}

// DispatchDue delivers one batch of due rows. Exported so tests and the
// dispatcher share one code path.
func (s *NotificationService) DispatchDue(ctx context.Context) error {
	due, err := s.repo.ClaimDue(ctx, time.Now(), s.opts.ClaimLease, s.opts.BatchSize)
	if err != nil {
		return err
	}

	for i := range due {
		s.dispatchOne(ctx, &due[i])
	}
	return nil
}

// dispatchOne composes and sends one row, then records the outcome. A send
// that outlives the timeout counts as a delivery failure.
func (s *NotificationService) dispatchOne(ctx context.Context, n *entity.Notification) {
	subject, body, err := s.compose(n)
	if err != nil {
		// Malformed payload will never deliver, close the row now.
		s.logger.Error("notification payload unreadable",
			zap.String("id", n.ID),
			zap.Error(err))
		if mErr := s.repo.MarkFailed(ctx, n.ID, n.Attempts+1, err.Error()); mErr != nil {
			s.logger.Error("mark failed", zap.String("id", n.ID), zap.Error(mErr))
		}
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.opts.SendTimeout)
	messageID, sendErr := s.sender.Send(sendCtx, n.Recipient, subject, body)
	cancel()

	attempts := n.Attempts + 1
	if sendErr == nil {
		if err := s.repo.MarkSent(ctx, n.ID, messageID, attempts, time.Now()); err != nil {
			s.logger.Error("mark sent", zap.String("id", n.ID), zap.Error(err))
		}
		s.logger.Info("notification delivered",
			zap.String("id", n.ID),
			zap.String("kind", n.Kind),
			zap.String("message_id", messageID),
			zap.Int("attempts", attempts))
		return
	}

	deliveryErr := fmt.Errorf("%w: %v", httputil.ErrDelivery, sendErr)
	if attempts >= s.opts.MaxAttempts {
		if err := s.repo.MarkFailed(ctx, n.ID, attempts, deliveryErr.Error()); err != nil {
			s.logger.Error("mark failed", zap.String("id", n.ID), zap.Error(err))
		}
		s.logger.Error("notification gave up",
			zap.String("id", n.ID),
			zap.String("kind", n.Kind),
			zap.Int("attempts", attempts),
			zap.Error(sendErr))
		return
	}

	next := time.Now().Add(s.opts.RetryBackoff * time.Duration(attempts))
	if err := s.repo.MarkRetry(ctx, n.ID, attempts, deliveryErr.Error(), next); err != nil {
		s.logger.Error("mark retry", zap.String("id", n.ID), zap.Error(err))
	}
	s.logger.Warn("notification delivery failed, will retry",
		zap.String("id", n.ID),
		zap.String("kind", n.Kind),
		zap.Int("attempts", attempts),
		zap.Time("next_attempt", next),
		zap.Error(sendErr))
}

func (s *NotificationService) compose(n *entity.Notification) (subject, body string, err error) {
	switch n.Kind {
	case entity.KindOrderStatus:
		var p entity.OrderStatusPayload
		if err := json.Unmarshal([]byte(n.Payload), &p); err != nil {
			return "", "", err
		}
		subject, body = mailer.ComposeOrderStatus(p.Name, p.OrderID, p.Status)
		return subject, body, nil
	case entity.KindStaffApproved, entity.KindStaffRejected:
		var p entity.StaffDecisionPayload
		if err := json.Unmarshal([]byte(n.Payload), &p); err != nil {
			return "", "", err
		}
		subject, body = mailer.ComposeStaffDecision(p.Name, p.Role, p.Outcome, p.Reason, p.Username, p.Password)
		return subject, body, nil
	default:
		return "", "", fmt.Errorf("unknown notification kind %q", n.Kind)
	}
}
