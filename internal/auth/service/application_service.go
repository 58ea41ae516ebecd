package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/repository"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/google/uuid"
)

// StaffNotifier enqueues an applicant notification for a staffing decision.
// Credentials ride along only on approval.
type StaffNotifier interface {
	EnqueueStaffDecision(ctx context.Context, to, name, role, outcome, reason, username, password string) error
}

// ApplicationService staff application workflow. The decision commits first;
// the applicant mail is enqueued durably and delivered by the dispatcher, so
// a mail outage can never leave an approval half-applied.
type ApplicationService struct {
	repo     *repository.ApplicationRepository
	userRepo *repository.UserRepository
	notifier StaffNotifier
}

func NewApplicationService(repo *repository.ApplicationRepository, userRepo *repository.UserRepository) *ApplicationService {
	return &ApplicationService{repo: repo, userRepo: userRepo}
}

// SetNotifier injects the notification outbox.
func (s *ApplicationService) SetNotifier(n StaffNotifier) {
	s.notifier = n
}

// ApplyRequest public application payload
type ApplyRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Role        string `json:"role" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

// Apply files a staff application in pending.
func (s *ApplicationService) Apply(ctx context.Context, req *ApplyRequest) (*entity.StaffApplication, error) {
	if !entity.IsStaffRole(req.Role) {
		return nil, fmt.Errorf("%w: unknown staff role %q", httputil.ErrValidation, req.Role)
	}

	app := &entity.StaffApplication{
		ID:          uuid.New().String()[:32],
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		CoverLetter: req.CoverLetter,
		Status:      entity.ApplicationStatusPending,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) List(ctx context.Context, page, pageSize int, status string) ([]entity.StaffApplication, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, status)
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*entity.StaffApplication, error) {
	return s.repo.FindByID(ctx, id)
}

// Approve issues credentials, creates the account and enqueues the
// credentials mail. Only pending applications can be approved.
func (s *ApplicationService) Approve(ctx context.Context, id, decidedBy string) (*entity.StaffApplication, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != entity.ApplicationStatusPending {
		return nil, fmt.Errorf("%w: application already %s", httputil.ErrValidation, app.Status)
	}

	username := generateUsername(app.Name)
	password := uuid.New().String()[:12]
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String()[:32],
		Username:     username,
		Name:         app.Name,
		Email:        app.Email,
		PasswordHash: hash,
		Role:         app.Role,
		Status:       entity.UserStatusActive,
	}

	now := time.Now()
	app.Status = entity.ApplicationStatusApproved
	app.DecidedBy = decidedBy
	app.DecidedAt = &now
	app.UserID = &user.ID

	if err := s.repo.Decide(ctx, app, user); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueStaffDecision(ctx, app.Email, app.Name, app.Role,
			entity.ApplicationStatusApproved, "", username, password); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// RejectRequest rejection payload
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Reject closes the application with a reason and enqueues the rejection
// mail.
func (s *ApplicationService) Reject(ctx context.Context, id, decidedBy string, req *RejectRequest) (*entity.StaffApplication, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != entity.ApplicationStatusPending {
		return nil, fmt.Errorf("%w: application already %s", httputil.ErrValidation, app.Status)
	}

	now := time.Now()
	app.Status = entity.ApplicationStatusRejected
	app.RejectionReason = req.Reason
	app.DecidedBy = decidedBy
	app.DecidedAt = &now

	if err := s.repo.Decide(ctx, app, nil); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueStaffDecision(ctx, app.Email, app.Name, app.Role,
			entity.ApplicationStatusRejected, req.Reason, "", ""); err != nil {
			return nil, err
		}
	}
	return app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// generateUsername derives a login name from the applicant name plus a short
// random suffix to dodge collisions.
func generateUsername(name string) string {
	base := strings.ToLower(strings.Join(strings.Fields(name), "."))
	if base == "" {
		base = "staff"
	}
	if len(base) > 20 {
		base = base[:20]
	}
	return base + "." + uuid.New().String()[:6]
}
