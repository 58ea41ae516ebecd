package service

import (
	"context"
	"fmt"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/repository"
	"github.com/google/uuid"
)

// TicketService support ticket workflow
type TicketService struct {
	repo *repository.TicketRepository
}

func NewTicketService(repo *repository.TicketRepository) *TicketService {
	return &TicketService{repo: repo}
}

// CreateTicketRequest new ticket payload
type CreateTicketRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Subject string  `json:"subject" binding:"required"`
	Message string  `json:"message" binding:"required"`
	OrderID *string `json:"order_id"`
}

// Create opens a ticket in Pending with an empty reply thread.
func (s *TicketService) Create(ctx context.Context, req *CreateTicketRequest) (*entity.SupportTicket, error) {
	ticket := &entity.SupportTicket{
		ID:      uuid.New().String()[:32],
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  entity.TicketStatusPending,
		OrderID: req.OrderID,
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// List returns tickets newest first.
func (s *TicketService) List(ctx context.Context, page, pageSize int, status string) ([]entity.SupportTicket, int64, error) {
	if status != "" && !entity.IsTicketStatus(status) {
		return nil, 0, fmt.Errorf("%w: unknown status %q", httputil.ErrValidation, status)
	}
	return s.repo.FindAll(ctx, page, pageSize, status)
}

// Get loads a ticket with its reply thread.
func (s *TicketService) Get(ctx context.Context, id string) (*entity.SupportTicket, error) {
	return s.repo.FindByID(ctx, id)
}

// AppendReplyRequest reply payload
type AppendReplyRequest struct {
	Sender  string `json:"sender" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// AppendReply adds a conversation entry and runs the reply event through the
// transition function: a reply to a Pending ticket advances it to Responded,
// any other status stays as it is.
func (s *TicketService) AppendReply(ctx context.Context, ticketID string, req *AppendReplyRequest) ([]entity.TicketReply, error) {
	if !entity.IsReplySender(req.Sender) {
		return nil, fmt.Errorf("%w: unknown sender %q", httputil.ErrValidation, req.Sender)
	}

	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	reply := &entity.TicketReply{
		ID:       uuid.New().String()[:32],
		TicketID: ticketID,
		Sender:   req.Sender,
		Message:  req.Message,
	}

	next := entity.NextTicketStatus(ticket.Status, entity.TicketEventReplyAdded)
	if err := s.repo.AppendReply(ctx, reply, ticket.Status, next); err != nil {
		return nil, err
	}

	return s.repo.FindReplies(ctx, ticketID)
}

// UpdateStatusRequest status payload
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus moves the ticket to a new status. Moves not present in the
// transition table are rejected; writing the current status again is a no-op.
func (s *TicketService) SetStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*entity.SupportTicket, error) {
	if !entity.IsTicketStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", httputil.ErrValidation, req.Status)
	}

	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransitionTicket(ticket.Status, req.Status) {
		return nil, fmt.Errorf("%w: cannot move ticket from %s to %s", httputil.ErrValidation, ticket.Status, req.Status)
	}

	if ticket.Status != req.Status {
		if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
			return nil, err
		}
		ticket.Status = req.Status
	}

	return ticket, nil
}

// Stats returns ticket counts per status, zero-filled for the dashboard.
func (s *TicketService) Stats(ctx context.Context) (map[string]int64, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, status := range entity.AllTicketStatuses {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}
	return counts, nil
}

// Delete removes the ticket permanently, no archive.
func (s *TicketService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
