package repository

import (
	"context"
	"errors"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/entity"
	"gorm.io/gorm"
)

// TicketRepository support ticket storage
type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// FindAll lists tickets, newest first, optionally filtered by status.
func (r *TicketRepository) FindAll(ctx context.Context, page, pageSize int, status string) ([]entity.SupportTicket, int64, error) {
	var items []entity.SupportTicket
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SupportTicket{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindByID loads a ticket with its reply thread.
func (r *TicketRepository) FindByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// Create persists a new ticket.
func (r *TicketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

// AppendReply inserts the reply row and conditionally advances the ticket status
// in one transaction. The status update is guarded by the expected current value,
// so two concurrent appends both keep their reply rows and the transition fires
// exactly once.
func (r *TicketRepository) AppendReply(ctx context.Context, reply *entity.TicketReply, fromStatus, toStatus string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		if fromStatus != toStatus {
			return tx.Model(&entity.SupportTicket{}).
				Where("id = ? AND status = ?", reply.TicketID, fromStatus).
				Update("status", toStatus).Error
		}
		return nil
	})
}

// UpdateStatus overwrites the current status.
func (r *TicketRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.SupportTicket{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}

// Delete removes the ticket and its replies permanently.
func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&entity.TicketReply{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.SupportTicket{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return httputil.ErrNotFound
		}
		return nil
	})
}

// FindReplies lists the reply thread of a ticket.
func (r *TicketRepository) FindReplies(ctx context.Context, ticketID string) ([]entity.TicketReply, error) {
	var replies []entity.TicketReply
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

// CountByStatus aggregates ticket counts per status for the dashboard.
func (r *TicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.SupportTicket{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}
