package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/notify/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository outbox storage
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) FindAll(ctx context.Context, page, pageSize int, status string) ([]entity.Notification, int64, error) {
	var items []entity.Notification
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Notification{})
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

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	var n entity.Notification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// ClaimDue locks up to limit pending rows whose retry time has come and
// pushes their next_attempt_at forward by lease before returning them, so
// the claim survives the transaction commit. SKIP LOCKED plus the lease keep
// concurrent dispatchers off the same row; a crashed dispatcher's rows come
// back once the lease expires.
func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]entity.Notification, error) {
	var items []entity.Notification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ? AND next_attempt_at <= ?", entity.StatusPending, now).
			Order("next_attempt_at ASC").
			Limit(limit).
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		ids := make([]string, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		return tx.
			Model(&entity.Notification{}).
			Where("id IN ?", ids).
			Update("next_attempt_at", now.Add(lease)).Error
	})
	return items, err
}

// MarkSent records a successful delivery.
func (r *NotificationRepository) MarkSent(ctx context.Context, id, messageID string, attempts int, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     entity.StatusSent,
			"message_id": messageID,
			"attempts":   attempts,
			"last_error": "",
			"sent_at":    at,
		}).Error
}

// MarkRetry records a failed attempt and schedules the next one.
func (r *NotificationRepository) MarkRetry(ctx context.Context, id string, attempts int, lastError string, nextAttemptAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempts":        attempts,
			"last_error":      lastError,
			"next_attempt_at": nextAttemptAt,
		}).Error
}

// MarkFailed closes the row after the attempt budget is spent.
func (r *NotificationRepository) MarkFailed(ctx context.Context, id string, attempts int, lastError string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     entity.StatusFailed,
			"attempts":   attempts,
			"last_error": lastError,
		}).Error
}

// CountByStatus aggregates outbox rows per status.
func (r *NotificationRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
