package repository

import (
	"context"
	"errors"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"gorm.io/gorm"
)

// ApplicationRepository staff application storage
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) FindAll(ctx context.Context, page, pageSize int, status string) ([]entity.StaffApplication, int64, error) {
	var items []entity.StaffApplication
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StaffApplication{})
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

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*entity.StaffApplication, error) {
	var app entity.StaffApplication
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httputil.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app *entity.StaffApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// Decide commits an approval or rejection in one transaction. When the
// decision creates a user account, the account row is written in the same
// transaction so credentials never exist without their decision record.
func (r *ApplicationRepository) Decide(ctx context.Context, app *entity.StaffApplication, user *entity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.StaffApplication{}).
			Where("id = ? AND status = ?", app.ID, entity.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":           app.Status,
				"rejection_reason": app.RejectionReason,
				"decided_by":       app.DecidedBy,
				"decided_at":       app.DecidedAt,
				"user_id":          app.UserID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return httputil.ErrNotFound
		}
		if user != nil {
			if err := tx.Create(user).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.StaffApplication{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httputil.ErrNotFound
	}
	return nil
}
