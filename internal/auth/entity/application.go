package entity

import "time"

// StaffApplication a request to join the back office staff. Approval issues
// credentials; both outcomes notify the applicant through the outbox.
type StaffApplication struct {
	ID              string     `json:"id" gorm:"primaryKey;size:32"`
	Name            string     `json:"name" gorm:"size:100;not null"`
	Email           string     `json:"email" gorm:"size:200;not null"`
	Role            string     `json:"role" gorm:"size:50;not null"`
	CoverLetter     string     `json:"cover_letter" gorm:"type:text"`
	Status          string     `json:"status" gorm:"size:20;not null;default:pending;index"`
	RejectionReason string     `json:"rejection_reason" gorm:"size:500"`
	DecidedBy       string     `json:"decided_by" gorm:"size:100"`
	DecidedAt       *time.Time `json:"decided_at"`
	UserID          *string    `json:"user_id" gorm:"size:32"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StaffApplication) TableName() string {
	return "auth_staff_applications"
}

// Application statuses. pending is the only non-terminal state.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)
