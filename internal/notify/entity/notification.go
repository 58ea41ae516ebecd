package entity

import "time"

// Notification one durable outbox row. The triggering business write commits
// first; delivery happens later in the dispatcher, with bounded retry.
type Notification struct {
	ID            string     `json:"id" gorm:"primaryKey;size:32"`
	Kind          string     `json:"kind" gorm:"size:50;not null;index"`
	Recipient     string     `json:"recipient" gorm:"size:200;not null"`
	Payload       string     `json:"payload" gorm:"type:jsonb;not null"`
	Status        string     `json:"status" gorm:"size:20;not null;default:pending;index"`
	Attempts      int        `json:"attempts" gorm:"default:0"`
	LastError     string     `json:"last_error" gorm:"size:1000"`
	MessageID     string     `json:"message_id" gorm:"size:100"`
	NextAttemptAt time.Time  `json:"next_attempt_at" gorm:"index"`
	SentAt        *time.Time `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Notification) TableName() string {
	return "notify_notifications"
}

// Notification kinds
const (
	KindOrderStatus   = "order_status"
	KindStaffApproved = "staff_approved"
	KindStaffRejected = "staff_rejected"
)

// Notification statuses. failed is terminal, reached when the attempt budget
// is spent.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// OrderStatusPayload customer order mail data
type OrderStatusPayload struct {
	Name    string `json:"name"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// StaffDecisionPayload applicant decision mail data. Credentials are present
// only on approval.
type StaffDecisionPayload struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Outcome  string `json:"outcome"`
	Reason   string `json:"reason,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}
