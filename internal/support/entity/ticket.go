package entity

import "time"

// SupportTicket is a customer support request with a bounded status lifecycle.
type SupportTicket struct {
	ID      string  `json:"id" gorm:"primaryKey;size:32"`
	Name    string  `json:"name" gorm:"size:100;not null"`
	Email   string  `json:"email" gorm:"size:200;not null"`
	Subject string  `json:"subject" gorm:"size:200;not null"`
	Message string  `json:"message" gorm:"type:text;not null"`
	Status  string  `json:"status" gorm:"size:20;not null;default:Pending;index"`
	OrderID *string `json:"order_id" gorm:"size:32"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Replies []TicketReply `json:"replies,omitempty" gorm:"foreignKey:TicketID"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}

// TicketReply is one entry of the ticket conversation. Replies live in their own
// table so a concurrent append is a plain row insert, never a read-modify-write
// of the ticket document.
type TicketReply struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	TicketID string `json:"ticket_id" gorm:"size:32;not null;index"`
	Sender   string `json:"sender" gorm:"size:20;not null"` // Customer/CSM
	Message  string `json:"message" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (TicketReply) TableName() string {
	return "support_ticket_replies"
}

// Ticket statuses
const (
	TicketStatusPending   = "Pending"
	TicketStatusResponded = "Responded"
	TicketStatusResolved  = "Resolved"
)

// AllTicketStatuses in lifecycle order, for reporting.
var AllTicketStatuses = []string{TicketStatusPending, TicketStatusResponded, TicketStatusResolved}

// Reply senders
const (
	ReplySenderCustomer = "Customer"
	ReplySenderCSM      = "CSM"
)

// Ticket lifecycle events
const (
	TicketEventReplyAdded = "reply_added"
	TicketEventResolve    = "resolve"
)

// ValidTicketTransitions lists the legal status moves. Resolved is terminal.
var ValidTicketTransitions = map[string][]string{
	TicketStatusPending:   {TicketStatusResponded, TicketStatusResolved},
	TicketStatusResponded: {TicketStatusResolved},
	TicketStatusResolved:  {},
}

// CanTransitionTicket reports whether from→to is legal. Same-state writes are
// allowed so repeated calls stay idempotent.
func CanTransitionTicket(from, to string) bool {
	if from == to {
		return true
	}
	for _, s := range ValidTicketTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// NextTicketStatus is the explicit transition function for lifecycle events.
// Appending a reply advances Pending to Responded exactly once and leaves any
// other status untouched.
func NextTicketStatus(current, event string) string {
	switch event {
	case TicketEventReplyAdded:
		if current == TicketStatusPending {
			return TicketStatusResponded
		}
		return current
	case TicketEventResolve:
		if current == TicketStatusResolved {
			return current
		}
		return TicketStatusResolved
	}
	return current
}

// IsTicketStatus reports whether s is a known ticket status.
func IsTicketStatus(s string) bool {
	_, ok := ValidTicketTransitions[s]
	return ok
}

// IsReplySender reports whether s is a known conversation side.
func IsReplySender(s string) bool {
	return s == ReplySenderCustomer || s == ReplySenderCSM
}
