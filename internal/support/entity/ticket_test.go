package entity

import "testing"

func TestCanTransitionTicket(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{TicketStatusPending, TicketStatusResponded, true},
		{TicketStatusPending, TicketStatusResolved, true},
		{TicketStatusResponded, TicketStatusResolved, true},
		{TicketStatusResponded, TicketStatusPending, false},
		{TicketStatusResolved, TicketStatusPending, false},
		{TicketStatusResolved, TicketStatusResponded, false},
		{TicketStatusPending, TicketStatusPending, true},
		{TicketStatusResolved, TicketStatusResolved, true},
	}

	for _, c := range cases {
		if got := CanTransitionTicket(c.from, c.to); got != c.want {
			t.Errorf("CanTransitionTicket(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestNextTicketStatus(t *testing.T) {
	if got := NextTicketStatus(TicketStatusPending, TicketEventReplyAdded); got != TicketStatusResponded {
		t.Errorf("Expected reply to advance Pending to Responded, got %s", got)
	}
	if got := NextTicketStatus(TicketStatusResponded, TicketEventReplyAdded); got != TicketStatusResponded {
		t.Errorf("Expected reply to leave Responded alone, got %s", got)
	}
	if got := NextTicketStatus(TicketStatusResolved, TicketEventReplyAdded); got != TicketStatusResolved {
		t.Errorf("Expected reply not to reopen a Resolved ticket, got %s", got)
	}
	if got := NextTicketStatus(TicketStatusPending, TicketEventResolve); got != TicketStatusResolved {
		t.Errorf("Expected resolve event to close the ticket, got %s", got)
	}
	if got := NextTicketStatus(TicketStatusPending, "unknown_event"); got != TicketStatusPending {
		t.Errorf("Expected unknown events to change nothing, got %s", got)
	}
}
