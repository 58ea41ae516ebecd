package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/service"
)

// Handlers support context handler set
type Handlers struct {
	Ticket *TicketHandler
	FAQ    *FAQHandler
	Review *ReviewHandler
}

// NewHandlers creates the support handler set
func NewHandlers(
	ticketSvc *service.TicketService,
	faqSvc *service.FAQService,
	reviewSvc *service.ReviewService,
) *Handlers {
	return &Handlers{
		Ticket: NewTicketHandler(ticketSvc),
		FAQ:    NewFAQHandler(faqSvc),
		Review: NewReviewHandler(reviewSvc),
	}
}
