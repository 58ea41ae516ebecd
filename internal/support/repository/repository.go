package repository

import (
	"gorm.io/gorm"
)

// Repositories support context repository set
type Repositories struct {
	Ticket *TicketRepository
	FAQ    *FAQRepository
	Review *ReviewRepository
}

// NewRepositories creates the support repository set
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Ticket: NewTicketRepository(db),
		FAQ:    NewFAQRepository(db),
		Review: NewReviewRepository(db),
	}
}
