package entity

import "time"

// Visit write-only storefront visit log, aggregated for the dashboard
type Visit struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	SourceIP  string    `json:"source_ip" gorm:"size:45"`
	VisitedAt time.Time `json:"visited_at" gorm:"not null;index"`

	CreatedAt time.Time `json:"created_at"`
}

func (Visit) TableName() string {
	return "sales_visits"
}
