package entity

import "time"

// FAQ storefront FAQ entry
type FAQ struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	Question string `json:"question" gorm:"size:500;not null"`
	Answer   string `json:"answer" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FAQ) TableName() string {
	return "support_faqs"
}
