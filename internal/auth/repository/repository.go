package repository

import "gorm.io/gorm"

// Repositories auth context storage set
type Repositories struct {
	User        *UserRepository
	Application *ApplicationRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Application: NewApplicationRepository(db),
	}
}
