package entity

import "time"

// User a back office account. Passwords are stored bcrypt hashed.
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;size:32"`
	Username     string     `json:"username" gorm:"size:100;not null;uniqueIndex"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"size:200;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	Role         string     `json:"role" gorm:"size:50;not null"`
	Status       string     `json:"status" gorm:"size:20;not null;default:active"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "auth_users"
}

// User roles. admin can reach every guarded route.
const (
	RoleAdmin        = "admin"
	RoleCSM          = "csm"
	RoleSalesManager = "sales_manager"
	RoleGrower       = "grower"
	RoleInventory    = "inventory"
	RoleTransport    = "transport"
	RoleCustomer     = "customer"
)

// IsStaffRole reports whether r is a role a staff application can request.
func IsStaffRole(r string) bool {
	switch r {
	case RoleCSM, RoleSalesManager, RoleGrower, RoleInventory, RoleTransport:
		return true
	}
	return false
}

// User statuses
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)
