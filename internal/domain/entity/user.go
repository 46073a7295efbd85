package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents a staff role in the admin dashboard
type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleReceptionist UserRole = "receptionist"
)

// User represents a staff account for the admin dashboard.
// Clients booking appointments are not users; they live in the clients table.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Role      UserRole  `gorm:"type:varchar(30);not null;index" json:"role"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
