package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a person booking appointments.
// CPF is stored clean (11 digits, no punctuation); formatting and masking
// happen at display time via pkg/cpf.
type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName    string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CPF         string    `gorm:"type:char(11);uniqueIndex;not null" json:"cpf"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:ClientID" json:"appointments,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}
