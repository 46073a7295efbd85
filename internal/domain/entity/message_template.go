package entity

import "time"

// MessageChannel is the delivery channel of a message template
type MessageChannel string

const (
	ChannelWhatsApp MessageChannel = "whatsapp"
	ChannelEmail    MessageChannel = "email"
)

// MessageTemplate is an admin-authored notification text with {variable}
// placeholders, resolved by the template service before sending.
type MessageTemplate struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Channel   MessageChannel `gorm:"type:varchar(20);not null" json:"channel"`
	Subject   string         `gorm:"type:varchar(255)" json:"subject,omitempty"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MessageTemplate) TableName() string {
	return "message_templates"
}

// Well-known template names used by the notification flow
const (
	TemplateBookingConfirmation = "booking_confirmation"
	TemplateBookingReminder     = "booking_reminder"
)
