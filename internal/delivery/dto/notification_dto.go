package dto

import "github.com/google/uuid"

// Request DTOs

type SendNotificationRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	TemplateName  string    `json:"template_name" validate:"required"`
}

// Response DTOs

type NotificationResponse struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	TemplateName  string    `json:"template_name"`
	Channel       string    `json:"channel"`
	Recipient     string    `json:"recipient"`
	Body          string    `json:"body"`
	Sent          bool      `json:"sent"`
	Error         string    `json:"error,omitempty"`
}
