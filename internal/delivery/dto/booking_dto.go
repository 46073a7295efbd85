package dto

import "github.com/google/uuid"

// Request DTOs

type BookingSelectionRequest struct {
	OptionID uuid.UUID `json:"option_id" validate:"required"`
}

type CreateBookingRequest struct {
	ClientName  string                    `json:"client_name" validate:"required,min=3,max=255"`
	CPF         string                    `json:"cpf" validate:"required,cpf"`
	PhoneNumber string                    `json:"phone_number" validate:"required,min=8,max=20"`
	Email       string                    `json:"email" validate:"omitempty,email"`
	ProcedureID uuid.UUID                 `json:"procedure_id" validate:"required"`
	LocationID  uuid.UUID                 `json:"location_id" validate:"required"`
	Date        string                    `json:"date" validate:"required,len=10"` // Format: YYYY-MM-DD
	Time        string                    `json:"time" validate:"required,len=5"`  // Format: HH:MM
	Selections  []BookingSelectionRequest `json:"selections" validate:"omitempty,dive"`
}

// Response DTOs

type QuoteResponse struct {
	Subtotal           string `json:"subtotal"`
	Discount           string `json:"discount"`
	FinalTotal         string `json:"final_total"`
	DiscountPercentage string `json:"discount_percentage,omitempty"`
}

type BookingResponse struct {
	AppointmentID uuid.UUID     `json:"appointment_id"`
	Date          string        `json:"date"`
	DisplayDate   string        `json:"display_date"`
	Time          string        `json:"time"`
	LocationName  string        `json:"location_name"`
	ProcedureName string        `json:"procedure_name"`
	TotalSessions int           `json:"total_sessions"`
	Quote         QuoteResponse `json:"quote"`
}
