package dto

import "github.com/google/uuid"

// Request DTOs

type UpdatePaymentRequest struct {
	Status string  `json:"status" validate:"required,oneof=awaiting paid refunded"`
	Value  *string `json:"value" validate:"omitempty"` // Decimal string; anchor session only
}

type ScheduleSessionRequest struct {
	Date string `json:"date" validate:"required,len=10"` // Format: YYYY-MM-DD
	Time string `json:"time" validate:"required,len=5"`  // Format: HH:MM
}

// Response DTOs

type AgendaEntryResponse struct {
	ID               uuid.UUID `json:"id"`
	Time             string    `json:"time"`
	Date             string    `json:"date"`
	DisplayDate      string    `json:"display_date"`
	Status           string    `json:"status"`
	ClientName       string    `json:"client_name"`
	ClientCPF        string    `json:"client_cpf"` // Masked: XXX.***.**X-XX
	DisplayName      string    `json:"display_name"`
	LocationName     string    `json:"location_name"`
	LocationColor    string    `json:"location_color,omitempty"`
	IsPackage        bool      `json:"is_package"`
	SessionNumber    int       `json:"session_number"`
	TotalSessions    int       `json:"total_sessions"`
	PaymentStatus    string    `json:"payment_status"`
	Value            string    `json:"value"`
	ShouldCountValue bool      `json:"should_count_value"`
}

type AgendaResponse struct {
	Date         string                `json:"date"`
	Appointments []AgendaEntryResponse `json:"appointments"`
	Total        int                   `json:"total"`
	// Revenue sums the value of entries whose value counts (anchor sessions).
	Revenue string `json:"revenue"`
}
