package dto

import "github.com/google/uuid"

// Request DTOs

type AvailabilityPeriodRequest struct {
	StartDate string  `json:"start_date" validate:"required,len=10"` // Format: YYYY-MM-DD
	EndDate   *string `json:"end_date" validate:"omitempty,len=10"`  // Nil means single-day period
}

type ReplacePeriodsRequest struct {
	Periods []AvailabilityPeriodRequest `json:"periods" validate:"dive"`
}

// Response DTOs

type AvailabilityPeriodResponse struct {
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
}

type LocationResponse struct {
	ID           uuid.UUID                    `json:"id"`
	Name         string                       `json:"name"`
	City         string                       `json:"city"`
	Address      string                       `json:"address,omitempty"`
	MapsURL      string                       `json:"maps_url,omitempty"`
	Color        string                       `json:"color,omitempty"`
	DisplayOrder int                          `json:"display_order"`
	Periods      []AvailabilityPeriodResponse `json:"periods,omitempty"`
}

type OpenLocationsResponse struct {
	Date        string             `json:"date"`
	DisplayDate string             `json:"display_date"`
	Locations   []LocationResponse `json:"locations"`
	Total       int                `json:"total"`
}
