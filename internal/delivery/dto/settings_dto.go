package dto

// Request DTOs

type UpdateTimeZoneRequest struct {
	TimeZoneID    string `json:"timezone_id" validate:"required"`
	TimeZoneLabel string `json:"timezone_label" validate:"required"`
}

// Response DTOs

type CalendarSettingsResponse struct {
	TimeZoneID    string `json:"timezone_id"`
	TimeZoneLabel string `json:"timezone_label"`
	DateFormat    string `json:"date_format"`
	TimeFormat    string `json:"time_format"`
	Today         string `json:"today"`
	DisplayToday  string `json:"display_today"`
}
