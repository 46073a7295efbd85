package handler

import (
	"encoding/json"
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
	"clinic-booking-api/pkg/validator"
)

type SettingsHandler struct {
	settingsUsecase usecase.SettingsUsecase
	validator       *validator.CustomValidator
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase, validator *validator.CustomValidator) *SettingsHandler {
	return &SettingsHandler{
		settingsUsecase: settingsUsecase,
		validator:       validator,
	}
}

func (h *SettingsHandler) GetCalendarSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUsecase.GetCalendarSettings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get calendar settings")
		return
	}

	response.Success(w, http.StatusOK, "Calendar settings retrieved successfully", settings)
}

func (h *SettingsHandler) UpdateTimeZone(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTimeZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.settingsUsecase.UpdateTimeZone(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUnknownTimeZone:
			response.Error(w, http.StatusBadRequest, "Unknown time zone ID", nil)
		default:
			response.InternalServerError(w, "Failed to update time zone")
		}
		return
	}

	response.Success(w, http.StatusOK, "Time zone updated successfully", settings)
}
