package handler

import (
	"encoding/json"
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
	validator       *validator.CustomValidator
}

func NewLocationHandler(locationUsecase usecase.LocationUsecase, validator *validator.CustomValidator) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
		validator:       validator,
	}
}

// GetOpenLocations lists the locations open on a date. Query param: date
// (YYYY-MM-DD, defaults to today in the clinic timezone).
func (h *LocationHandler) GetOpenLocations(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" && len(date) != 10 {
		response.Error(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	locations, err := h.locationUsecase.GetOpenLocations(r.Context(), date)
	if err != nil {
		response.InternalServerError(w, "Failed to get locations")
		return
	}

	response.Success(w, http.StatusOK, "Locations retrieved successfully", locations)
}

func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationUsecase.ListLocations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get locations")
		return
	}

	response.Success(w, http.StatusOK, "Locations retrieved successfully", locations)
}

func (h *LocationHandler) ReplacePeriods(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	var req dto.ReplacePeriodsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err = h.locationUsecase.ReplacePeriods(r.Context(), locationID, &req)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		default:
			response.InternalServerError(w, "Failed to replace availability periods")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability periods updated successfully", nil)
}
