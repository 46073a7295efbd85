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

type AgendaHandler struct {
	agendaUsecase usecase.AgendaUsecase
	validator     *validator.CustomValidator
}

func NewAgendaHandler(agendaUsecase usecase.AgendaUsecase, validator *validator.CustomValidator) *AgendaHandler {
	return &AgendaHandler{
		agendaUsecase: agendaUsecase,
		validator:     validator,
	}
}

// GetAgenda lists the appointments of a day. Query params: date (YYYY-MM-DD,
// defaults to today in the clinic timezone) and location_id (optional filter).
func (h *AgendaHandler) GetAgenda(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	locationID := uuid.Nil
	if raw := r.URL.Query().Get("location_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
			return
		}
		locationID = parsed
	}

	agenda, err := h.agendaUsecase.GetAgenda(r.Context(), date, locationID)
	if err != nil {
		response.InternalServerError(w, "Failed to get agenda")
		return
	}

	response.Success(w, http.StatusOK, "Agenda retrieved successfully", agenda)
}

func (h *AgendaHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err = h.agendaUsecase.UpdatePayment(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAnchorSession:
			response.Error(w, http.StatusConflict, "Payment is tracked on the package's first session", nil)
		case usecase.ErrInvalidPaymentValue:
			response.Error(w, http.StatusBadRequest, "Payment value is not a valid amount", nil)
		default:
			response.InternalServerError(w, "Failed to update payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment updated successfully", nil)
}

func (h *AgendaHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	err = h.agendaUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAlreadyCancelled:
			response.Error(w, http.StatusConflict, "Appointment is already cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// ScheduleNextSession books the next follow-up session of a package,
// anchored on the package's first appointment.
func (h *AgendaHandler) ScheduleNextSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	anchorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.ScheduleSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.agendaUsecase.ScheduleNextSession(r.Context(), anchorID, req.Date, req.Time)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAPackage:
			response.Error(w, http.StatusConflict, "Sessions are scheduled from the package's first session", nil)
		case usecase.ErrPackageComplete:
			response.Error(w, http.StatusConflict, "All package sessions are already scheduled", nil)
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format", nil)
		default:
			response.InternalServerError(w, "Failed to schedule session")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Session scheduled successfully", entry)
}
