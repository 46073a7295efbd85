package handler

import (
	"encoding/json"
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
	"clinic-booking-api/pkg/validator"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

// Send renders a message template for an appointment and dispatches it. A
// transport failure still returns 200; the response body carries the
// delivery result.
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.notificationUsecase.Send(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Message template not found")
		case usecase.ErrNoRecipient:
			response.Error(w, http.StatusConflict, "Client has no contact for the template channel", nil)
		default:
			response.InternalServerError(w, "Failed to send notification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification processed", result)
}
