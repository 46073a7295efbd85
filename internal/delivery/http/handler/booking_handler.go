package handler

import (
	"encoding/json"
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
	"clinic-booking-api/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCPF:
			response.Error(w, http.StatusBadRequest, "CPF is not valid", nil)
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format", nil)
		case usecase.ErrPastDate:
			response.Error(w, http.StatusBadRequest, "Cannot book a past date", nil)
		case usecase.ErrProcedureNotFound:
			response.NotFound(w, "Procedure not found")
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		case usecase.ErrLocationClosed:
			response.Error(w, http.StatusConflict, "Location is not open on the requested date", nil)
		case usecase.ErrUnknownOption:
			response.Error(w, http.StatusBadRequest, "Selection does not belong to the procedure", nil)
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) ListProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := h.bookingUsecase.ListProcedures(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get procedures")
		return
	}

	response.Success(w, http.StatusOK, "Procedures retrieved successfully", procedures)
}
