package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/service"
	"clinic-booking-api/pkg/cpf"

	"github.com/shopspring/decimal"
)

// AgendaEntryToResponse builds one agenda row from an appointment and its
// resolved package/payment state. The client CPF leaves this layer masked.
func AgendaEntryToResponse(
	appt *entity.Appointment,
	info service.SessionInfo,
	paymentStatus entity.PaymentStatus,
	value decimal.Decimal,
	displayDate string,
) dto.AgendaEntryResponse {
	return dto.AgendaEntryResponse{
		ID:               appt.ID,
		Time:             appt.Time,
		Date:             appt.Date,
		DisplayDate:      displayDate,
		Status:           string(appt.Status),
		ClientName:       appt.Client.FullName,
		ClientCPF:        cpf.Mask(appt.Client.CPF),
		DisplayName:      info.DisplayName,
		LocationName:     appt.Location.Name,
		LocationColor:    appt.Location.Color,
		IsPackage:        info.IsPackage,
		SessionNumber:    info.SessionNumber,
		TotalSessions:    info.TotalSessions,
		PaymentStatus:    string(paymentStatus),
		Value:            value.StringFixed(2),
		ShouldCountValue: info.ShouldCountValue,
	}
}
