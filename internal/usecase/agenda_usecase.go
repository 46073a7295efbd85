package usecase

import (
	"context"
	"errors"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAlreadyCancelled    = errors.New("appointment is already cancelled")
	ErrNotAnchorSession    = errors.New("payment is recorded on the first session of the package")
	ErrNotAPackage         = errors.New("appointment is not part of a package")
	ErrPackageComplete     = errors.New("all sessions of the package are already scheduled")
	ErrInvalidPaymentValue = errors.New("invalid payment value")
)

type AgendaUsecase interface {
	GetAgenda(ctx context.Context, date string, locationID uuid.UUID) (*dto.AgendaResponse, error)
	UpdatePayment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdatePaymentRequest) error
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	ScheduleNextSession(ctx context.Context, anchorID uuid.UUID, date, sessionTime string) (*dto.AgendaEntryResponse, error)
}

type agendaUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	calendar        *service.CalendarService
	tracker         *service.PackageTracker
}

func NewAgendaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	calendar *service.CalendarService,
	tracker *service.PackageTracker,
) AgendaUsecase {
	return &agendaUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		calendar:        calendar,
		tracker:         tracker,
	}
}

// GetAgenda returns the day's appointments with package/session display
// metadata and the payment status resolved through each package's anchor.
// An empty date means today in the configured time zone.
func (u *agendaUsecase) GetAgenda(ctx context.Context, date string, locationID uuid.UUID) (*dto.AgendaResponse, error) {
	if date == "" {
		date = u.calendar.Today(ctx)
	}

	db := u.db.WithContext(ctx)
	appointments, err := u.appointmentRepo.FindByFilter(db, &entity.AgendaFilter{
		Date:       date,
		LocationID: locationID,
	})
	if err != nil {
		u.log.Warnf("Failed to load agenda for %s: %+v", date, err)
		return nil, err
	}

	lookup := func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	}

	displayDate := u.calendar.ToDisplayDate(date)
	entries := make([]dto.AgendaEntryResponse, 0, len(appointments))
	revenue := decimal.Zero
	for i := range appointments {
		appt := &appointments[i]
		info := u.tracker.Describe(appt, appt.Procedure.Name)
		status := u.tracker.ResolvePaymentStatus(ctx, appt, lookup)
		value := u.tracker.ResolveValue(appt, &appt.Procedure)
		if !info.ShouldCountValue {
			value = decimal.Zero
		} else if !appt.IsCancelled() {
			revenue = revenue.Add(value)
		}
		entries = append(entries, converter.AgendaEntryToResponse(appt, info, status, value, displayDate))
	}

	return &dto.AgendaResponse{
		Date:         date,
		Appointments: entries,
		Total:        len(entries),
		Revenue:      revenue.StringFixed(2),
	}, nil
}

// UpdatePayment records a payment status (and optionally a value) on an
// anchor session. Follow-up sessions are rejected: their payment state is
// the anchor's.
func (u *agendaUsecase) UpdatePayment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdatePaymentRequest) error {
	db := u.db.WithContext(ctx)
	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PackageParentID != nil {
		return ErrNotAnchorSession
	}

	appointment.PaymentStatus = entity.PaymentStatus(req.Status)
	if req.Value != nil {
		value, err := decimal.NewFromString(*req.Value)
		if err != nil || value.IsNegative() {
			return ErrInvalidPaymentValue
		}
		appointment.PaymentValue = &value
	}

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update payment for appointment %s: %+v", appointmentID, err)
		return err
	}
	return nil
}

func (u *agendaUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	db := u.db.WithContext(ctx)
	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return ErrAlreadyCancelled
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	return nil
}

// ScheduleNextSession books the next follow-up session of a package. The
// new session points at the anchor via PackageParentID and carries no value
// of its own.
func (u *agendaUsecase) ScheduleNextSession(ctx context.Context, anchorID uuid.UUID, date, sessionTime string) (*dto.AgendaEntryResponse, error) {
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return nil, ErrInvalidDate
	}

	db := u.db.WithContext(ctx)
	anchor, err := u.appointmentRepo.FindByID(db, anchorID)
	if err != nil {
		u.log.Warnf("Failed to find anchor appointment %s: %+v", anchorID, err)
		return nil, err
	}
	if anchor == nil {
		return nil, ErrAppointmentNotFound
	}
	if !anchor.IsPackage() || !anchor.IsFirstSession() {
		return nil, ErrNotAPackage
	}

	booked, err := u.appointmentRepo.FindSessionsByParent(db, anchor.ID)
	if err != nil {
		u.log.Warnf("Failed to count sessions for anchor %s: %+v", anchorID, err)
		return nil, err
	}
	nextSession := len(booked) + 2 // anchor is session 1
	if nextSession > anchor.TotalSessions {
		return nil, ErrPackageComplete
	}

	session := &entity.Appointment{
		ClientID:        anchor.ClientID,
		ProcedureID:     anchor.ProcedureID,
		LocationID:      anchor.LocationID,
		Date:            date,
		Time:            sessionTime,
		Status:          entity.AppointmentStatusScheduled,
		SessionNumber:   nextSession,
		TotalSessions:   anchor.TotalSessions,
		PackageParentID: &anchor.ID,
	}
	if err := u.appointmentRepo.Create(db, session); err != nil {
		u.log.Warnf("Failed to schedule session %d for anchor %s: %+v", nextSession, anchorID, err)
		return nil, err
	}

	// Reload with relations for the response row.
	created, err := u.appointmentRepo.FindByID(db, session.ID)
	if err != nil || created == nil {
		u.log.Warnf("Failed to reload session %s: %+v", session.ID, err)
		created = session
		created.Client = anchor.Client
		created.Procedure = anchor.Procedure
		created.Location = anchor.Location
	}

	info := u.tracker.Describe(created, created.Procedure.Name)
	status := u.tracker.ResolvePaymentStatus(ctx, created, func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return anchor, nil
	})
	entry := converter.AgendaEntryToResponse(created, info, status, decimal.Zero, u.calendar.ToDisplayDate(date))
	return &entry, nil
}
