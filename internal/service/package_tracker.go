package service

import (
	"context"

	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AppointmentLookup fetches an appointment by id. Read-only from the
// tracker's perspective; nil without error means not found (repository
// convention).
type AppointmentLookup func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

// SessionInfo is the display metadata of an appointment within its package.
type SessionInfo struct {
	IsPackage        bool
	IsFirstSession   bool
	SessionNumber    int
	TotalSessions    int
	DisplayName      string
	ShouldCountValue bool
}

// PackageTracker resolves multi-session treatment package state: display
// metadata per session and the authoritative payment status, which lives on
// the anchor session and is mirrored to follow-ups.
type PackageTracker struct {
	log *logrus.Logger
}

func NewPackageTracker(log *logrus.Logger) *PackageTracker {
	return &PackageTracker{log: log}
}

// Describe computes the agenda display metadata for an appointment.
func (t *PackageTracker) Describe(appt *entity.Appointment, procedureName string) SessionInfo {
	return SessionInfo{
		IsPackage:        appt.IsPackage(),
		IsFirstSession:   appt.IsFirstSession(),
		SessionNumber:    appt.SessionNumber,
		TotalSessions:    appt.TotalSessions,
		DisplayName:      appt.DisplayName(procedureName),
		ShouldCountValue: appt.ShouldCountValue(),
	}
}

// ResolvePaymentStatus returns the authoritative payment status of an
// appointment. Follow-up sessions defer to their anchor via PackageParentID
// with exactly one lookup; a failed or empty lookup degrades to the child's
// own status so payment display never blocks rendering.
func (t *PackageTracker) ResolvePaymentStatus(ctx context.Context, appt *entity.Appointment, lookup AppointmentLookup) entity.PaymentStatus {
	own := appt.PaymentStatus
	if own == "" {
		own = entity.PaymentStatusAwaiting
	}

	if appt.PackageParentID == nil {
		return own
	}

	parent, err := lookup(ctx, *appt.PackageParentID)
	if err != nil {
		t.log.Warnf("Failed to look up package anchor %s for appointment %s: %+v", appt.PackageParentID, appt.ID, err)
		return own
	}
	if parent == nil {
		t.log.Warnf("Package anchor %s for appointment %s not found", appt.PackageParentID, appt.ID)
		return own
	}

	if parent.PaymentStatus == "" {
		return entity.PaymentStatusAwaiting
	}
	return parent.PaymentStatus
}

// ResolveValue returns the appointment's recorded payment value if present,
// falling back to the procedure list price.
func (t *PackageTracker) ResolveValue(appt *entity.Appointment, procedure *entity.Procedure) decimal.Decimal {
	if appt.PaymentValue != nil {
		return *appt.PaymentValue
	}
	if procedure != nil {
		return procedure.Price
	}
	return decimal.Zero
}
