package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusDone      AppointmentStatus = "done"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// PaymentStatus represents the payment state of an appointment.
// For package sessions only the anchor session's status is authoritative;
// follow-up sessions defer to it via PackageParentID.
type PaymentStatus string

const (
	PaymentStatusAwaiting PaymentStatus = "awaiting"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Appointment represents one visit, possibly one session of a multi-session
// treatment package. Date is a canonical YYYY-MM-DD string, Time an HH:MM
// string; neither is a timestamp (calendar-day semantics only).
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	ProcedureID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"procedure_id"`
	LocationID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"location_id"`
	Date            string            `gorm:"type:char(10);not null;index" json:"date"`
	Time            string            `gorm:"type:char(5);not null" json:"time"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	SessionNumber   int               `gorm:"not null;default:1" json:"session_number"`
	TotalSessions   int               `gorm:"not null;default:1" json:"total_sessions"`
	PackageParentID *uuid.UUID        `gorm:"type:uuid;index" json:"package_parent_id,omitempty"`
	PaymentStatus   PaymentStatus     `gorm:"type:varchar(20);index" json:"payment_status,omitempty"`
	PaymentValue    *decimal.Decimal  `gorm:"type:decimal(10,2)" json:"payment_value,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client    Client            `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Procedure Procedure         `gorm:"foreignKey:ProcedureID" json:"procedure,omitempty"`
	Location  Location          `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Items     []AppointmentItem `gorm:"foreignKey:AppointmentID" json:"items,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPackage checks if the appointment belongs to a multi-session package
func (a *Appointment) IsPackage() bool {
	return a.TotalSessions > 1
}

// IsFirstSession checks if this is the anchor session of its package.
// Single-visit appointments are their own anchor.
func (a *Appointment) IsFirstSession() bool {
	return a.SessionNumber == 1
}

// ShouldCountValue reports whether this appointment's value counts toward
// revenue. Only the anchor session carries the package price; follow-ups are
// zero-cost continuations.
func (a *Appointment) ShouldCountValue() bool {
	return a.IsFirstSession()
}

// DisplayName renders the agenda label: the procedure name for the anchor
// session, with a return-visit marker for follow-ups.
func (a *Appointment) DisplayName(procedureName string) string {
	if !a.IsPackage() || a.IsFirstSession() {
		return procedureName
	}
	return fmt.Sprintf("%s (retorno %d/%d)", procedureName, a.SessionNumber, a.TotalSessions)
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes the appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// AppointmentItem is one priced selection (body area or add-on spec) of a
// booking, persisted for the receipt and for discount recomputation.
type AppointmentItem struct {
	ID            int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID uuid.UUID           `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Kind          ProcedureOptionKind `gorm:"type:varchar(10);not null" json:"kind"`
	Name          string              `gorm:"type:varchar(255);not null" json:"name"`
	UnitPrice     decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}

func (AppointmentItem) TableName() string {
	return "appointment_items"
}
