package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByFilter(db *gorm.DB, filter *entity.AgendaFilter) ([]entity.Appointment, error)
	FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Appointment, error)
	// FindSessionsByParent returns the follow-up sessions anchored at the
	// given appointment.
	FindSessionsByParent(db *gorm.DB, parentID uuid.UUID) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
