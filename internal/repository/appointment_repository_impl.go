package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Client").
		Preload("Procedure").
		Preload("Location").
		Preload("Items").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByFilter(db *gorm.DB, filter *entity.AgendaFilter) ([]entity.Appointment, error) {
	query := db.
		Preload("Client").
		Preload("Procedure").
		Preload("Location").
		Preload("Items")

	if filter != nil {
		if filter.Date != "" {
			query = query.Where("date = ?", filter.Date)
		}
		if filter.LocationID != uuid.Nil {
			query = query.Where("location_id = ?", filter.LocationID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var appointments []entity.Appointment
	err := query.Order("date ASC, time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Procedure").
		Preload("Location").
		Where("client_id = ?", clientID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindSessionsByParent(db *gorm.DB, parentID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("package_parent_id = ?", parentID).
		Order("session_number ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Client", "Procedure", "Location", "Items").Save(appointment).Error
}
