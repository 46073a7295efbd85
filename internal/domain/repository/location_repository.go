package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationRepository interface {
	// FindAllActive returns active locations with their availability periods
	// preloaded, ordered by display order. That ordering is the stable
	// tie-break for dates covered by more than one location.
	FindAllActive(db *gorm.DB) ([]entity.Location, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Location, error)
	// ReplacePeriods swaps a location's availability periods wholesale.
	ReplacePeriods(db *gorm.DB, locationID uuid.UUID, periods []entity.AvailabilityPeriod) error
}
