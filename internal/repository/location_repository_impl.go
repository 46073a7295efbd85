package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type locationRepository struct{}

func NewLocationRepository() domainRepo.LocationRepository {
	return &locationRepository{}
}

func (r *locationRepository) FindAllActive(db *gorm.DB) ([]entity.Location, error) {
	var locations []entity.Location
	err := db.
		Preload("Periods", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date ASC")
		}).
		Where("is_active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Location, error) {
	var location entity.Location
	err := db.Preload("Periods").Where("id = ?", id).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) ReplacePeriods(db *gorm.DB, locationID uuid.UUID, periods []entity.AvailabilityPeriod) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("location_id = ?", locationID).Delete(&entity.AvailabilityPeriod{}).Error; err != nil {
			return err
		}
		if len(periods) == 0 {
			return nil
		}
		for i := range periods {
			periods[i].LocationID = locationID
		}
		return tx.Create(&periods).Error
	})
}
