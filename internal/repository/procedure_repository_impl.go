package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type procedureRepository struct{}

func NewProcedureRepository() domainRepo.ProcedureRepository {
	return &procedureRepository{}
}

// Discount rules are always loaded ordered by min_groups so that the pricing
// engine's last-matching-rule scan resolves the intended tier.
func orderedRules(db *gorm.DB) *gorm.DB {
	return db.Order("min_groups ASC, id ASC")
}

func (r *procedureRepository) FindAllActive(db *gorm.DB) ([]entity.Procedure, error) {
	var procedures []entity.Procedure
	err := db.
		Preload("Options").
		Preload("DiscountRules", orderedRules).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&procedures).Error
	if err != nil {
		return nil, err
	}
	return procedures, nil
}

func (r *procedureRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Procedure, error) {
	var procedure entity.Procedure
	err := db.
		Preload("Options").
		Preload("DiscountRules", orderedRules).
		Where("id = ?", id).
		First(&procedure).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &procedure, nil
}
