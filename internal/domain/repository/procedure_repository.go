package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProcedureRepository interface {
	// FindAllActive preloads options and discount rules; rules come ordered
	// by min_groups so the pricing engine's last-match-wins scan picks the
	// intended tier.
	FindAllActive(db *gorm.DB) ([]entity.Procedure, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Procedure, error)
}
