package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(db *gorm.DB, client *entity.Client) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Client, error)
	// FindByCPF looks a client up by the clean 11-digit CPF.
	FindByCPF(db *gorm.DB, cleanCPF string) (*entity.Client, error)
	Update(db *gorm.DB, client *entity.Client) error
}
