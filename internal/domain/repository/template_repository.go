package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type TemplateRepository interface {
	FindByName(db *gorm.DB, name string) (*entity.MessageTemplate, error)
	FindAll(db *gorm.DB) ([]entity.MessageTemplate, error)
	Save(db *gorm.DB, template *entity.MessageTemplate) error
}
