package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type templateRepository struct{}

func NewTemplateRepository() domainRepo.TemplateRepository {
	return &templateRepository{}
}

func (r *templateRepository) FindByName(db *gorm.DB, name string) (*entity.MessageTemplate, error) {
	var template entity.MessageTemplate
	err := db.Where("name = ?", name).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) FindAll(db *gorm.DB) ([]entity.MessageTemplate, error) {
	var templates []entity.MessageTemplate
	err := db.Order("name ASC").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepository) Save(db *gorm.DB, template *entity.MessageTemplate) error {
	return db.Save(template).Error
}
