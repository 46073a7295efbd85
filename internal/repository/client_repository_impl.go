package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientRepository struct{}

func NewClientRepository() domainRepo.ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) Create(db *gorm.DB, client *entity.Client) error {
	return db.Create(client).Error
}

func (r *clientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := db.Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindByCPF(db *gorm.DB, cleanCPF string) (*entity.Client, error) {
	var client entity.Client
	err := db.Where("cpf = ?", cleanCPF).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Update(db *gorm.DB, client *entity.Client) error {
	return db.Omit("Appointments").Save(client).Error
}
