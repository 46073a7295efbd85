package repository

import (
	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingRepository struct{}

func NewSettingRepository() domainRepo.SettingRepository {
	return &settingRepository{}
}

func (r *settingRepository) Get(db *gorm.DB, keys []string) (map[string]string, error) {
	var settings []entity.Setting
	err := db.Where("key IN ?", keys).Find(&settings).Error
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	return values, nil
}

func (r *settingRepository) Set(db *gorm.DB, key, value string) error {
	setting := entity.Setting{Key: key, Value: value}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}
