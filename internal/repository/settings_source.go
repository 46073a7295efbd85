package repository

import (
	"context"

	domainRepo "clinic-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

// SettingsSource adapts the gorm-backed setting repository to the calendar
// service's storage-agnostic configuration interface.
type SettingsSource struct {
	db   *gorm.DB
	repo domainRepo.SettingRepository
}

func NewSettingsSource(db *gorm.DB, repo domainRepo.SettingRepository) *SettingsSource {
	return &SettingsSource{db: db, repo: repo}
}

func (s *SettingsSource) Read(ctx context.Context, keys []string) (map[string]string, error) {
	return s.repo.Get(s.db.WithContext(ctx), keys)
}

func (s *SettingsSource) Write(ctx context.Context, key, value string) error {
	return s.repo.Set(s.db.WithContext(ctx), key, value)
}
