package repository

import "gorm.io/gorm"

type SettingRepository interface {
	// Get returns the values for the given keys; absent keys are simply
	// missing from the map.
	Get(db *gorm.DB, keys []string) (map[string]string, error)
	// Set upserts one key. Last write wins.
	Set(db *gorm.DB, key, value string) error
}
