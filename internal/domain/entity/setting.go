package entity

import "time"

// Setting is one key/value row of the configuration store.
// Last write wins per key; no transactional guarantees beyond that.
type Setting struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Setting keys for the calendar configuration
const (
	SettingTimeZone      = "calendar.timezone"
	SettingTimeZoneLabel = "calendar.timezone_label"
	SettingDateFormat    = "calendar.date_format"
	SettingTimeFormat    = "calendar.time_format"
)

// CalendarSettings is the process-wide calendar configuration, loaded once
// and replaced wholesale on admin update (never partially mutated).
type CalendarSettings struct {
	TimeZoneID    string
	TimeZoneLabel string
	DateFormat    string
	TimeFormat    string
}
