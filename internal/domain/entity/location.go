package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a clinic unit of the chain
type Location struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	City         string    `gorm:"type:varchar(120);not null" json:"city"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	MapsURL      string    `gorm:"type:text" json:"maps_url,omitempty"`
	Color        string    `gorm:"type:varchar(20)" json:"color,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	IsActive     *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Periods []AvailabilityPeriod `gorm:"foreignKey:LocationID" json:"periods,omitempty"`
}

func (Location) TableName() string {
	return "locations"
}

// AvailabilityPeriod is a date range during which a location accepts bookings.
// Dates are canonical YYYY-MM-DD strings, never timestamps: comparing
// timestamps built at local midnight shifts by a day across time zones, and
// this system compares calendar days only. EndDate nil means a single-day
// period.
type AvailabilityPeriod struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index" json:"location_id"`
	StartDate  string    `gorm:"type:char(10);not null" json:"start_date"`
	EndDate    *string   `gorm:"type:char(10)" json:"end_date,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AvailabilityPeriod) TableName() string {
	return "availability_periods"
}

// Contains reports whether the period covers the given canonical date,
// inclusive on both ends. Lexicographic comparison of YYYY-MM-DD strings is
// a total order over calendar days and is zone-agnostic.
func (p AvailabilityPeriod) Contains(date string) bool {
	end := p.StartDate
	if p.EndDate != nil {
		end = *p.EndDate
	}
	return p.StartDate <= date && date <= end
}

// OpenPeriodsOn returns every period covering the given date. Overlapping
// periods all match; tie-break (display order, color) is the caller's job.
// Malformed bounds simply match nothing or everything, never panic.
func OpenPeriodsOn(date string, periods []AvailabilityPeriod) []AvailabilityPeriod {
	open := make([]AvailabilityPeriod, 0, len(periods))
	for _, p := range periods {
		if p.Contains(date) {
			open = append(open, p)
		}
	}
	return open
}
