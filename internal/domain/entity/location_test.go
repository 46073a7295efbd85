package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAvailabilityPeriod_Contains(t *testing.T) {
	tests := []struct {
		name   string
		period AvailabilityPeriod
		date   string
		want   bool
	}{
		{
			name:   "inside range",
			period: AvailabilityPeriod{StartDate: "2025-09-30", EndDate: strPtr("2025-10-18")},
			date:   "2025-10-05",
			want:   true,
		},
		{
			name:   "start boundary inclusive",
			period: AvailabilityPeriod{StartDate: "2025-09-30", EndDate: strPtr("2025-10-18")},
			date:   "2025-09-30",
			want:   true,
		},
		{
			name:   "end boundary inclusive",
			period: AvailabilityPeriod{StartDate: "2025-09-30", EndDate: strPtr("2025-10-18")},
			date:   "2025-10-18",
			want:   true,
		},
		{
			name:   "day after end",
			period: AvailabilityPeriod{StartDate: "2025-09-30", EndDate: strPtr("2025-10-18")},
			date:   "2025-10-19",
			want:   false,
		},
		{
			name:   "day before start",
			period: AvailabilityPeriod{StartDate: "2025-09-30", EndDate: strPtr("2025-10-18")},
			date:   "2025-09-29",
			want:   false,
		},
		{
			name:   "nil end matches start day only",
			period: AvailabilityPeriod{StartDate: "2025-10-01"},
			date:   "2025-10-01",
			want:   true,
		},
		{
			name:   "nil end excludes next day",
			period: AvailabilityPeriod{StartDate: "2025-10-01"},
			date:   "2025-10-02",
			want:   false,
		},
		{
			name:   "year boundary",
			period: AvailabilityPeriod{StartDate: "2025-12-29", EndDate: strPtr("2026-01-03")},
			date:   "2026-01-01",
			want:   true,
		},
		{
			name:   "inverted bounds match nothing",
			period: AvailabilityPeriod{StartDate: "2025-10-18", EndDate: strPtr("2025-09-30")},
			date:   "2025-10-05",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Contains(tt.date))
		})
	}
}

// Nil EndDate must behave exactly like EndDate == StartDate.
func TestAvailabilityPeriod_NilEndEqualsSingleDay(t *testing.T) {
	dates := []string{"2025-09-30", "2025-10-01", "2025-10-02"}
	openEnded := AvailabilityPeriod{StartDate: "2025-10-01"}
	singleDay := AvailabilityPeriod{StartDate: "2025-10-01", EndDate: strPtr("2025-10-01")}

	for _, d := range dates {
		assert.Equal(t, singleDay.Contains(d), openEnded.Contains(d), "date %s", d)
	}
}

func TestOpenPeriodsOn(t *testing.T) {
	locA := uuid.New()
	locB := uuid.New()
	periods := []AvailabilityPeriod{
		{LocationID: locA, StartDate: "2025-09-30", EndDate: strPtr("2025-10-18")},
		{LocationID: locB, StartDate: "2025-10-10", EndDate: strPtr("2025-10-25")},
		{LocationID: locA, StartDate: "2025-11-01"},
	}

	t.Run("single match", func(t *testing.T) {
		open := OpenPeriodsOn("2025-10-01", periods)
		require.Len(t, open, 1)
		assert.Equal(t, locA, open[0].LocationID)
	})

	t.Run("overlap returns all matches in input order", func(t *testing.T) {
		open := OpenPeriodsOn("2025-10-15", periods)
		require.Len(t, open, 2)
		assert.Equal(t, locA, open[0].LocationID)
		assert.Equal(t, locB, open[1].LocationID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, OpenPeriodsOn("2025-10-30", periods))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, OpenPeriodsOn("2025-10-15", nil))
	})
}
