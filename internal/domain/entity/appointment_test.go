package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_PackageFlags(t *testing.T) {
	tests := []struct {
		name             string
		sessionNumber    int
		totalSessions    int
		wantPackage      bool
		wantFirst        bool
		wantCountedValue bool
	}{
		{name: "single visit", sessionNumber: 1, totalSessions: 1, wantPackage: false, wantFirst: true, wantCountedValue: true},
		{name: "anchor of a package", sessionNumber: 1, totalSessions: 5, wantPackage: true, wantFirst: true, wantCountedValue: true},
		{name: "middle session", sessionNumber: 3, totalSessions: 5, wantPackage: true, wantFirst: false, wantCountedValue: false},
		{name: "last session", sessionNumber: 5, totalSessions: 5, wantPackage: true, wantFirst: false, wantCountedValue: false},
		{name: "two session package follow-up", sessionNumber: 2, totalSessions: 2, wantPackage: true, wantFirst: false, wantCountedValue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{SessionNumber: tt.sessionNumber, TotalSessions: tt.totalSessions}
			assert.Equal(t, tt.wantPackage, a.IsPackage())
			assert.Equal(t, tt.wantFirst, a.IsFirstSession())
			assert.Equal(t, tt.wantCountedValue, a.ShouldCountValue())
		})
	}
}

func TestAppointment_DisplayName(t *testing.T) {
	t.Run("single visit keeps the procedure name", func(t *testing.T) {
		a := Appointment{SessionNumber: 1, TotalSessions: 1}
		assert.Equal(t, "Limpeza de Pele", a.DisplayName("Limpeza de Pele"))
	})

	t.Run("anchor session keeps the procedure name", func(t *testing.T) {
		a := Appointment{SessionNumber: 1, TotalSessions: 4}
		assert.Equal(t, "Depilação a Laser", a.DisplayName("Depilação a Laser"))
	})

	t.Run("follow-up gets the return marker", func(t *testing.T) {
		a := Appointment{SessionNumber: 3, TotalSessions: 4}
		assert.Equal(t, "Depilação a Laser (retorno 3/4)", a.DisplayName("Depilação a Laser"))
	})
}

func TestAppointment_Cancel(t *testing.T) {
	a := Appointment{Status: AppointmentStatusScheduled}
	assert.False(t, a.IsCancelled())

	a.Cancel()

	assert.True(t, a.IsCancelled())
	assert.Equal(t, AppointmentStatusCancelled, a.Status)
}
