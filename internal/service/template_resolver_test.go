package service

import (
	"context"
	"testing"

	"clinic-booking-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func newTestResolver() *TemplateResolver {
	return NewTemplateResolver(NewCalendarService(newFakeSettingsSource(nil), testLogger()))
}

func TestTemplateResolver_BasicSubstitution(t *testing.T) {
	r := newTestResolver()

	out := r.Resolve("Olá {clientName}", map[string]string{"clientName": "Ana"}, LocationInputs{})
	assert.Equal(t, "Olá Ana", out)
}

func TestTemplateResolver_UnresolvedKeysStayLiteral(t *testing.T) {
	r := newTestResolver()

	out := r.Resolve("Olá {clientName}, até {data}", map[string]string{}, LocationInputs{})
	assert.Equal(t, "Olá {clientName}, até {data}", out)
}

func TestTemplateResolver_RepeatedPlaceholders(t *testing.T) {
	r := newTestResolver()

	out := r.Resolve("{clientName}, confirmando: {clientName}?", map[string]string{"clientName": "Bruno"}, LocationInputs{})
	assert.Equal(t, "Bruno, confirmando: Bruno?", out)
}

func TestTemplateResolver_SynonymsResolveBothWays(t *testing.T) {
	r := newTestResolver()

	t.Run("canonical variable fills portuguese template", func(t *testing.T) {
		out := r.Resolve("Olá {nomeCliente}, seu horário é {hora}", map[string]string{
			"clientName": "Ana",
			"time":       "14:30",
		}, LocationInputs{})
		assert.Equal(t, "Olá Ana, seu horário é 14:30", out)
	})

	t.Run("portuguese variable fills canonical template", func(t *testing.T) {
		out := r.Resolve("Hello {clientName}, at {time}", map[string]string{
			"nomeCliente": "Ana",
			"hora":        "14:30",
		}, LocationInputs{})
		assert.Equal(t, "Hello Ana, at 14:30", out)
	})

	t.Run("explicit value is never overwritten by a synonym", func(t *testing.T) {
		out := r.Resolve("{clientName}/{nomeCliente}", map[string]string{
			"clientName":  "Ana",
			"nomeCliente": "Dona Ana",
		}, LocationInputs{})
		assert.Equal(t, "Ana/Dona Ana", out)
	})
}

func TestTemplateResolver_LocationBlockFromFields(t *testing.T) {
	r := newTestResolver()
	loc := &entity.Location{
		Name:    "Clínica Centro",
		City:    "São Paulo",
		Address: "Rua Augusta, 100",
		MapsURL: "https://maps.example/centro",
	}

	t.Run("assembled from the location record", func(t *testing.T) {
		out := r.Resolve("{locationBlock}", nil, LocationInputs{Location: loc})
		assert.Equal(t, "📍 Clínica Centro\nRua Augusta, 100\nSão Paulo\nhttps://maps.example/centro", out)
	})

	t.Run("explicit fields win over the record", func(t *testing.T) {
		out := r.Resolve("{locationBlock}", nil, LocationInputs{
			Location:   loc,
			ClinicName: "Clínica Jardins",
		})
		assert.Equal(t, "📍 Clínica Jardins\nRua Augusta, 100\nSão Paulo\nhttps://maps.example/centro", out)
	})

	t.Run("empty fields are omitted", func(t *testing.T) {
		out := r.Resolve("{locationBlock}", nil, LocationInputs{
			ClinicName: "Clínica Centro",
			MapsURL:    "https://maps.example/centro",
		})
		assert.Equal(t, "📍 Clínica Centro\nhttps://maps.example/centro", out)
	})

	t.Run("portuguese synonym resolves the block too", func(t *testing.T) {
		out := r.Resolve("{blocoLocal}", nil, LocationInputs{ClinicName: "Clínica Centro"})
		assert.Equal(t, "📍 Clínica Centro", out)
	})

	t.Run("no inputs leaves the placeholder literal", func(t *testing.T) {
		out := r.Resolve("{locationBlock}", nil, LocationInputs{})
		assert.Equal(t, "{locationBlock}", out)
	})
}

func TestTemplateResolver_PrebuiltBlockUsedAsIs(t *testing.T) {
	r := newTestResolver()

	out := r.Resolve("{locationBlock}", nil, LocationInputs{
		Block: "Clínica Centro\nRua Augusta, 100\nSão Paulo",
		// Discrete fields are ignored when a block is supplied.
		ClinicName: "Outra Clínica",
	})
	assert.Equal(t, "📍 Clínica Centro\nRua Augusta, 100\nSão Paulo", out)
}

func TestTemplateResolver_PrebuiltBlockPinNotDuplicated(t *testing.T) {
	r := newTestResolver()

	out := r.Resolve("{locationBlock}", nil, LocationInputs{
		Block: "📍 Clínica Centro\nRua Augusta, 100",
	})
	assert.Equal(t, "📍 Clínica Centro\nRua Augusta, 100", out)
}

func TestTemplateResolver_AppointmentVariables(t *testing.T) {
	r := newTestResolver()
	appt := &entity.Appointment{
		Date:          "2025-10-18",
		Time:          "14:30",
		SessionNumber: 2,
		TotalSessions: 4,
	}
	client := &entity.Client{FullName: "Ana Souza", CPF: "52998224725"}
	procedure := &entity.Procedure{Name: "Depilação a Laser"}

	vars := r.AppointmentVariables(context.Background(), appt, client, procedure)

	assert.Equal(t, "18/10/2025", vars["date"])
	assert.Equal(t, "14:30", vars["time"])
	assert.Equal(t, "Ana Souza", vars["clientName"])
	assert.Equal(t, "529.***.**7-25", vars["clientCpf"])
	assert.Equal(t, "Depilação a Laser (retorno 2/4)", vars["procedureName"])
}
