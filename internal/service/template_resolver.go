package service

import (
	"context"
	"strings"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/pkg/cpf"
)

// locationPin prefixes the first line of every rendered location block.
const locationPin = "📍"

// variableSynonyms maps the Portuguese template vocabulary onto the
// canonical variable names. Applied bidirectionally, so a template authored
// with either vocabulary resolves against the same variable set.
var variableSynonyms = map[string]string{
	"nomeCliente":  "clientName",
	"data":         "date",
	"hora":         "time",
	"procedimento": "procedureName",
	"unidade":      "clinicName",
	"endereco":     "address",
	"cidade":       "city",
	"mapa":         "mapsUrl",
	"blocoLocal":   "locationBlock",
}

// LocationInputs feeds the locationBlock variable. Explicit fields win over
// the looked-up location record, which wins over the defaults. A non-empty
// Block short-circuits assembly entirely.
type LocationInputs struct {
	Block      string // pre-built multi-line block, used as-is
	ClinicName string
	City       string
	Address    string
	MapsURL    string
	Location   *entity.Location
}

// TemplateResolver substitutes {variable} placeholders in message templates.
// Date-valued variables are pre-formatted through the calendar service so
// clients see DD/MM/YYYY regardless of how the date is stored.
type TemplateResolver struct {
	calendar *CalendarService
}

func NewTemplateResolver(calendar *CalendarService) *TemplateResolver {
	return &TemplateResolver{calendar: calendar}
}

// Resolve renders the template against the given variables. Every literal
// {key} occurrence of a known variable is replaced; unknown keys stay as
// literal {key} placeholders, never an error.
func (r *TemplateResolver) Resolve(template string, vars map[string]string, loc LocationInputs) string {
	merged := make(map[string]string, 2*len(vars)+2)
	for k, v := range vars {
		merged[k] = v
	}

	// Synonym pass: both vocabularies resolve to the same substitution.
	for alt, canonical := range variableSynonyms {
		if v, ok := merged[canonical]; ok {
			if _, has := merged[alt]; !has {
				merged[alt] = v
			}
		}
		if v, ok := merged[alt]; ok {
			if _, has := merged[canonical]; !has {
				merged[canonical] = v
			}
		}
	}

	if _, has := merged["locationBlock"]; !has {
		if block := buildLocationBlock(loc); block != "" {
			merged["locationBlock"] = block
			merged["blocoLocal"] = block
		}
	}

	out := template
	for k, v := range merged {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

// AppointmentVariables builds the standard variable set for an appointment
// notification, with the client CPF already masked for display.
func (r *TemplateResolver) AppointmentVariables(ctx context.Context, appt *entity.Appointment, client *entity.Client, procedure *entity.Procedure) map[string]string {
	vars := map[string]string{
		"date": r.calendar.ToDisplayDate(appt.Date),
		"time": appt.Time,
	}
	if client != nil {
		vars["clientName"] = client.FullName
		vars["clientCpf"] = cpf.Mask(client.CPF)
	}
	if procedure != nil {
		vars["procedureName"] = appt.DisplayName(procedure.Name)
	}
	return vars
}

func buildLocationBlock(in LocationInputs) string {
	if strings.TrimSpace(in.Block) != "" {
		// Pre-built block: only the first line is reformatted with the pin.
		lines := strings.Split(in.Block, "\n")
		lines[0] = locationPin + " " + strings.TrimSpace(strings.TrimPrefix(lines[0], locationPin))
		return strings.Join(lines, "\n")
	}

	var rec entity.Location
	if in.Location != nil {
		rec = *in.Location
	}

	clinic := firstNonEmpty(in.ClinicName, rec.Name)
	address := firstNonEmpty(in.Address, rec.Address)
	city := firstNonEmpty(in.City, rec.City)
	mapsURL := firstNonEmpty(in.MapsURL, rec.MapsURL)

	lines := make([]string, 0, 4)
	if clinic != "" {
		lines = append(lines, locationPin+" "+clinic)
	}
	if address != "" {
		lines = append(lines, address)
	}
	if city != "" {
		lines = append(lines, city)
	}
	if mapsURL != "" {
		lines = append(lines, mapsURL)
	}
	return strings.Join(lines, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
