package entity

import "github.com/google/uuid"

// AgendaFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
type AgendaFilter struct {
	Date       string    // Canonical YYYY-MM-DD; empty means no date filter
	LocationID uuid.UUID // uuid.Nil means all locations
	Status     string    // Empty means all statuses
}
