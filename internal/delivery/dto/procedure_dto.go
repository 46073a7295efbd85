package dto

import "github.com/google/uuid"

type ProcedureOptionResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	UnitPrice string    `json:"unit_price"`
}

type DiscountRuleResponse struct {
	MinGroups          int    `json:"min_groups"`
	MaxGroups          *int   `json:"max_groups,omitempty"`
	DiscountPercentage string `json:"discount_percentage"`
}

type ProcedureResponse struct {
	ID            uuid.UUID                 `json:"id"`
	Name          string                    `json:"name"`
	Description   string                    `json:"description,omitempty"`
	Price         string                    `json:"price"`
	TotalSessions int                       `json:"total_sessions"`
	Options       []ProcedureOptionResponse `json:"options,omitempty"`
	DiscountRules []DiscountRuleResponse    `json:"discount_rules,omitempty"`
}

type ProcedureListResponse struct {
	Procedures []ProcedureResponse `json:"procedures"`
	Total      int                 `json:"total"`
}
