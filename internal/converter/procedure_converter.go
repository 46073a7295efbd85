package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// ProcedureToResponse converts a Procedure entity to ProcedureResponse DTO.
// Prices are rendered with two decimals here; nothing upstream rounds.
func ProcedureToResponse(procedure *entity.Procedure) *dto.ProcedureResponse {
	if procedure == nil {
		return nil
	}

	response := &dto.ProcedureResponse{
		ID:            procedure.ID,
		Name:          procedure.Name,
		Description:   procedure.Description,
		Price:         procedure.Price.StringFixed(2),
		TotalSessions: procedure.TotalSessions,
	}

	for _, o := range procedure.Options {
		response.Options = append(response.Options, dto.ProcedureOptionResponse{
			ID:        o.ID,
			Kind:      string(o.Kind),
			Name:      o.Name,
			UnitPrice: o.UnitPrice.StringFixed(2),
		})
	}

	for _, r := range procedure.DiscountRules {
		response.DiscountRules = append(response.DiscountRules, dto.DiscountRuleResponse{
			MinGroups:          r.MinGroups,
			MaxGroups:          r.MaxGroups,
			DiscountPercentage: r.DiscountPercentage.StringFixed(2),
		})
	}

	return response
}

// ProceduresToResponses converts a slice of Procedure entities to DTOs
func ProceduresToResponses(procedures []entity.Procedure) []dto.ProcedureResponse {
	responses := make([]dto.ProcedureResponse, len(procedures))
	for i, procedure := range procedures {
		resp := ProcedureToResponse(&procedure)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
