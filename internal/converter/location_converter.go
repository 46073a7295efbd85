package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// LocationToResponse converts a Location entity to LocationResponse DTO
func LocationToResponse(location *entity.Location) *dto.LocationResponse {
	if location == nil {
		return nil
	}

	response := &dto.LocationResponse{
		ID:           location.ID,
		Name:         location.Name,
		City:         location.City,
		Address:      location.Address,
		MapsURL:      location.MapsURL,
		Color:        location.Color,
		DisplayOrder: location.DisplayOrder,
	}

	for _, p := range location.Periods {
		response.Periods = append(response.Periods, dto.AvailabilityPeriodResponse{
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
		})
	}

	return response
}

// LocationsToResponses converts a slice of Location entities to DTOs
func LocationsToResponses(locations []entity.Location) []dto.LocationResponse {
	responses := make([]dto.LocationResponse, len(locations))
	for i, location := range locations {
		resp := LocationToResponse(&location)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
