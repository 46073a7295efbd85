package usecase

import (
	"context"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LocationUsecase interface {
	GetOpenLocations(ctx context.Context, date string) (*dto.OpenLocationsResponse, error)
	ListLocations(ctx context.Context) ([]dto.LocationResponse, error)
	ReplacePeriods(ctx context.Context, locationID uuid.UUID, req *dto.ReplacePeriodsRequest) error
}

type locationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	locationRepo repository.LocationRepository
	calendar     *service.CalendarService
}

func NewLocationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	locationRepo repository.LocationRepository,
	calendar *service.CalendarService,
) LocationUsecase {
	return &locationUsecase{
		db:           db,
		log:          log,
		locationRepo: locationRepo,
		calendar:     calendar,
	}
}

// GetOpenLocations returns the locations open on the given date (today when
// empty), in the stable display order the repository guarantees. Dates
// covered by more than one location keep every match; the order is the
// tie-break.
func (u *locationUsecase) GetOpenLocations(ctx context.Context, date string) (*dto.OpenLocationsResponse, error) {
	if date == "" {
		date = u.calendar.Today(ctx)
	}

	locations, err := u.locationRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list locations: %+v", err)
		return nil, err
	}

	open := make([]entity.Location, 0, len(locations))
	for _, loc := range locations {
		if len(entity.OpenPeriodsOn(date, loc.Periods)) > 0 {
			open = append(open, loc)
		}
	}

	return &dto.OpenLocationsResponse{
		Date:        date,
		DisplayDate: u.calendar.ToDisplayDate(date),
		Locations:   converter.LocationsToResponses(open),
		Total:       len(open),
	}, nil
}

func (u *locationUsecase) ListLocations(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := u.locationRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list locations: %+v", err)
		return nil, err
	}
	return converter.LocationsToResponses(locations), nil
}

func (u *locationUsecase) ReplacePeriods(ctx context.Context, locationID uuid.UUID, req *dto.ReplacePeriodsRequest) error {
	db := u.db.WithContext(ctx)
	location, err := u.locationRepo.FindByID(db, locationID)
	if err != nil {
		u.log.Warnf("Failed to find location %s: %+v", locationID, err)
		return err
	}
	if location == nil {
		return ErrLocationNotFound
	}

	periods := make([]entity.AvailabilityPeriod, 0, len(req.Periods))
	for _, p := range req.Periods {
		periods = append(periods, entity.AvailabilityPeriod{
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
		})
	}

	if err := u.locationRepo.ReplacePeriods(db, locationID, periods); err != nil {
		u.log.Warnf("Failed to replace periods for location %s: %+v", locationID, err)
		return err
	}
	return nil
}
