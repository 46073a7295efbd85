package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrUnknownTimeZone = errors.New("unknown time zone id")

type SettingsUsecase interface {
	GetCalendarSettings(ctx context.Context) (*dto.CalendarSettingsResponse, error)
	UpdateTimeZone(ctx context.Context, req *dto.UpdateTimeZoneRequest) (*dto.CalendarSettingsResponse, error)
}

type settingsUsecase struct {
	log      *logrus.Logger
	calendar *service.CalendarService
}

func NewSettingsUsecase(log *logrus.Logger, calendar *service.CalendarService) SettingsUsecase {
	return &settingsUsecase{log: log, calendar: calendar}
}

func (u *settingsUsecase) GetCalendarSettings(ctx context.Context) (*dto.CalendarSettingsResponse, error) {
	cfg := u.calendar.Settings(ctx)
	today := u.calendar.Today(ctx)
	return &dto.CalendarSettingsResponse{
		TimeZoneID:    cfg.TimeZoneID,
		TimeZoneLabel: cfg.TimeZoneLabel,
		DateFormat:    cfg.DateFormat,
		TimeFormat:    cfg.TimeFormat,
		Today:         today,
		DisplayToday:  u.calendar.ToDisplayDate(today),
	}, nil
}

// UpdateTimeZone validates the zone id against the tz database before
// persisting; the write path surfaces errors, unlike the read path which
// always falls back.
func (u *settingsUsecase) UpdateTimeZone(ctx context.Context, req *dto.UpdateTimeZoneRequest) (*dto.CalendarSettingsResponse, error) {
	if _, err := time.LoadLocation(req.TimeZoneID); err != nil {
		return nil, ErrUnknownTimeZone
	}

	if err := u.calendar.UpdateTimeZone(ctx, req.TimeZoneID, req.TimeZoneLabel); err != nil {
		u.log.Warnf("Failed to update time zone to %s: %+v", req.TimeZoneID, err)
		return nil, err
	}
	return u.GetCalendarSettings(ctx)
}
