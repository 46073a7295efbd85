package service

import (
	"context"
	"sync"
	"time"

	"clinic-booking-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Defaults used when the settings store is unreachable or a key is unset.
// Date display must always proceed, so load failures are absorbed into these.
const (
	DefaultTimeZoneID    = "America/Sao_Paulo"
	DefaultTimeZoneLabel = "Brasília (GMT-3)"
	DefaultDateFormat    = "DD/MM/YYYY"
	DefaultTimeFormat    = "HH:mm"
)

const canonicalDateLayout = "2006-01-02"

// calendarFlightKey collapses concurrent cold-cache loads into one fetch.
const calendarFlightKey = "calendar-settings"

// SettingsSource is the abstract configuration store behind the calendar.
// Backed by the settings repository in production and by fakes in tests.
type SettingsSource interface {
	Read(ctx context.Context, keys []string) (map[string]string, error)
	Write(ctx context.Context, key, value string) error
}

// CalendarService resolves "today" and formats dates under the process-wide,
// cached, admin-configurable time zone.
//
// The cached settings value is replaced atomically as a whole and cleared by
// Invalidate; concurrent cold reads share a single in-flight load. A reader
// racing an invalidation sees either the old value or triggers a fresh load,
// both of which are valid.
type CalendarService struct {
	source SettingsSource
	log    *logrus.Logger
	now    func() time.Time

	mu     sync.RWMutex
	cached *entity.CalendarSettings
	flight singleflight.Group
}

func NewCalendarService(source SettingsSource, log *logrus.Logger) *CalendarService {
	return &CalendarService{
		source: source,
		log:    log,
		now:    time.Now,
	}
}

// Settings returns the cached calendar configuration, loading it once on a
// cold cache. Never fails: a store failure yields (and caches) the defaults.
func (s *CalendarService) Settings(ctx context.Context) *entity.CalendarSettings {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}

	v, _, _ := s.flight.Do(calendarFlightKey, func() (interface{}, error) {
		cfg := s.load(ctx)
		s.mu.Lock()
		s.cached = cfg
		s.mu.Unlock()
		return cfg, nil
	})
	return v.(*entity.CalendarSettings)
}

// TimeZone returns the active IANA time zone id.
func (s *CalendarService) TimeZone(ctx context.Context) string {
	return s.Settings(ctx).TimeZoneID
}

// Invalidate clears the cache and the in-flight marker so the next read
// re-fetches. Called by the admin settings update path.
func (s *CalendarService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
	s.flight.Forget(calendarFlightKey)
}

// UpdateTimeZone persists the new zone through the settings store and
// invalidates the cache. Unlike reads, the admin write path surfaces errors.
func (s *CalendarService) UpdateTimeZone(ctx context.Context, zoneID, zoneLabel string) error {
	if err := s.source.Write(ctx, entity.SettingTimeZone, zoneID); err != nil {
		return err
	}
	if err := s.source.Write(ctx, entity.SettingTimeZoneLabel, zoneLabel); err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// Today returns the current calendar date in the active zone as YYYY-MM-DD.
func (s *CalendarService) Today(ctx context.Context) string {
	return s.now().In(s.location(ctx)).Format(canonicalDateLayout)
}

// Tomorrow returns the next calendar date in the active zone as YYYY-MM-DD.
func (s *CalendarService) Tomorrow(ctx context.Context) string {
	return s.now().In(s.location(ctx)).AddDate(0, 0, 1).Format(canonicalDateLayout)
}

// ToDisplayDate reshapes a canonical YYYY-MM-DD string into DD/MM/YYYY.
// Deliberately pure string surgery: rebuilding a timestamp here reintroduces
// the off-by-one-day drift across zone boundaries this system exists to
// avoid. Anything that is not a canonical date comes back unchanged.
func (s *CalendarService) ToDisplayDate(date string) string {
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return date
	}
	return date[8:10] + "/" + date[5:7] + "/" + date[0:4]
}

func (s *CalendarService) location(ctx context.Context) *time.Location {
	zoneID := s.TimeZone(ctx)
	loc, err := time.LoadLocation(zoneID)
	if err == nil {
		return loc
	}
	s.log.Warnf("Unknown time zone %q, falling back to %s: %+v", zoneID, DefaultTimeZoneID, err)
	loc, err = time.LoadLocation(DefaultTimeZoneID)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *CalendarService) load(ctx context.Context) *entity.CalendarSettings {
	cfg := &entity.CalendarSettings{
		TimeZoneID:    DefaultTimeZoneID,
		TimeZoneLabel: DefaultTimeZoneLabel,
		DateFormat:    DefaultDateFormat,
		TimeFormat:    DefaultTimeFormat,
	}

	values, err := s.source.Read(ctx, []string{
		entity.SettingTimeZone,
		entity.SettingTimeZoneLabel,
		entity.SettingDateFormat,
		entity.SettingTimeFormat,
	})
	if err != nil {
		s.log.Warnf("Failed to read calendar settings, using defaults: %+v", err)
		return cfg
	}

	if v := values[entity.SettingTimeZone]; v != "" {
		cfg.TimeZoneID = v
	}
	if v := values[entity.SettingTimeZoneLabel]; v != "" {
		cfg.TimeZoneLabel = v
	}
	if v := values[entity.SettingDateFormat]; v != "" {
		cfg.DateFormat = v
	}
	if v := values[entity.SettingTimeFormat]; v != "" {
		cfg.TimeFormat = v
	}
	return cfg
}
