package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"clinic-booking-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSettingsSource is an in-memory SettingsSource with failure injection
// and a read counter.
type fakeSettingsSource struct {
	mu        sync.Mutex
	values    map[string]string
	reads     atomic.Int32
	failReads bool
	gate      chan struct{} // when set, Read blocks until the gate closes
}

func newFakeSettingsSource(values map[string]string) *fakeSettingsSource {
	if values == nil {
		values = map[string]string{}
	}
	return &fakeSettingsSource{values: values}
}

func (f *fakeSettingsSource) Read(ctx context.Context, keys []string) (map[string]string, error) {
	f.reads.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if f.failReads {
		return nil, errors.New("settings store unavailable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := f.values[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (f *fakeSettingsSource) Write(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestCalendarService_LoadsAndCachesSettings(t *testing.T) {
	source := newFakeSettingsSource(map[string]string{
		entity.SettingTimeZone:      "America/Fortaleza",
		entity.SettingTimeZoneLabel: "Fortaleza (GMT-3)",
	})
	svc := NewCalendarService(source, testLogger())
	ctx := context.Background()

	assert.Equal(t, "America/Fortaleza", svc.TimeZone(ctx))
	assert.Equal(t, "America/Fortaleza", svc.TimeZone(ctx))
	assert.Equal(t, "America/Fortaleza", svc.TimeZone(ctx))

	// One load serves every subsequent read.
	assert.Equal(t, int32(1), source.reads.Load())

	cfg := svc.Settings(ctx)
	assert.Equal(t, "Fortaleza (GMT-3)", cfg.TimeZoneLabel)
	// Unset keys fall back to defaults without failing the load.
	assert.Equal(t, DefaultDateFormat, cfg.DateFormat)
	assert.Equal(t, DefaultTimeFormat, cfg.TimeFormat)
}

func TestCalendarService_FailureFallsBackToDefaultAndCaches(t *testing.T) {
	source := newFakeSettingsSource(nil)
	source.failReads = true
	svc := NewCalendarService(source, testLogger())
	ctx := context.Background()

	assert.Equal(t, DefaultTimeZoneID, svc.TimeZone(ctx))
	assert.Equal(t, DefaultTimeZoneID, svc.TimeZone(ctx))

	// The failure is absorbed and the default is cached: no retry storm.
	assert.Equal(t, int32(1), source.reads.Load())
}

func TestCalendarService_InvalidateForcesRefetch(t *testing.T) {
	source := newFakeSettingsSource(map[string]string{
		entity.SettingTimeZone: "America/Sao_Paulo",
	})
	svc := NewCalendarService(source, testLogger())
	ctx := context.Background()

	assert.Equal(t, "America/Sao_Paulo", svc.TimeZone(ctx))

	source.mu.Lock()
	source.values[entity.SettingTimeZone] = "America/Manaus"
	source.mu.Unlock()

	// Stale until invalidated.
	assert.Equal(t, "America/Sao_Paulo", svc.TimeZone(ctx))
	svc.Invalidate()
	assert.Equal(t, "America/Manaus", svc.TimeZone(ctx))
	assert.Equal(t, int32(2), source.reads.Load())
}

func TestCalendarService_UpdateTimeZonePersistsAndInvalidates(t *testing.T) {
	source := newFakeSettingsSource(map[string]string{
		entity.SettingTimeZone: "America/Sao_Paulo",
	})
	svc := NewCalendarService(source, testLogger())
	ctx := context.Background()

	assert.Equal(t, "America/Sao_Paulo", svc.TimeZone(ctx))

	require.NoError(t, svc.UpdateTimeZone(ctx, "America/Recife", "Recife (GMT-3)"))

	assert.Equal(t, "America/Recife", svc.TimeZone(ctx))
	assert.Equal(t, "Recife (GMT-3)", svc.Settings(ctx).TimeZoneLabel)
}

func TestCalendarService_ConcurrentColdReadsShareOneLoad(t *testing.T) {
	source := newFakeSettingsSource(map[string]string{
		entity.SettingTimeZone: "America/Sao_Paulo",
	})
	source.gate = make(chan struct{})
	svc := NewCalendarService(source, testLogger())
	ctx := context.Background()

	const callers = 8
	results := make([]string, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = svc.TimeZone(ctx)
		}(i)
	}

	// Let the callers pile up on the in-flight load, then release it.
	time.Sleep(20 * time.Millisecond)
	close(source.gate)
	wg.Wait()

	assert.Equal(t, int32(1), source.reads.Load(), "concurrent cold reads must collapse into one fetch")
	for _, r := range results {
		assert.Equal(t, "America/Sao_Paulo", r)
	}
}

func TestCalendarService_TodayAndTomorrowInActiveZone(t *testing.T) {
	source := newFakeSettingsSource(map[string]string{
		entity.SettingTimeZone: "America/Sao_Paulo",
	})
	svc := NewCalendarService(source, testLogger())
	// 01:30 UTC is still the previous evening in São Paulo (UTC-3).
	svc.now = func() time.Time {
		return time.Date(2025, 10, 19, 1, 30, 0, 0, time.UTC)
	}
	ctx := context.Background()

	assert.Equal(t, "2025-10-18", svc.Today(ctx))
	assert.Equal(t, "2025-10-19", svc.Tomorrow(ctx))
}

func TestCalendarService_UnknownZoneFallsBackForDates(t *testing.T) {
	source := newFakeSettingsSource(map[string]string{
		entity.SettingTimeZone: "Not/AZone",
	})
	svc := NewCalendarService(source, testLogger())
	svc.now = func() time.Time {
		return time.Date(2025, 10, 19, 1, 30, 0, 0, time.UTC)
	}

	// The bad zone id is kept in settings but date math uses the default.
	assert.Equal(t, "2025-10-18", svc.Today(context.Background()))
}

func TestCalendarService_ToDisplayDate(t *testing.T) {
	svc := NewCalendarService(newFakeSettingsSource(nil), testLogger())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "canonical date", input: "2025-10-18", want: "18/10/2025"},
		{name: "first of month", input: "2026-01-01", want: "01/01/2026"},
		{name: "malformed short", input: "2025-1-8", want: "2025-1-8"},
		{name: "not a date", input: "amanhã", want: "amanhã"},
		{name: "empty", input: "", want: ""},
		{name: "wrong separators", input: "2025/10/18", want: "2025/10/18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ToDisplayDate(tt.input))
		})
	}
}
