package service

import (
	"context"
	"errors"
	"testing"

	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func TestPackageTracker_Describe(t *testing.T) {
	tracker := NewPackageTracker(testLogger())

	t.Run("anchor session", func(t *testing.T) {
		info := tracker.Describe(&entity.Appointment{SessionNumber: 1, TotalSessions: 6}, "Drenagem Linfática")

		assert.True(t, info.IsPackage)
		assert.True(t, info.IsFirstSession)
		assert.True(t, info.ShouldCountValue)
		assert.Equal(t, "Drenagem Linfática", info.DisplayName)
		assert.Equal(t, 1, info.SessionNumber)
		assert.Equal(t, 6, info.TotalSessions)
	})

	t.Run("follow-up session", func(t *testing.T) {
		info := tracker.Describe(&entity.Appointment{SessionNumber: 4, TotalSessions: 6}, "Drenagem Linfática")

		assert.True(t, info.IsPackage)
		assert.False(t, info.IsFirstSession)
		assert.False(t, info.ShouldCountValue)
		assert.Equal(t, "Drenagem Linfática (retorno 4/6)", info.DisplayName)
	})

	t.Run("single visit", func(t *testing.T) {
		info := tracker.Describe(&entity.Appointment{SessionNumber: 1, TotalSessions: 1}, "Limpeza de Pele")

		assert.False(t, info.IsPackage)
		assert.True(t, info.ShouldCountValue)
		assert.Equal(t, "Limpeza de Pele", info.DisplayName)
	})
}

func TestPackageTracker_ResolvePaymentStatus(t *testing.T) {
	tracker := NewPackageTracker(testLogger())
	ctx := context.Background()
	parentID := uuid.New()

	neverCalled := func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		t.Fatal("lookup must not be called for appointments without a parent")
		return nil, nil
	}

	t.Run("no parent returns own status", func(t *testing.T) {
		appt := &entity.Appointment{PaymentStatus: entity.PaymentStatusPaid}
		assert.Equal(t, entity.PaymentStatusPaid, tracker.ResolvePaymentStatus(ctx, appt, neverCalled))
	})

	t.Run("no parent and unset status defaults to awaiting", func(t *testing.T) {
		appt := &entity.Appointment{}
		assert.Equal(t, entity.PaymentStatusAwaiting, tracker.ResolvePaymentStatus(ctx, appt, neverCalled))
	})

	t.Run("parent status wins", func(t *testing.T) {
		calls := 0
		lookup := func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			calls++
			assert.Equal(t, parentID, id)
			return &entity.Appointment{ID: id, PaymentStatus: entity.PaymentStatusPaid}, nil
		}
		appt := &entity.Appointment{PackageParentID: uuidPtr(parentID), PaymentStatus: entity.PaymentStatusAwaiting}

		assert.Equal(t, entity.PaymentStatusPaid, tracker.ResolvePaymentStatus(ctx, appt, lookup))
		assert.Equal(t, 1, calls, "exactly one parent lookup")
	})

	t.Run("parent with unset status resolves to awaiting", func(t *testing.T) {
		lookup := func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id}, nil
		}
		appt := &entity.Appointment{PackageParentID: uuidPtr(parentID), PaymentStatus: entity.PaymentStatusPaid}

		assert.Equal(t, entity.PaymentStatusAwaiting, tracker.ResolvePaymentStatus(ctx, appt, lookup))
	})

	t.Run("lookup error degrades to own status", func(t *testing.T) {
		lookup := func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return nil, errors.New("store down")
		}
		appt := &entity.Appointment{PackageParentID: uuidPtr(parentID), PaymentStatus: entity.PaymentStatusPaid}

		assert.Equal(t, entity.PaymentStatusPaid, tracker.ResolvePaymentStatus(ctx, appt, lookup))
	})

	t.Run("missing parent degrades to own status", func(t *testing.T) {
		lookup := func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return nil, nil
		}
		appt := &entity.Appointment{PackageParentID: uuidPtr(parentID)}

		assert.Equal(t, entity.PaymentStatusAwaiting, tracker.ResolvePaymentStatus(ctx, appt, lookup))
	})
}

func TestPackageTracker_ResolveValue(t *testing.T) {
	tracker := NewPackageTracker(testLogger())
	recorded := decimal.NewFromInt(180)
	procedure := &entity.Procedure{Price: decimal.NewFromInt(250)}

	t.Run("recorded value wins", func(t *testing.T) {
		appt := &entity.Appointment{PaymentValue: &recorded}
		assert.True(t, tracker.ResolveValue(appt, procedure).Equal(recorded))
	})

	t.Run("falls back to list price", func(t *testing.T) {
		appt := &entity.Appointment{}
		assert.True(t, tracker.ResolveValue(appt, procedure).Equal(procedure.Price))
	})

	t.Run("no procedure yields zero", func(t *testing.T) {
		appt := &entity.Appointment{}
		assert.True(t, tracker.ResolveValue(appt, nil).IsZero())
	})
}
