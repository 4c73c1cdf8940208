package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-api/internal/clock"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/jobs"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

func activeBooking(scheduledFor time.Time) *models.Booking {
	return &models.Booking{
		ID:         42,
		ClientID:   5,
		Client:     models.User{ID: 5, Name: "Carla", Email: "carla@example.com"},
		ProviderID: 9,
		Provider:   models.User{ID: 9, Name: "Pedro", Email: "pedro@example.com", IsProvider: true},

		ScheduledFor: scheduledFor,
	}
}

func cancelRepo(b *models.Booking, marked *bool) *fakeRepo {
	return &fakeRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			if id != b.ID {
				return nil, errors.New("record not found")
			}
			return b, nil
		},
		markCanceledFn: func(ctx context.Context, id uint, canceledAt time.Time) (bool, error) {
			if marked != nil {
				*marked = true
			}
			return true, nil
		},
	}
}

func TestCancelBooking_ExactlyTwoHoursBeforeIsTooLate(t *testing.T) {
	loc := clock.Location("")
	scheduled := time.Date(2024, 3, 1, 15, 0, 0, 0, loc)
	now := scheduled.Add(-2 * time.Hour)

	b := activeBooking(scheduled)
	uc := NewCancelBooking(cancelRepo(b, nil), &fakePort{}, fixedClock{t: now}, testDispatcher(), zap.NewNop())

	_, err := uc.Execute(context.Background(), 5, 42)
	if !httperr.IsBusiness(err, "too_late_to_cancel") {
		t.Fatalf("err = %v, want too_late_to_cancel", err)
	}
}

func TestCancelBooking_TwoHoursAndOneMinuteBeforeSucceeds(t *testing.T) {
	loc := clock.Location("")
	scheduled := time.Date(2024, 3, 1, 15, 0, 0, 0, loc)
	now := scheduled.Add(-2*time.Hour - time.Minute)

	b := activeBooking(scheduled)
	var marked bool
	port := &fakePort{}

	uc := NewCancelBooking(cancelRepo(b, &marked), port, fixedClock{t: now}, testDispatcher(), zap.NewNop())

	got, err := uc.Execute(context.Background(), 5, 42)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !marked {
		t.Fatalf("conditional update was not issued")
	}
	if got.CanceledAt == nil || !got.CanceledAt.Equal(now) {
		t.Fatalf("canceled_at = %v, want %v", got.CanceledAt, now)
	}

	if len(port.kinds) != 1 || port.kinds[0] != jobs.TypeCancellationEmail {
		t.Fatalf("enqueued kinds = %v, want [%s]", port.kinds, jobs.TypeCancellationEmail)
	}

	p, ok := port.payloads[0].(jobs.CancellationEmailPayload)
	if !ok {
		t.Fatalf("payload type = %T", port.payloads[0])
	}
	if p.ClientName != "Carla" || p.ProviderEmail != "pedro@example.com" {
		t.Fatalf("snapshot incomplete: %+v", p)
	}
	if !p.ScheduledFor.Equal(scheduled) {
		t.Fatalf("snapshot scheduled_for = %v, want %v", p.ScheduledFor, scheduled)
	}
}

// Nem o prestador cancela por este caminho: só o cliente original.
func TestCancelBooking_ProviderIsNotAuthorized(t *testing.T) {
	loc := clock.Location("")
	scheduled := time.Date(2024, 3, 1, 15, 0, 0, 0, loc)
	now := scheduled.Add(-5 * time.Hour)

	b := activeBooking(scheduled)
	uc := NewCancelBooking(cancelRepo(b, nil), &fakePort{}, fixedClock{t: now}, testDispatcher(), zap.NewNop())

	_, err := uc.Execute(context.Background(), 9, 42)
	if !httperr.IsBusiness(err, "not_authorized") {
		t.Fatalf("err = %v, want not_authorized", err)
	}
}

func TestCancelBooking_AlreadyCanceled(t *testing.T) {
	loc := clock.Location("")
	scheduled := time.Date(2024, 3, 1, 15, 0, 0, 0, loc)
	now := scheduled.Add(-5 * time.Hour)

	b := activeBooking(scheduled)
	prev := now.Add(-time.Hour)
	b.CanceledAt = &prev

	uc := NewCancelBooking(cancelRepo(b, nil), &fakePort{}, fixedClock{t: now}, testDispatcher(), zap.NewNop())

	_, err := uc.Execute(context.Background(), 5, 42)
	if !httperr.IsBusiness(err, "already_canceled") {
		t.Fatalf("err = %v, want already_canceled", err)
	}
}

func TestCancelBooking_NotFound(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			return nil, errors.New("record not found")
		},
	}

	uc := NewCancelBooking(repo, &fakePort{}, fixedClock{t: time.Now()}, testDispatcher(), zap.NewNop())

	_, err := uc.Execute(context.Background(), 5, 999)
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("err = %v, want booking_not_found", err)
	}
}

// Dois cancelamentos concorrentes: o UPDATE condicional do segundo não
// afeta linha nenhuma e nada é enfileirado de novo.
func TestCancelBooking_ConcurrentCancelLosesConditionalUpdate(t *testing.T) {
	loc := clock.Location("")
	scheduled := time.Date(2024, 3, 1, 15, 0, 0, 0, loc)
	now := scheduled.Add(-5 * time.Hour)

	b := activeBooking(scheduled)
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			return b, nil
		},
		markCanceledFn: func(ctx context.Context, id uint, canceledAt time.Time) (bool, error) {
			return false, nil
		},
	}

	port := &fakePort{}
	uc := NewCancelBooking(repo, port, fixedClock{t: now}, testDispatcher(), zap.NewNop())

	_, err := uc.Execute(context.Background(), 5, 42)
	if !httperr.IsBusiness(err, "already_canceled") {
		t.Fatalf("err = %v, want already_canceled", err)
	}
	if len(port.kinds) != 0 {
		t.Fatalf("nothing should be enqueued, got %v", port.kinds)
	}
}

// Falha no enqueue é dispatch_failed, nunca falha do cancelamento.
func TestCancelBooking_EnqueueFailureDoesNotUndoCancellation(t *testing.T) {
	loc := clock.Location("")
	scheduled := time.Date(2024, 3, 1, 15, 0, 0, 0, loc)
	now := scheduled.Add(-5 * time.Hour)

	b := activeBooking(scheduled)
	port := &fakePort{err: errors.New("redis down")}

	uc := NewCancelBooking(cancelRepo(b, nil), port, fixedClock{t: now}, testDispatcher(), zap.NewNop())

	got, err := uc.Execute(context.Background(), 5, 42)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if got.CanceledAt == nil {
		t.Fatalf("cancellation must remain committed")
	}
}
