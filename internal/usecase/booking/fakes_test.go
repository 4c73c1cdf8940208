package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type fakeRepo struct {
	assertSlotFreeFn func(ctx context.Context, providerID uint, hourStart time.Time) error
	createFn         func(ctx context.Context, b *models.Booking) error
	getByIDFn        func(ctx context.Context, id uint) (*models.Booking, error)
	markCanceledFn   func(ctx context.Context, id uint, canceledAt time.Time) (bool, error)
	listByClientFn   func(ctx context.Context, clientID uint, page, perPage int) ([]models.Booking, error)
}

func (f *fakeRepo) AssertSlotFree(ctx context.Context, providerID uint, hourStart time.Time) error {
	if f.assertSlotFreeFn == nil {
		panic("AssertSlotFree not configured")
	}
	return f.assertSlotFreeFn(ctx, providerID, hourStart)
}

func (f *fakeRepo) Create(ctx context.Context, b *models.Booking) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, b)
}

func (f *fakeRepo) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) MarkCanceled(ctx context.Context, id uint, canceledAt time.Time) (bool, error) {
	if f.markCanceledFn == nil {
		panic("MarkCanceled not configured")
	}
	return f.markCanceledFn(ctx, id, canceledAt)
}

func (f *fakeRepo) ListByClient(ctx context.Context, clientID uint, page, perPage int) ([]models.Booking, error) {
	if f.listByClientFn == nil {
		panic("ListByClient not configured")
	}
	return f.listByClientFn(ctx, clientID, page, perPage)
}

type fakeUsers struct {
	getByIDFn func(ctx context.Context, id uint) (*models.User, error)
}

func (f *fakeUsers) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUsers) ListProviders(ctx context.Context) ([]models.User, error) {
	panic("ListProviders not configured")
}

type notifierCall struct {
	booking       *models.Booking
	requesterName string
}

type fakeNotifier struct {
	calls []notifierCall
	err   error
}

func (f *fakeNotifier) BookingCreated(ctx context.Context, b *models.Booking, requesterName string) error {
	f.calls = append(f.calls, notifierCall{booking: b, requesterName: requesterName})
	return f.err
}

type fakePort struct {
	kinds    []string
	payloads []any
	err      error
}

func (f *fakePort) Enqueue(ctx context.Context, kind string, payload any) error {
	f.kinds = append(f.kinds, kind)
	f.payloads = append(f.payloads, payload)
	return f.err
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
