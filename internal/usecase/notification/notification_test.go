package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/clock"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type fakeNotifRepo struct {
	createFn     func(ctx context.Context, n *models.Notification) error
	listRecentFn func(ctx context.Context, recipientID uint, limit int) ([]models.Notification, error)
	markReadFn   func(ctx context.Context, id uint) (*models.Notification, error)
}

func (f *fakeNotifRepo) Create(ctx context.Context, n *models.Notification) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, n)
}

func (f *fakeNotifRepo) ListRecent(ctx context.Context, recipientID uint, limit int) ([]models.Notification, error) {
	if f.listRecentFn == nil {
		panic("ListRecent not configured")
	}
	return f.listRecentFn(ctx, recipientID, limit)
}

func (f *fakeNotifRepo) MarkRead(ctx context.Context, id uint) (*models.Notification, error) {
	if f.markReadFn == nil {
		panic("MarkRead not configured")
	}
	return f.markReadFn(ctx, id)
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

func TestFormatDayHour(t *testing.T) {
	loc := clock.Location("")

	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 3, 1, 14, 0, 0, 0, loc), "dia 01 de março, às 14h"},
		{time.Date(2024, 12, 25, 9, 0, 0, 0, loc), "dia 25 de dezembro, às 9h"},
		{time.Date(2024, 1, 7, 0, 0, 0, 0, loc), "dia 07 de janeiro, às 0h"},
	}

	for _, tc := range cases {
		if got := FormatDayHour(tc.in); got != tc.want {
			t.Errorf("FormatDayHour(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEmitterBookingCreated(t *testing.T) {
	loc := clock.Location("")

	var saved *models.Notification
	repo := &fakeNotifRepo{
		createFn: func(ctx context.Context, n *models.Notification) error {
			saved = n
			return nil
		},
	}

	b := &models.Booking{
		ID:           1,
		ClientID:     5,
		ProviderID:   9,
		ScheduledFor: time.Date(2024, 3, 1, 14, 0, 0, 0, loc),
	}

	if err := NewEmitter(repo).BookingCreated(context.Background(), b, "Carla"); err != nil {
		t.Fatalf("BookingCreated error: %v", err)
	}

	if saved == nil {
		t.Fatalf("notification was not persisted")
	}
	if saved.RecipientUserID != 9 {
		t.Fatalf("recipient = %d, want 9", saved.RecipientUserID)
	}
	if saved.Read {
		t.Fatalf("new notification must start unread")
	}

	want := "Novo agendamento de Carla para dia 01 de março, às 14h"
	if saved.Content != want {
		t.Fatalf("content = %q, want %q", saved.Content, want)
	}
}

func TestListRecent_NonProviderIsNotAuthorized(t *testing.T) {
	users := &fakeUsers{
		getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, IsProvider: false}, nil
		},
	}

	uc := NewListRecent(&fakeNotifRepo{}, users)

	_, err := uc.Execute(context.Background(), 5)
	if !httperr.IsBusiness(err, "not_authorized") {
		t.Fatalf("err = %v, want not_authorized", err)
	}
}

func TestListRecent_ProviderGetsNewestFirstWithLimit(t *testing.T) {
	users := &fakeUsers{
		getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, IsProvider: true}, nil
		},
	}

	var gotLimit int
	repo := &fakeNotifRepo{
		listRecentFn: func(ctx context.Context, recipientID uint, limit int) ([]models.Notification, error) {
			gotLimit = limit
			return []models.Notification{{ID: 2}, {ID: 1}}, nil
		},
	}

	ns, err := NewListRecent(repo, users).Execute(context.Background(), 9)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if gotLimit != 20 {
		t.Fatalf("limit = %d, want 20", gotLimit)
	}
	if len(ns) != 2 || ns[0].ID != 2 {
		t.Fatalf("unexpected result: %+v", ns)
	}
}

func TestMarkRead_MissingIDIsIdempotentSuccess(t *testing.T) {
	repo := &fakeNotifRepo{
		markReadFn: func(ctx context.Context, id uint) (*models.Notification, error) {
			return nil, nil
		},
	}

	n, err := NewMarkRead(repo).Execute(context.Background(), 999)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if n != nil {
		t.Fatalf("expected no-op result, got %+v", n)
	}
}

func TestMarkRead_RepositoryErrorPropagates(t *testing.T) {
	repo := &fakeNotifRepo{
		markReadFn: func(ctx context.Context, id uint) (*models.Notification, error) {
			return nil, errors.New("db down")
		},
	}

	if _, err := NewMarkRead(repo).Execute(context.Background(), 1); err == nil {
		t.Fatalf("expected error")
	}
}
