package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Criação / exclusividade de slot
// --------------------------------------------------

func (r *BookingGormRepository) AssertSlotFree(
	ctx context.Context,
	providerID uint,
	hourStart time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"provider_id = ? AND scheduled_for = ? AND canceled_at IS NULL",
			providerID,
			hourStart,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("slot_unavailable")
	}

	return nil
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"provider_id = ? AND scheduled_for = ? AND canceled_at IS NULL",
				b.ProviderID,
				b.ScheduledFor,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(b).Error
	})

	// O índice único parcial é a garantia final: duas criações
	// concorrentes para o mesmo slot viram 23505 aqui.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httperr.ErrBusiness("slot_unavailable")
	}

	return err
}

// --------------------------------------------------
// Cancelamento
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Provider").
		First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) MarkCanceled(
	ctx context.Context,
	id uint,
	canceledAt time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND canceled_at IS NULL", id).
		Update("canceled_at", canceledAt)

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Listagem
// --------------------------------------------------

func (r *BookingGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
	page int,
	perPage int,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("client_id = ?", clientID).
		Order("scheduled_for ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&bs).Error; err != nil {
		return nil, err
	}

	return bs, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
