package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type Repository interface {
	// -------- Criação / exclusividade de slot --------

	// AssertSlotFree falha com slot_unavailable se já existe agendamento
	// ativo para (providerID, hourStart). Checagem otimista: a garantia
	// final é o índice único parcial no banco.
	AssertSlotFree(
		ctx context.Context,
		providerID uint,
		hourStart time.Time,
	) error

	// Create insere dentro de uma transação com lock; violação do índice
	// único (provider_id, scheduled_for) entre ativos vira slot_unavailable.
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Cancelamento --------

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// MarkCanceled é um UPDATE condicional (canceled_at IS NULL).
	// Retorna false se nenhuma linha foi afetada (cancelamento concorrente).
	MarkCanceled(
		ctx context.Context,
		id uint,
		canceledAt time.Time,
	) (bool, error)

	// -------- Listagem --------

	ListByClient(
		ctx context.Context,
		clientID uint,
		page int,
		perPage int,
	) ([]models.Booking, error)
}
