package notification

import (
	"context"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		n *models.Notification,
	) error

	// ListRecent retorna as mais novas primeiro, limitado a limit.
	ListRecent(
		ctx context.Context,
		recipientID uint,
		limit int,
	) ([]models.Notification, error)

	// MarkRead é idempotente: id inexistente retorna (nil, nil).
	MarkRead(
		ctx context.Context,
		id uint,
	) (*models.Notification, error)
}
