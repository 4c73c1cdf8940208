package notification

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/notification"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type MarkRead struct {
	repo domain.Repository
}

func NewMarkRead(repo domain.Repository) *MarkRead {
	return &MarkRead{repo: repo}
}

// Execute marca a notificação como lida. Id inexistente é sucesso
// sem efeito (retorna nil, nil), nunca erro.
func (uc *MarkRead) Execute(
	ctx context.Context,
	id uint,
) (*models.Notification, error) {
	return uc.repo.MarkRead(ctx, id)
}
