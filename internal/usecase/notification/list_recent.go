package notification

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/notification"
	domainUser "github.com/BruksfildServices01/agenda-api/internal/domain/user"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

const recentLimit = 20

type ListRecent struct {
	repo  domain.Repository
	users domainUser.Reader
}

func NewListRecent(
	repo domain.Repository,
	users domainUser.Reader,
) *ListRecent {
	return &ListRecent{
		repo:  repo,
		users: users,
	}
}

// Execute lista as notificações mais recentes do destinatário.
// Apenas prestadores têm caixa de notificações.
func (uc *ListRecent) Execute(
	ctx context.Context,
	requesterID uint,
) ([]models.Notification, error) {

	u, err := uc.users.GetByID(ctx, requesterID)
	if err != nil || !u.IsProvider {
		return nil, httperr.ErrBusiness("not_authorized")
	}

	return uc.repo.ListRecent(ctx, requesterID, recentLimit)
}
