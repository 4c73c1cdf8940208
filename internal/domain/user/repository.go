package user

import (
	"context"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type Reader interface {
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	ListProviders(
		ctx context.Context,
	) ([]models.User, error)
}
