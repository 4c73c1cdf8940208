package booking

import (
	"context"

	"github.com/BruksfildServices01/agenda-api/internal/clock"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-api/internal/dto"
)

// Tamanho fixo da página de listagem.
const PageSize = 20

type ListBookings struct {
	repo domain.Repository
	clk  clock.Clock
}

func NewListBookings(
	repo domain.Repository,
	clk clock.Clock,
) *ListBookings {
	return &ListBookings{
		repo: repo,
		clk:  clk,
	}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	clientID uint,
	page int,
) ([]dto.BookingListDTO, error) {

	if page < 1 {
		page = 1
	}

	bs, err := uc.repo.ListByClient(ctx, clientID, page, PageSize)
	if err != nil {
		return nil, err
	}

	now := uc.clk.Now()

	out := make([]dto.BookingListDTO, 0, len(bs))
	for i := range bs {
		b := &bs[i]
		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			ScheduledFor: b.ScheduledFor,
			CanceledAt:   b.CanceledAt,
			IsPast:       domain.IsPast(b, now),
			IsCancelable: domain.IsCancelable(b, now),
			Provider: dto.ProviderSummaryDTO{
				ID:        b.Provider.ID,
				Name:      b.Provider.Name,
				AvatarURL: b.Provider.AvatarURL,
			},
		})
	}

	return out, nil
}
