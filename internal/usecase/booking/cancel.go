package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/clock"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/jobs"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	port  jobs.Port
	clk   clock.Clock
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCancelBooking(
	repo domain.Repository,
	port jobs.Port,
	clk clock.Clock,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		port:  port,
		clk:   clk,
		audit: auditDispatcher,
		log:   log,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := uc.clk.Now()
	if err := domain.CanCancel(b, actorID, now); err != nil {
		return nil, err
	}

	// Snapshot para o e-mail, capturado ANTES da escrita:
	// não pode refletir mutação posterior do agendamento.
	payload := jobs.CancellationEmailPayload{
		BookingID:     b.ID,
		ClientName:    b.Client.Name,
		ClientEmail:   b.Client.Email,
		ProviderName:  b.Provider.Name,
		ProviderEmail: b.Provider.Email,
		ScheduledFor:  b.ScheduledFor,
		CanceledAt:    now,
	}

	// UPDATE condicional: dois cancelamentos concorrentes não podem
	// ambos vencer (e enfileirar o e-mail duas vezes).
	ok, err := uc.repo.MarkCanceled(ctx, b.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("already_canceled")
	}

	b.CanceledAt = &now

	// Fire-and-forget: falha no enqueue nunca desfaz o cancelamento
	// já gravado. Vira dispatch_failed no log e na auditoria.
	if err := uc.port.Enqueue(ctx, jobs.TypeCancellationEmail, payload); err != nil {
		uc.log.Warn("dispatch_failed",
			zap.String("job", jobs.TypeCancellationEmail),
			zap.Uint("booking_id", b.ID),
			zap.Error(err),
		)
		uc.audit.Dispatch(audit.Event{
			UserID:   &actorID,
			Action:   "dispatch_failed",
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_canceled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
