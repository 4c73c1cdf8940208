package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/clock"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/booking"
	domainUser "github.com/BruksfildServices01/agenda-api/internal/domain/user"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// ProviderID e Date chegam crus do JSON e passam pelo
// validador tipado antes de qualquer efeito colateral.
type CreateBookingInput struct {
	RequesterID uint
	ProviderID  any
	Date        any
}

// Notifier registra a notificação de novo agendamento para o prestador.
type Notifier interface {
	BookingCreated(
		ctx context.Context,
		b *models.Booking,
		requesterName string,
	) error
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	users    domainUser.Reader
	notifier Notifier
	clk      clock.Clock
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	users domainUser.Reader,
	notifier Notifier,
	clk clock.Clock,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		users:    users,
		notifier: notifier,
		clk:      clk,
		audit:    auditDispatcher,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Forma do pedido
	// --------------------------------------------------
	res := validators.ValidateBooking(validators.BookingInput{
		ProviderID: in.ProviderID,
		Date:       in.Date,
	})
	if !res.OK() {
		return nil, res.Err()
	}

	// --------------------------------------------------
	// 2. Prestador existe e está habilitado
	// --------------------------------------------------
	provider, err := uc.users.GetByID(ctx, res.Draft.ProviderID)
	if err != nil || !provider.IsProvider {
		return nil, httperr.ErrBusiness("not_a_provider")
	}

	// --------------------------------------------------
	// 3. Auto-agendamento
	// --------------------------------------------------
	if in.RequesterID == provider.ID {
		return nil, httperr.ErrBusiness("self_booking_forbidden")
	}

	// --------------------------------------------------
	// 4. Data no passado
	// A comparação usa o instante pedido SEM truncar:
	// 10:59 com "agora" 10:30 passa, mesmo que o slot seja 10:00.
	// --------------------------------------------------
	now := uc.clk.Now()
	if res.Draft.Date.Before(now) {
		return nil, httperr.ErrBusiness("past_date_forbidden")
	}

	hourStart := clock.HourStart(res.Draft.Date)

	// --------------------------------------------------
	// 5. Slot livre (checagem otimista; o índice único decide)
	// --------------------------------------------------
	if err := uc.repo.AssertSlotFree(ctx, provider.ID, hourStart); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			uc.auditConflict(in.RequesterID, provider.ID, hourStart)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6. Criação
	// --------------------------------------------------
	b := &models.Booking{
		ClientID:     in.RequesterID,
		ProviderID:   provider.ID,
		ScheduledFor: hourStart,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			uc.auditConflict(in.RequesterID, provider.ID, hourStart)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 7. Notificação para o prestador
	// Falha aqui não desfaz o agendamento já gravado.
	// --------------------------------------------------
	requester, err := uc.users.GetByID(ctx, in.RequesterID)
	requesterName := ""
	if err == nil {
		requesterName = requester.Name
	}

	if err := uc.notifier.BookingCreated(ctx, b, requesterName); err != nil {
		uc.log.Warn("notificação de agendamento não registrada",
			zap.Uint("booking_id", b.ID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.RequesterID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *CreateBooking) auditConflict(requesterID, providerID uint, hourStart time.Time) {
	uc.audit.Dispatch(audit.Event{
		UserID: &requesterID,
		Action: "booking_conflict",
		Entity: "booking",
		Metadata: map[string]any{
			"provider_id": providerID,
			"slot":        hourStart.Format(time.RFC3339),
		},
	})
}
