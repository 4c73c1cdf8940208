package booking

import (
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// ===============================
// Regras de domínio
// ===============================

// Janela mínima de antecedência para cancelar um agendamento.
const CancelWindow = 2 * time.Hour

func IsPast(b *models.Booking, now time.Time) bool {
	return b.ScheduledFor.Before(now)
}

// IsCancelable: ainda ativo E faltando estritamente mais de 2h para o horário.
func IsCancelable(b *models.Booking, now time.Time) bool {
	if b.CanceledAt != nil {
		return false
	}
	return now.Before(b.ScheduledFor.Add(-CancelWindow))
}

// CanCancel decide se actorID pode cancelar b em now.
// Ordem das checagens: já cancelado → dono → janela de 2h.
// Exatamente 2h antes NÃO é suficiente (desigualdade estrita).
func CanCancel(b *models.Booking, actorID uint, now time.Time) error {
	if b.CanceledAt != nil {
		return httperr.ErrBusiness("already_canceled")
	}
	if b.ClientID != actorID {
		return httperr.ErrBusiness("not_authorized")
	}
	if !now.Before(b.ScheduledFor.Add(-CancelWindow)) {
		return httperr.ErrBusiness("too_late_to_cancel")
	}
	return nil
}
