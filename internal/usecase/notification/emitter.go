package notification

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/notification"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

// ======================================================
// EMITTER
// ======================================================

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril",
	"maio", "junho", "julho", "agosto",
	"setembro", "outubro", "novembro", "dezembro",
}

// FormatDayHour formata um início de hora no padrão das mensagens
// do sistema: "dia 01 de março, às 14h".
func FormatDayHour(t time.Time) string {
	return fmt.Sprintf(
		"dia %02d de %s, às %dh",
		t.Day(),
		monthNames[int(t.Month())-1],
		t.Hour(),
	)
}

type Emitter struct {
	repo domain.Repository
}

func NewEmitter(repo domain.Repository) *Emitter {
	return &Emitter{repo: repo}
}

// BookingCreated grava a notificação de novo agendamento
// endereçada ao prestador, sempre não lida.
func (e *Emitter) BookingCreated(
	ctx context.Context,
	b *models.Booking,
	requesterName string,
) error {

	content := fmt.Sprintf(
		"Novo agendamento de %s para %s",
		requesterName,
		FormatDayHour(b.ScheduledFor),
	)

	return e.repo.Create(ctx, &models.Notification{
		Content:         content,
		RecipientUserID: b.ProviderID,
		Read:            false,
	})
}
