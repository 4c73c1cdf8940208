package jobs

import (
	"context"
	"time"
)

// Tipos de tarefa processados pelo worker (cmd/worker).
const TypeCancellationEmail = "email:cancellation"

const QueueMail = "mail"

// CancellationEmailPayload é o snapshot do agendamento cancelado,
// capturado antes da escrita para não refletir mutações posteriores.
type CancellationEmailPayload struct {
	BookingID     uint      `json:"booking_id"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	ProviderName  string    `json:"provider_name"`
	ProviderEmail string    `json:"provider_email"`
	ScheduledFor  time.Time `json:"scheduled_for"`
	CanceledAt    time.Time `json:"canceled_at"`
}

// Port é a fronteira de despacho assíncrono. Fire-and-forget:
// o chamador nunca transforma falha de enqueue em falha da operação.
type Port interface {
	Enqueue(ctx context.Context, kind string, payload any) error
}
