package mail

import (
	"fmt"
	"net/smtp"

	"github.com/BruksfildServices01/agenda-api/internal/config"
	"github.com/BruksfildServices01/agenda-api/internal/jobs"
	ucNotification "github.com/BruksfildServices01/agenda-api/internal/usecase/notification"
)

type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

// SendCancellation avisa o prestador que o slot voltou a ficar livre.
func (m *Mailer) SendCancellation(p jobs.CancellationEmailPayload) error {
	subject := "Agendamento cancelado"
	body := fmt.Sprintf(
		"Olá %s,\n\nO agendamento de %s para %s foi cancelado pelo cliente.\nO horário está novamente disponível na sua agenda.\n",
		p.ProviderName,
		p.ClientName,
		ucNotification.FormatDayHour(p.ScheduledFor),
	)

	return m.send(p.ProviderEmail, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		m.from, to, subject, body,
	)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
