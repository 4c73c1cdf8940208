package main

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-api/internal/config"
	"github.com/BruksfildServices01/agenda-api/internal/jobs"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/mail"
)

// Worker de entrega dos e-mails de cancelamento. Roda separado da API:
// a fila absorve indisponibilidade do SMTP sem afetar os requests.
func main() {

	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	mailer := mail.New(cfg)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				jobs.QueueMail: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeCancellationEmail, handleCancellationEmail(mailer, log))

	log.Info("mail worker running", zap.String("redis", cfg.RedisAddr))
	if err := srv.Run(mux); err != nil {
		log.Fatal("failed to start worker", zap.Error(err))
	}
}

func handleCancellationEmail(mailer *mail.Mailer, log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p jobs.CancellationEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Error("invalid cancellation payload", zap.Error(err))
			return err
		}

		if err := mailer.SendCancellation(p); err != nil {
			// erro aqui volta pra fila (retry do asynq)
			log.Warn("cancellation mail failed",
				zap.Uint("booking_id", p.BookingID),
				zap.Error(err),
			)
			return err
		}

		log.Info("cancellation mail sent",
			zap.Uint("booking_id", p.BookingID),
			zap.String("to", p.ProviderEmail),
		)
		return nil
	}
}
