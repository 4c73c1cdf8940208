package jobs

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type AsynqPort struct {
	client *asynq.Client
}

func NewAsynqPort(redisAddr, redisPassword string) *AsynqPort {
	return &AsynqPort{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
		}),
	}
}

func (p *AsynqPort) Enqueue(
	ctx context.Context,
	kind string,
	payload any,
) error {

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(kind, b)

	_, err = p.client.EnqueueContext(
		ctx,
		task,
		asynq.Queue(QueueMail),
		asynq.MaxRetry(5),
		asynq.TaskID(uuid.NewString()),
	)
	return err
}

func (p *AsynqPort) Close() error {
	return p.client.Close()
}

// Compile-time check
var _ Port = (*AsynqPort)(nil)
