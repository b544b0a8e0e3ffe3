package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"crowdfund-backoffice/internal/domains/workflow"
	"crowdfund-backoffice/internal/shared"
)

// Enqueuer is the part of *asynq.Client the publisher uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// EventPublisher đẩy workflow event lên asynq, task type = event type.
type EventPublisher struct {
	client Enqueuer
}

var _ workflow.EventPublisher = (*EventPublisher)(nil)

func NewEventPublisher(client Enqueuer) *EventPublisher {
	return &EventPublisher{client: client}
}

func (p *EventPublisher) Publish(ctx context.Context, event workflow.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	task := asynq.NewTask(string(event.Type), payload)

	_, err = p.client.EnqueueContext(
		ctx,
		task,
		asynq.Queue(queueFor(event.Type)),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", event.Type, err)
	}
	return nil
}

// approved → high: public cache phải được xoá sớm
func queueFor(t workflow.EventType) string {
	switch t {
	case workflow.EventApproved:
		return shared.QueueHigh
	case workflow.EventCreated:
		return shared.QueueLow
	default:
		return shared.QueueDefault
	}
}
