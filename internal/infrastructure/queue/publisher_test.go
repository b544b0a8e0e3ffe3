package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-backoffice/internal/domains/workflow"
	"crowdfund-backoffice/internal/shared"
)

type recordingClient struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (r *recordingClient) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.tasks = append(r.tasks, task)
	r.opts = append(r.opts, opts)
	return &asynq.TaskInfo{ID: uuid.NewString(), Type: task.Type()}, nil
}

func TestEventPublisher_Publish(t *testing.T) {
	client := &recordingClient{}
	publisher := NewEventPublisher(client)
	event := workflow.Event{
		Type:       workflow.EventApproved,
		EntityType: workflow.EntityInfo,
		EntityID:   uuid.New(),
		CampaignID: uuid.New(),
		ActorID:    uuid.New(),
		OccurredAt: time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, client.tasks, 1)
	assert.Equal(t, "workflow:approved", client.tasks[0].Type())

	var decoded workflow.Event
	require.NoError(t, json.Unmarshal(client.tasks[0].Payload(), &decoded))
	assert.Equal(t, event, decoded)
}

func TestEventPublisher_PropagatesEnqueueError(t *testing.T) {
	publisher := NewEventPublisher(&recordingClient{err: assert.AnError})

	err := publisher.Publish(context.Background(), workflow.Event{Type: workflow.EventSubmitted})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestQueueFor(t *testing.T) {
	assert.Equal(t, shared.QueueHigh, queueFor(workflow.EventApproved))
	assert.Equal(t, shared.QueueDefault, queueFor(workflow.EventSubmitted))
	assert.Equal(t, shared.QueueDefault, queueFor(workflow.EventRejected))
	assert.Equal(t, shared.QueueLow, queueFor(workflow.EventCreated))
}
