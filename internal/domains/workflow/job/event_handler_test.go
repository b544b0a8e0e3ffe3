package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-backoffice/internal/domains/workflow"
	"crowdfund-backoffice/internal/infrastructure/email"
)

type patternCache struct {
	patterns []string
	err      error
}

func (p *patternCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (p *patternCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (p *patternCache) Delete(context.Context, ...string) error { return nil }
func (p *patternCache) Ping(context.Context) error { return nil }
func (p *patternCache) DeletePattern(_ context.Context, pattern string) error {
	p.patterns = append(p.patterns, pattern)
	return p.err
}

type fakeEmail struct {
	sent []email.ReviewRequestData
	err  error
}

func (f *fakeEmail) SendEmail(context.Context, email.EmailRequest) error { return f.err }
func (f *fakeEmail) SendReviewRequestEmail(_ context.Context, data email.ReviewRequestData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

func newTask(t *testing.T, event workflow.Event) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return asynq.NewTask(string(event.Type), payload)
}

func TestHandleApproved_InvalidatesCampaignCache(t *testing.T) {
	c := &patternCache{}
	h := NewEventHandler(c, nil, EventHandlerConfig{})
	campaignID := uuid.New()

	err := h.HandleApproved(context.Background(), newTask(t, workflow.Event{
		Type:       workflow.EventApproved,
		EntityType: workflow.EntitySummary,
		CampaignID: campaignID,
	}))

	require.NoError(t, err)
	assert.Equal(t, []string{"campaign:public:" + campaignID.String() + ":*"}, c.patterns)
}

func TestHandleApproved_CacheErrorRetries(t *testing.T) {
	h := NewEventHandler(&patternCache{err: assert.AnError}, nil, EventHandlerConfig{})

	err := h.HandleApproved(context.Background(), newTask(t, workflow.Event{Type: workflow.EventApproved}))

	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleSubmitted_EmailsReviewers(t *testing.T) {
	mailer := &fakeEmail{}
	h := NewEventHandler(nil, mailer, EventHandlerConfig{
		Reviewers:     []string{"mods@example.org"},
		ReviewBaseURL: "https://admin.example.org/",
		Labels:        map[workflow.EntityType]string{workflow.EntitySocials: "campaign socials"},
	})

	err := h.HandleSubmitted(context.Background(), newTask(t, workflow.Event{
		Type:       workflow.EventSubmitted,
		EntityType: workflow.EntitySocials,
		EntityID:   uuid.New(),
	}))

	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "campaign socials", mailer.sent[0].EntityLabel)
	assert.Equal(t, "https://admin.example.org/api/v1/dashboard/socials/pending", mailer.sent[0].ReviewURL)
}

func TestHandleSubmitted_NoReviewersSkips(t *testing.T) {
	mailer := &fakeEmail{}
	h := NewEventHandler(nil, mailer, EventHandlerConfig{})

	err := h.HandleSubmitted(context.Background(), newTask(t, workflow.Event{Type: workflow.EventSubmitted}))

	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestHandleSubmitted_EmailFailureRetries(t *testing.T) {
	h := NewEventHandler(nil, &fakeEmail{err: assert.AnError}, EventHandlerConfig{Reviewers: []string{"a@b.c"}})

	err := h.HandleSubmitted(context.Background(), newTask(t, workflow.Event{Type: workflow.EventSubmitted}))

	assert.ErrorIs(t, err, assert.AnError)
}

func TestMalformedPayloadSkipsRetry(t *testing.T) {
	h := NewEventHandler(nil, nil, EventHandlerConfig{})
	task := asynq.NewTask(string(workflow.EventRejected), []byte("{not json"))

	err := h.HandleRejected(context.Background(), task)

	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestRegisterHandlers(t *testing.T) {
	mux := asynq.NewServeMux()
	NewEventHandler(nil, nil, EventHandlerConfig{}).RegisterHandlers(mux)

	comment := "needs budget"
	err := mux.ProcessTask(context.Background(), newTask(t, workflow.Event{
		Type:    workflow.EventRejected,
		Comment: &comment,
	}))

	assert.NoError(t, err)
}
