package email

import (
	"context"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendReviewRequestEmail(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	svc := &smtpEmailService{
		smtpAddr: "localhost:1025",
		smtpFrom: "noreply@backoffice.dev",
		send: func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		},
	}

	err := svc.SendReviewRequestEmail(context.Background(), ReviewRequestData{
		To:          []string{"mods@example.org"},
		EntityLabel: "campaign summary",
		EntityID:    "e1",
		CampaignID:  "c1",
		SubmittedBy: "u1",
		SubmittedAt: time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC),
		ReviewURL:   "https://admin.example.org/dashboard/summary/pending",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:1025", gotAddr)
	assert.Equal(t, "noreply@backoffice.dev", gotFrom)
	assert.Equal(t, []string{"mods@example.org"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: [Review] New campaign summary waiting for approval")
	assert.Contains(t, string(gotMsg), "2025-01-02 03:04 UTC")
}

func TestSendEmail_NoRecipients(t *testing.T) {
	svc := NewDevEmailService("localhost", "1025", "")

	assert.Error(t, svc.SendEmail(context.Background(), EmailRequest{Subject: "x"}))
}

func TestSendEmail_PropagatesSMTPError(t *testing.T) {
	svc := &smtpEmailService{
		send: func(string, smtp.Auth, string, []string, []byte) error { return assert.AnError },
	}

	err := svc.SendEmail(context.Background(), EmailRequest{To: []string{"a@b.c"}})

	assert.ErrorIs(t, err, assert.AnError)
}
