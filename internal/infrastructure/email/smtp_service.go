package email

// internal/infrastructure/email/smtp_service.go
import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"
)

type EmailService interface {
	SendEmail(ctx context.Context, req EmailRequest) error
	SendReviewRequestEmail(ctx context.Context, data ReviewRequestData) error
}

// sendMailFunc = smtp.SendMail, tách ra để test
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
	send     sendMailFunc
}

// NewDevEmailService gửi qua SMTP không auth (mailhog / mailpit khi dev).
func NewDevEmailService(smtpHost, smtpPort, from string) EmailService {
	if from == "" {
		from = "noreply@backoffice.dev"
	}
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
		send:     smtp.SendMail,
	}
}

func (s *smtpEmailService) SendEmail(ctx context.Context, req EmailRequest) error {
	if len(req.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, strings.Join(req.To, ", "), req.Subject, req.Body))

	if err := s.send(s.smtpAddr, nil, s.smtpFrom, req.To, msg); err != nil {
		log.Error().
			Err(err).
			Strs("to", req.To).
			Str("smtp_addr", s.smtpAddr).
			Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *smtpEmailService) SendReviewRequestEmail(ctx context.Context, data ReviewRequestData) error {
	subject := fmt.Sprintf("[Review] New %s waiting for approval", data.EntityLabel)
	body := fmt.Sprintf(`Hello,

A %s was submitted for review.

Campaign:     %s
Entity ID:    %s
Submitted by: %s
Submitted at: %s

Open the review queue: %s
`,
		data.EntityLabel,
		data.CampaignID,
		data.EntityID,
		data.SubmittedBy,
		data.SubmittedAt.Format("2006-01-02 15:04 MST"),
		data.ReviewURL,
	)

	return s.SendEmail(ctx, EmailRequest{To: data.To, Subject: subject, Body: body})
}
