package email

import "time"

// ReviewRequestData - nội dung email báo moderator có bản mới cần duyệt
type ReviewRequestData struct {
	To          []string
	EntityLabel string
	EntityID    string
	CampaignID  string
	SubmittedBy string
	SubmittedAt time.Time
	ReviewURL   string
}

type EmailRequest struct {
	To      []string // Recipients
	Subject string
	Body    string // plain text
}
