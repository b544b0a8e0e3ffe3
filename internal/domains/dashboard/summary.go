package dashboard

import "crowdfund-backoffice/internal/domains/workflow"

var SummaryDescriptor = workflow.Descriptor{
	EntityType: workflow.EntitySummary,
	Label:      "campaign summary",
}

// Summary là phần giới thiệu ngắn hiển thị trên trang campaign.
type Summary struct {
	Summary       *string `json:"summary"`
	TagLine       *string `json:"tag_line"`
	CoverImageURL *string `json:"cover_image_url"`
	VideoURL      *string `json:"video_url"`
}

func (s Summary) HasContent() bool {
	return hasText(s.Summary, s.TagLine, s.CoverImageURL, s.VideoURL)
}

func (s Summary) Merge(patch Summary) Summary {
	return Summary{
		Summary:       pick(s.Summary, patch.Summary),
		TagLine:       pick(s.TagLine, patch.TagLine),
		CoverImageURL: pick(s.CoverImageURL, patch.CoverImageURL),
		VideoURL:      pick(s.VideoURL, patch.VideoURL),
	}
}
