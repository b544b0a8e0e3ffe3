package dashboard

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// CONTENT VALIDATION
// =====================================================
// Tất cả field đều optional, chỉ validate khi có giá trị.

const (
	MaxSummaryLength = 1000
	MaxTagLineLength = 140
	MaxSectionLength = 20000
	MaxURLLength     = 2048
)

func (s Summary) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Summary,
			validation.Length(0, MaxSummaryLength).Error("summary must not exceed 1000 characters"),
		),
		validation.Field(&s.TagLine,
			validation.Length(0, MaxTagLineLength).Error("tag line must not exceed 140 characters"),
		),
		validation.Field(&s.CoverImageURL, is.URL.Error("cover image must be a valid URL"), validation.Length(0, MaxURLLength)),
		validation.Field(&s.VideoURL, is.URL.Error("video must be a valid URL"), validation.Length(0, MaxURLLength)),
	)
}

func (i Info) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Story, validation.Length(0, MaxSectionLength)),
		validation.Field(&i.Risks, validation.Length(0, MaxSectionLength)),
		validation.Field(&i.UseOfFunds, validation.Length(0, MaxSectionLength)),
		validation.Field(&i.Timeline, validation.Length(0, MaxSectionLength)),
		validation.Field(&i.TeamDescription, validation.Length(0, MaxSectionLength)),
	)
}

func (s Socials) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Website, is.URL, validation.Length(0, MaxURLLength)),
		validation.Field(&s.Facebook, is.URL, validation.Length(0, MaxURLLength)),
		validation.Field(&s.Twitter, is.URL, validation.Length(0, MaxURLLength)),
		validation.Field(&s.Instagram, is.URL, validation.Length(0, MaxURLLength)),
		validation.Field(&s.LinkedIn, is.URL, validation.Length(0, MaxURLLength)),
		validation.Field(&s.YouTube, is.URL, validation.Length(0, MaxURLLength)),
		validation.Field(&s.TikTok, is.URL, validation.Length(0, MaxURLLength)),
	)
}
