package dashboard

import "crowdfund-backoffice/internal/domains/workflow"

var SocialsDescriptor = workflow.Descriptor{
	EntityType: workflow.EntitySocials,
	Label:      "campaign socials",
}

// Socials - các link mạng xã hội của campaign
type Socials struct {
	Website   *string `json:"website"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
	Instagram *string `json:"instagram"`
	LinkedIn  *string `json:"linkedin"`
	YouTube   *string `json:"youtube"`
	TikTok    *string `json:"tiktok"`
}

func (s Socials) HasContent() bool {
	return hasText(s.Website, s.Facebook, s.Twitter, s.Instagram, s.LinkedIn, s.YouTube, s.TikTok)
}

func (s Socials) Merge(patch Socials) Socials {
	return Socials{
		Website:   pick(s.Website, patch.Website),
		Facebook:  pick(s.Facebook, patch.Facebook),
		Twitter:   pick(s.Twitter, patch.Twitter),
		Instagram: pick(s.Instagram, patch.Instagram),
		LinkedIn:  pick(s.LinkedIn, patch.LinkedIn),
		YouTube:   pick(s.YouTube, patch.YouTube),
		TikTok:    pick(s.TikTok, patch.TikTok),
	}
}
