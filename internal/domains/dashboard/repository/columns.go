package repository

import "crowdfund-backoffice/internal/domains/dashboard"

// Columns maps a content type onto its table columns. Values and Targets
// must follow the order of Names.
type Columns[C any] struct {
	Names   []string
	Values  func(c *C) []any
	Targets func(c *C) []any
}

// Tables - tên bảng draft (dashboard) và bảng public (canonical) của một kind
type Tables struct {
	Draft     string
	Canonical string
}

// =====================================================
// SUMMARY
// =====================================================

var SummaryTables = Tables{
	Draft:     "dashboard_campaign_summaries",
	Canonical: "campaign_summaries",
}

var SummaryColumns = Columns[dashboard.Summary]{
	Names: []string{"summary", "tag_line", "cover_image_url", "video_url"},
	Values: func(c *dashboard.Summary) []any {
		return []any{c.Summary, c.TagLine, c.CoverImageURL, c.VideoURL}
	},
	Targets: func(c *dashboard.Summary) []any {
		return []any{&c.Summary, &c.TagLine, &c.CoverImageURL, &c.VideoURL}
	},
}

// =====================================================
// INFO
// =====================================================

var InfoTables = Tables{
	Draft:     "dashboard_campaign_infos",
	Canonical: "campaign_infos",
}

var InfoColumns = Columns[dashboard.Info]{
	Names: []string{"story", "risks", "use_of_funds", "timeline", "team_description"},
	Values: func(c *dashboard.Info) []any {
		return []any{c.Story, c.Risks, c.UseOfFunds, c.Timeline, c.TeamDescription}
	},
	Targets: func(c *dashboard.Info) []any {
		return []any{&c.Story, &c.Risks, &c.UseOfFunds, &c.Timeline, &c.TeamDescription}
	},
}

// =====================================================
// SOCIALS
// =====================================================

var SocialsTables = Tables{
	Draft:     "dashboard_campaign_socials",
	Canonical: "campaign_socials",
}

var SocialsColumns = Columns[dashboard.Socials]{
	Names: []string{"website", "facebook", "twitter", "instagram", "linkedin", "youtube", "tiktok"},
	Values: func(c *dashboard.Socials) []any {
		return []any{c.Website, c.Facebook, c.Twitter, c.Instagram, c.LinkedIn, c.YouTube, c.TikTok}
	},
	Targets: func(c *dashboard.Socials) []any {
		return []any{&c.Website, &c.Facebook, &c.Twitter, &c.Instagram, &c.LinkedIn, &c.YouTube, &c.TikTok}
	},
}
