package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func s(v string) *string { return &v }

func TestSummary_HasContent(t *testing.T) {
	assert.False(t, Summary{}.HasContent())
	assert.False(t, Summary{Summary: s("   "), TagLine: s("")}.HasContent())
	assert.True(t, Summary{VideoURL: s("https://youtu.be/x")}.HasContent())
}

func TestInfo_Merge(t *testing.T) {
	current := Info{Story: s("story"), Risks: s("risks")}

	merged := current.Merge(Info{Risks: s("updated"), Timeline: s("Q3")})

	assert.Equal(t, "story", *merged.Story)
	assert.Equal(t, "updated", *merged.Risks)
	assert.Equal(t, "Q3", *merged.Timeline)
	assert.Nil(t, merged.UseOfFunds)
}

func TestSocials_MergeAndReadiness(t *testing.T) {
	merged := Socials{}.Merge(Socials{Website: s("https://example.org")})

	assert.True(t, merged.HasContent())
	assert.False(t, Socials{}.HasContent())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Summary{Summary: s("short"), CoverImageURL: s("https://cdn.example.org/a.png")}.Validate())
	assert.Error(t, Summary{TagLine: s(strings.Repeat("x", MaxTagLineLength+1))}.Validate())
	assert.Error(t, Summary{VideoURL: s("not a url")}.Validate())

	assert.NoError(t, Info{}.Validate())
	assert.Error(t, Info{Story: s(strings.Repeat("x", MaxSectionLength+1))}.Validate())

	assert.NoError(t, Socials{Twitter: s("https://twitter.com/acme")}.Validate())
	assert.Error(t, Socials{Instagram: s("acme")}.Validate())
}

func TestReviewRequest_Validate(t *testing.T) {
	assert.NoError(t, ReviewRequest{Action: "approve"}.Validate())
	assert.NoError(t, ReviewRequest{Action: "reject", Comment: s("missing budget")}.Validate())
	assert.Error(t, ReviewRequest{Action: ""}.Validate())
	assert.Error(t, ReviewRequest{Action: "archive"}.Validate())
}

func TestCreateRequest_Validate(t *testing.T) {
	assert.NoError(t, CreateRequest[Summary]{CampaignID: "8f0c3b57-3a55-4f0e-9a53-2f1d8a3e0c11"}.Validate())
	assert.Error(t, CreateRequest[Summary]{}.Validate())
	assert.Error(t, CreateRequest[Summary]{CampaignID: "123"}.Validate())
}
