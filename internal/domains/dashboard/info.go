package dashboard

import "crowdfund-backoffice/internal/domains/workflow"

var InfoDescriptor = workflow.Descriptor{
	EntityType: workflow.EntityInfo,
	Label:      "campaign info",
}

// Info holds the long-form campaign page sections.
type Info struct {
	Story           *string `json:"story"`
	Risks           *string `json:"risks"`
	UseOfFunds      *string `json:"use_of_funds"`
	Timeline        *string `json:"timeline"`
	TeamDescription *string `json:"team_description"`
}

func (i Info) HasContent() bool {
	return hasText(i.Story, i.Risks, i.UseOfFunds, i.Timeline, i.TeamDescription)
}

func (i Info) Merge(patch Info) Info {
	return Info{
		Story:           pick(i.Story, patch.Story),
		Risks:           pick(i.Risks, patch.Risks),
		UseOfFunds:      pick(i.UseOfFunds, patch.UseOfFunds),
		Timeline:        pick(i.Timeline, patch.Timeline),
		TeamDescription: pick(i.TeamDescription, patch.TeamDescription),
	}
}
