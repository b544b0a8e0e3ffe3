package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateCampaignRequest_Validate(t *testing.T) {
	valid := CreateCampaignRequest{Title: "Clean water", GoalAmount: decimal.NewFromInt(1000), Currency: "VND"}
	assert.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = ""
	assert.Error(t, noTitle.Validate())

	zeroGoal := valid
	zeroGoal.GoalAmount = decimal.Zero
	assert.Error(t, zeroGoal.Validate())

	badCurrency := valid
	badCurrency.Currency = "dollars"
	assert.Error(t, badCurrency.Validate())
}

func TestUpdateCampaignRequest_Validate(t *testing.T) {
	assert.NoError(t, UpdateCampaignRequest{}.Validate())

	archived := Status("archived")
	assert.Error(t, UpdateCampaignRequest{Status: &archived}.Validate())

	negative := decimal.NewFromInt(-5)
	assert.Error(t, UpdateCampaignRequest{GoalAmount: &negative}.Validate())

	empty := ""
	assert.Error(t, UpdateCampaignRequest{Title: &empty}.Validate())
}
