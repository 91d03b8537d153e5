package main

import (
	"strings"
	"testing"

	"github.com/carlmjohnson/be"

	"github.com/fundverse/fundtui/fv"
)

func validIdeaRequest() IdeaRequest {
	return IdeaRequest{
		Title:                "Eco-Friendly Water Bottles",
		Description:          "Reusable bottles made from recycled materials",
		FundingGoal:          "100000",
		LegalEntity:          "EcoCorp LLC",
		ContactInfo:          "contact@ecocorp.example",
		Category:             "Environment",
		BusinessRegistration: "1",
	}
}

func TestIdeaRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*IdeaRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(*IdeaRequest) {},
		},
		{
			name:      "empty title",
			mutate:    func(r *IdeaRequest) { r.Title = "" },
			wantField: "Title",
		},
		{
			name: "title too long",
			mutate: func(r *IdeaRequest) {
				long := make([]byte, 101)
				for i := range long {
					long[i] = 'a'
				}
				r.Title = string(long)
			},
			wantField: "Title",
		},
		{
			name:   "multibyte title at the limit",
			mutate: func(r *IdeaRequest) { r.Title = strings.Repeat("é", 100) },
		},
		{
			name:      "multibyte title too long",
			mutate:    func(r *IdeaRequest) { r.Title = strings.Repeat("é", 101) },
			wantField: "Title",
		},
		{
			name:      "description too short",
			mutate:    func(r *IdeaRequest) { r.Description = "too short" },
			wantField: "Description",
		},
		{
			name:      "funding goal not a number",
			mutate:    func(r *IdeaRequest) { r.FundingGoal = "lots" },
			wantField: "FundingGoal",
		},
		{
			name:      "funding goal zero",
			mutate:    func(r *IdeaRequest) { r.FundingGoal = "0" },
			wantField: "FundingGoal",
		},
		{
			name:      "funding goal negative",
			mutate:    func(r *IdeaRequest) { r.FundingGoal = "-5" },
			wantField: "FundingGoal",
		},
		{
			name:      "empty legal entity",
			mutate:    func(r *IdeaRequest) { r.LegalEntity = "" },
			wantField: "LegalEntity",
		},
		{
			name:      "invalid email",
			mutate:    func(r *IdeaRequest) { r.ContactInfo = "not-an-email" },
			wantField: "ContactInfo",
		},
		{
			name:      "business registration not an integer",
			mutate:    func(r *IdeaRequest) { r.BusinessRegistration = "12a" },
			wantField: "BusinessRegistration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validIdeaRequest()
			tt.mutate(&request)

			errs := request.Validate()
			if tt.wantField == "" {
				be.Equal(t, 0, len(errs))
				return
			}

			be.Nonzero(t, errs[tt.wantField])
		})
	}
}

// The form field validators count runes the same way the schema tags
// do, so multibyte input passes or fails both layers together.
func TestFieldValidatorsCountRunes(t *testing.T) {
	be.NilErr(t, validateTitle(strings.Repeat("é", 100)))
	be.Nonzero(t, validateTitle(strings.Repeat("é", 101)))
	be.Nonzero(t, validateTitle(""))

	be.NilErr(t, validateDescription(strings.Repeat("é", 10)))
	be.NilErr(t, validateDescription(strings.Repeat("é", 500)))
	be.Nonzero(t, validateDescription(strings.Repeat("é", 9)))
	be.Nonzero(t, validateDescription(strings.Repeat("é", 501)))
}

func TestIdeaRequestCategoryValidation(t *testing.T) {
	// every member of the fixed set is accepted
	for _, category := range categories {
		request := validIdeaRequest()
		request.Category = category
		be.Equal(t, 0, len(request.Validate()))
	}

	// anything else is rejected, including the empty string
	for _, category := range []string{"", "technology", "Crypto", "Food"} {
		request := validIdeaRequest()
		request.Category = category

		errs := request.Validate()
		be.Nonzero(t, errs["Category"])
	}
}

func TestIdeaRequestToCreateIdea(t *testing.T) {
	request := validIdeaRequest()
	request.FundingGoal = "12.5"

	createReq, err := request.ToCreateIdea()
	be.NilErr(t, err)
	be.Equal(t, int64(1250000000), createReq.FundingGoal)
	be.Equal(t, 1, createReq.BusinessRegistration)
	be.Equal(t, "Eco-Friendly Water Bottles", createReq.Title)
}

func TestContributionAmountValidation(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{amount: "0", valid: false},
		{amount: "-1", valid: false},
		{amount: "-0.00000001", valid: false},
		{amount: "0.00000001", valid: true},
		{amount: "25.00", valid: true},
		{amount: "1000", valid: true},
		{amount: "1000.00", valid: true},
		{amount: "1000.00000001", valid: false},
		{amount: "1001", valid: false},
		{amount: "", valid: false},
		{amount: "abc", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			request := ContributionRequest{Amount: tt.amount, CampaignID: 1}
			errs := request.Validate()

			if tt.valid {
				be.Equal(t, 0, len(errs))
			} else {
				be.Nonzero(t, errs["Amount"])
			}
		})
	}
}

// Out-of-range amounts all produce the same composite message,
// regardless of which bound was violated.
func TestContributionAmountCompositeMessage(t *testing.T) {
	for _, amount := range []string{"0", "-1", "1000.00000001", "5000"} {
		request := ContributionRequest{Amount: amount, CampaignID: 1}
		errs := request.Validate()
		be.Equal(t, errContributionRange.Error(), errs["Amount"])
	}
}

func TestContributionRequestCampaignID(t *testing.T) {
	request := ContributionRequest{Amount: "25.00", CampaignID: 0}
	errs := request.Validate()
	be.Nonzero(t, errs["CampaignID"])
}

func TestContributionRequestToContribute(t *testing.T) {
	request := ContributionRequest{Amount: "25.00", CampaignID: 7}

	wireReq, err := request.ToContribute("aaaaa-aa")
	be.NilErr(t, err)
	be.Equal(t, fv.ContributeRequest{
		PayeePrincipal: "aaaaa-aa",
		CampaignID:     7,
		Amount:         2500000000,
	}, wireReq)
}
