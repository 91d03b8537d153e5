package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/fundverse/fundtui/fv"
)

// categories is the fixed set of idea categories the backend accepts.
var categories = []string{
	"Technology",
	"Healthcare",
	"Education",
	"Environment",
	"Gaming",
	"Finance",
	"Food & Beverage",
	"Art & Design",
	"Social Impact",
	"Other",
}

// maxContribution is the upper bound, in display units, of a single
// contribution.
var maxContribution = decimal.NewFromInt(1000)

// errContributionRange is the single composite message for any amount
// outside the accepted range.
var errContributionRange = errors.New("amount must be greater than 0 and at most 1000")

// IdeaRequest is the validated form of the project-creation input.
// All fields are raw strings as entered; conversion happens in
// ToCreateIdea after validation passes.
type IdeaRequest struct {
	Title                string `validate:"required,max=100"`
	Description          string `validate:"required,min=10,max=500"`
	FundingGoal          string `validate:"required,fundinggoal"`
	LegalEntity          string `validate:"required"`
	ContactInfo          string `validate:"required,email"`
	Category             string `validate:"required,category"`
	BusinessRegistration string `validate:"required,number"`
}

// ContributionRequest is the validated form of the contribution input.
// CampaignID comes from the selected list item, not user input.
type ContributionRequest struct {
	Amount     string `validate:"required,contribution"`
	CampaignID int64  `validate:"required,gt=0"`
}

// FieldErrors maps field names to human readable messages. An empty
// map means the request is valid; any entry blocks submission.
type FieldErrors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return validateCategory(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("fundinggoal", func(fl validator.FieldLevel) bool {
		return validateFundingGoal(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("contribution", func(fl validator.FieldLevel) bool {
		return validateContributionAmount(fl.Field().String()) == nil
	})

	return v
}

// validateTitle checks the title bounds. Lengths are rune counts,
// matching the validate struct tags.
func validateTitle(s string) error {
	if s == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(s) > 100 {
		return errors.New("title must be at most 100 characters")
	}
	return nil
}

// validateDescription checks the description bounds in rune counts.
func validateDescription(s string) error {
	if n := utf8.RuneCountInString(s); n < 10 || n > 500 {
		return errors.New("description must be between 10 and 500 characters")
	}
	return nil
}

// validateCategory checks membership in the fixed category set.
func validateCategory(s string) error {
	if !slices.Contains(categories, s) {
		return fmt.Errorf("category must be one of the listed categories")
	}
	return nil
}

// validateFundingGoal checks the goal is a positive decimal string.
func validateFundingGoal(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.New("funding goal must be a valid number")
	}
	if !d.IsPositive() {
		return errors.New("funding goal must be greater than 0")
	}
	return nil
}

// validateContributionAmount enforces 0 < amount <= 1000. Any range
// failure reports the same composite message regardless of which
// bound was violated.
func validateContributionAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.New("amount must be a valid number")
	}
	if !d.IsPositive() || d.GreaterThan(maxContribution) {
		return errContributionRange
	}
	return nil
}

// fieldErrorMessage turns a validator error into the message shown
// next to the field.
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		return "title is required and must be at most 100 characters"
	case "Description":
		return "description must be between 10 and 500 characters"
	case "FundingGoal":
		if fe.Tag() == "required" {
			return "funding goal is required"
		}
		return "funding goal must be a positive number"
	case "LegalEntity":
		return "legal entity is required"
	case "ContactInfo":
		return "contact info must be a valid email address"
	case "Category":
		return "category must be one of the listed categories"
	case "BusinessRegistration":
		return "business registration must be a whole number"
	case "Amount":
		if fe.Tag() == "required" {
			return "amount is required"
		}
		return errContributionRange.Error()
	case "CampaignID":
		return "a campaign must be selected"
	}

	return fmt.Sprintf("%s is invalid", fe.Field())
}

func fieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}

	errs := FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		errs[fe.Field()] = fieldErrorMessage(fe)
	}

	return errs
}

// Validate checks the request. Validation is synchronous and pure;
// nothing reaches the network until it returns an empty map.
func (r IdeaRequest) Validate() FieldErrors {
	return fieldErrors(validate.Struct(r))
}

// ToCreateIdea converts a validated request into the wire form,
// translating the funding goal to base units.
func (r IdeaRequest) ToCreateIdea() (fv.CreateIdeaRequest, error) {
	goal, err := fv.ToBaseUnits(r.FundingGoal)
	if err != nil {
		return fv.CreateIdeaRequest{}, err
	}

	reg, err := strconv.Atoi(r.BusinessRegistration)
	if err != nil {
		return fv.CreateIdeaRequest{}, fmt.Errorf("parsing business registration: %w", err)
	}

	return fv.CreateIdeaRequest{
		Title:                r.Title,
		Description:          r.Description,
		FundingGoal:          goal,
		LegalEntity:          r.LegalEntity,
		ContactInfo:          r.ContactInfo,
		Category:             r.Category,
		BusinessRegistration: reg,
	}, nil
}

// Validate checks the request. See IdeaRequest.Validate.
func (r ContributionRequest) Validate() FieldErrors {
	return fieldErrors(validate.Struct(r))
}

// ToContribute converts a validated request into the wire form,
// translating the amount to base units.
func (r ContributionRequest) ToContribute(payeePrincipal string) (fv.ContributeRequest, error) {
	amount, err := fv.ToBaseUnits(r.Amount)
	if err != nil {
		return fv.ContributeRequest{}, err
	}

	return fv.ContributeRequest{
		PayeePrincipal: payeePrincipal,
		CampaignID:     r.CampaignID,
		Amount:         amount,
	}, nil
}
