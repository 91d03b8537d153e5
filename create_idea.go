package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

// newCreateIdeaForm binds every field to draft, so a form rebuilt
// around the same draft comes back pre-filled.
func newCreateIdeaForm(draft *IdeaRequest) *huh.Form {
	categoryOpts := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		categoryOpts[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("Project title, at most 100 characters").
				Placeholder("Enter project title...").
				Value(&draft.Title).
				Validate(validateTitle),

			huh.NewText().
				Title("Description").
				Description("What the project is about, 10 to 500 characters").
				Placeholder("Describe the project...").
				Value(&draft.Description).
				Validate(validateDescription),

			huh.NewInput().
				Title("Funding goal").
				Description("Target amount in platform currency").
				Placeholder("Enter amount (e.g., 50000)...").
				Value(&draft.FundingGoal).
				Validate(validateFundingGoal),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Legal entity").
				Description("The legal entity behind the project").
				Placeholder("Enter legal entity...").
				Value(&draft.LegalEntity).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("legal entity is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Contact email").
				Description("Where backers can reach the project").
				Placeholder("name@example.com").
				Value(&draft.ContactInfo).
				Validate(func(s string) error {
					if err := validate.Var(s, "required,email"); err != nil {
						return errors.New("contact info must be a valid email address")
					}
					return nil
				}),

			huh.NewInput().
				Title("Business registration").
				Description("Registration number of the business").
				Placeholder("Enter registration number...").
				Value(&draft.BusinessRegistration).
				Validate(func(s string) error {
					if err := validate.Var(s, "required,number"); err != nil {
						return errors.New("business registration must be a whole number")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Description("Select the project's category").
				Options(categoryOpts...).
				Value(&draft.Category),
		),
	)
}

func startCreateIdea(m *model) (tea.Model, tea.Cmd) {
	m.errorMsg = ""
	m.ideaDraft = &IdeaRequest{}
	m.createIdeaForm = newCreateIdeaForm(m.ideaDraft)
	m.previousSessionState = m.sessionState
	m.sessionState = createIdea
	return m, tea.Batch(m.createIdeaForm.Init(), tea.WindowSize())
}

func updateCreateIdea(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	form, cmd := m.createIdeaForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.createIdeaForm = f
	} else {
		log.Debug("createIdeaForm did not return a form")
		return m, nil
	}

	if m.createIdeaForm.State == huh.StateAborted {
		m.sessionState = campaignsState
		m.errorMsg = ""
		m.ideaDraft = nil
		return m, nil
	}

	if m.createIdeaForm.State == huh.StateCompleted && !m.submitting {
		m.submitting = true
		return m, submitCreateIdeaForm(m)
	}

	return m, cmd
}

func createIdeaView(m model) string {
	if m.errorMsg != "" {
		return m.styles.errorStyle.Render(m.errorMsg) + "\n\n" + m.createIdeaForm.View()
	}
	return m.createIdeaForm.View()
}

// submitCreateIdeaForm turns the completed form into the single
// creation call. The draft carries the committed field values.
func submitCreateIdeaForm(m model) tea.Cmd {
	request := *m.ideaDraft

	return func() tea.Msg {
		// the form's field validators already ran; this is the
		// all-or-nothing schema check before the network call
		if errs := request.Validate(); len(errs) > 0 {
			for field, msg := range errs {
				log.Error("invalid field", "field", field, "error", msg)
			}
			return createIdeaMsg{err: errors.New("validation failed")}
		}

		createReq, err := request.ToCreateIdea()
		if err != nil {
			return createIdeaMsg{err: err}
		}

		log.Debug("creating idea", "request", createReq)

		ideaID, err := m.fvc.CreateIdea(context.Background(), createReq)
		if err != nil {
			log.Error("creating idea", "error", err)
			return createIdeaMsg{err: fmt.Errorf("creating idea: %w", err)}
		}

		return createIdeaMsg{ideaID: ideaID}
	}
}
