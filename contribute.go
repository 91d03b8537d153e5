package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/fundverse/fundtui/config"
	"github.com/fundverse/fundtui/fv"
)

func newContributeForm(card *fv.CampaignCard) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(card.Title).
				Description(fmt.Sprintf("%s raised of %s",
					fv.DisplayAmount(card.AmountRaised),
					fv.DisplayAmount(card.Goal),
				)),

			huh.NewInput().
				Title("Amount").
				Description("Contribution amount, greater than 0 and at most 1000").
				Key("amount").
				Placeholder("Enter amount (e.g., 25.00)...").
				Validate(validateContributionAmount),
		),
	)
}

func startContribute(m *model, card *fv.CampaignCard) (tea.Model, tea.Cmd) {
	if card.Ended() {
		return m, m.campaigns.NewStatusMessage("This campaign has ended")
	}

	m.errorMsg = ""
	m.contributeCampaign = card
	m.contributeForm = newContributeForm(card)
	m.previousSessionState = m.sessionState
	m.sessionState = contribute
	return m, tea.Batch(m.contributeForm.Init(), tea.WindowSize())
}

func updateContribute(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	form, cmd := m.contributeForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.contributeForm = f
	} else {
		log.Debug("contributeForm did not return a form")
		return m, nil
	}

	if m.contributeForm.State == huh.StateAborted {
		m.sessionState = campaignsState
		m.errorMsg = ""
		m.contributeCampaign = nil
		return m, nil
	}

	if m.contributeForm.State == huh.StateCompleted && !m.submitting {
		m.submitting = true
		return m, submitContributeForm(m)
	}

	return m, cmd
}

func contributeView(m model) string {
	if m.errorMsg != "" {
		return m.styles.errorStyle.Render(m.errorMsg) + "\n\n" + m.contributeForm.View()
	}
	return m.contributeForm.View()
}

// submitContributeForm turns the completed form into the ordered
// contribution calls.
func submitContributeForm(m model) tea.Cmd {
	request := ContributionRequest{
		Amount:     m.contributeForm.GetString("amount"),
		CampaignID: m.contributeCampaign.ID,
	}

	return func() tea.Msg {
		if errs := request.Validate(); len(errs) > 0 {
			for field, msg := range errs {
				log.Error("invalid field", "field", field, "error", msg)
			}
			return contributeMsg{err: fmt.Errorf("validation failed")}
		}

		contributionID, err := submitContribution(context.Background(), m.fvc, m.cfg, request)
		if err != nil {
			return contributeMsg{err: err}
		}

		return contributeMsg{contributionID: contributionID}
	}
}

// submitContribution runs the contribution workflow against the
// backend in order: register the acting user (best effort), submit
// the contribution, confirm the payment. A registration failure is
// logged and skipped; a failure of either later step aborts the rest.
// There is no client-side rollback: once a step has committed, the
// backend's state is the sole source of truth.
func submitContribution(ctx context.Context, b backend, cfg config.Config, request ContributionRequest) (int64, error) {
	if err := b.RegisterUser(ctx, fv.RegisterUserRequest{
		DisplayName: cfg.Name,
		Email:       cfg.Email,
	}); err != nil {
		// harmless when the user is already registered
		log.Warn("user registration failed, continuing", "error", err)
	}

	wireReq, err := request.ToContribute(cfg.PayeePrincipal)
	if err != nil {
		return 0, err
	}

	log.Debug("submitting contribution",
		"campaign", wireReq.CampaignID,
		"amount", wireReq.Amount,
	)

	contributionID, err := b.Contribute(ctx, wireReq)
	if err != nil {
		return 0, fmt.Errorf("submitting contribution: %w", err)
	}

	log.Debug("confirming contribution", "contribution", contributionID)

	if err := b.ConfirmPayment(ctx, contributionID, cfg.PayeePrincipal); err != nil {
		return 0, fmt.Errorf("confirming contribution %d: %w", contributionID, err)
	}

	return contributionID, nil
}
