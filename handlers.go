package main

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/fundverse/fundtui/fv"
)

// Message types for gateway responses.
type (
	getCampaignsMsg struct {
		cards []*fv.CampaignCard
	}

	getOverviewMsg struct {
		active []*fv.CampaignCard
		ended  []*fv.CampaignCard
	}

	campaignDetailMsg struct {
		cwi *fv.CampaignWithIdea
		err error
	}

	createIdeaMsg struct {
		ideaID int64
		err    error
	}

	contributeMsg struct {
		contributionID int64
		err            error
	}
)

// getCampaigns fetches the campaign list, honoring the status filter.
// The result replaces the list wholesale; there is no merge.
func (m model) getCampaigns() tea.Msg {
	ctx := context.Background()

	var (
		cards []*fv.CampaignCard
		err   error
	)

	if m.statusFilter == "" {
		cards, err = m.fvc.GetCampaignCards(ctx)
	} else {
		cards, err = m.fvc.GetCampaignCardsByStatus(ctx, m.statusFilter)
	}
	if err != nil {
		log.Error("fetching campaigns", "error", err)
		return err
	}

	return getCampaignsMsg{cards: cards}
}

// getOverview fetches the active and ended card sets in parallel for
// the dashboard.
func (m model) getOverview() tea.Msg {
	ctx := context.Background()

	var errGroup errgroup.Group
	var active, ended []*fv.CampaignCard

	errGroup.Go(func() error {
		cs, err := m.fvc.GetCampaignCardsByStatus(ctx, fv.CampaignActive)
		if err != nil {
			return err
		}
		active = cs
		return nil
	})

	errGroup.Go(func() error {
		cs, err := m.fvc.GetCampaignCardsByStatus(ctx, fv.CampaignEnded)
		if err != nil {
			return err
		}
		ended = cs
		return nil
	})

	if err := errGroup.Wait(); err != nil {
		log.Error("fetching overview", "error", err)
		return err
	}

	return getOverviewMsg{active: active, ended: ended}
}

// getCampaignDetail fetches a single campaign joined with its idea.
func (m model) getCampaignDetail(campaignID int64) tea.Cmd {
	return func() tea.Msg {
		cwi, err := m.fvc.GetCampaignWithIdea(context.Background(), campaignID)
		if err != nil {
			log.Error("fetching campaign detail", "campaign", campaignID, "error", err)
		}
		return campaignDetailMsg{cwi: cwi, err: err}
	}
}

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	takenHeight := 5
	m.campaigns.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.overview.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.configView.SetSize(msg.Width-h, msg.Height-v-takenHeight)

	m.help.Width = msg.Width

	if m.createIdeaForm != nil {
		m.createIdeaForm = m.createIdeaForm.WithHeight(msg.Height - takenHeight).WithWidth(msg.Width)
	}
	if m.contributeForm != nil {
		m.contributeForm = m.contributeForm.WithHeight(msg.Height - takenHeight).WithWidth(msg.Width)
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleGetCampaigns(msg getCampaignsMsg) (tea.Model, tea.Cmd) {
	items := make([]list.Item, len(msg.cards))
	for i, card := range msg.cards {
		items[i] = campaignItem{card: card}
	}

	// SetItems discards the previous list entirely
	cmd := m.campaigns.SetItems(items)

	m.loadingState.set("campaigns")
	if m.sessionState == loading {
		m.sessionState = m.checkIfLoading()
	}

	return m, tea.Batch(cmd, tea.WindowSize())
}

func (m model) handleGetOverview(msg getOverviewMsg) (tea.Model, tea.Cmd) {
	m.overview.SetCampaigns(msg.active, msg.ended)

	m.loadingState.set("overview")
	if m.sessionState == loading {
		m.sessionState = m.checkIfLoading()
	}

	return m, nil
}

func (m model) handleCampaignDetail(msg campaignDetailMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.campaigns.NewStatusMessage("Error loading campaign: " + msg.err.Error())
	}

	m.detail = msg.cwi
	m.previousSessionState = m.sessionState
	m.sessionState = campaignDetail
	return m, nil
}

func (m model) handleCreateIdeaResult(msg createIdeaMsg) (tea.Model, tea.Cmd) {
	m.submitting = false

	if msg.err != nil {
		// keep the form open with the typed input so the user can retry
		m.errorMsg = "Idea not created: " + msg.err.Error()
		if m.ideaDraft == nil {
			m.ideaDraft = &IdeaRequest{}
		}
		m.createIdeaForm = newCreateIdeaForm(m.ideaDraft)
		m.sessionState = createIdea
		return m, tea.Batch(m.createIdeaForm.Init(), tea.WindowSize())
	}

	m.errorMsg = ""
	m.createIdeaForm = nil
	m.ideaDraft = nil
	m.sessionState = campaignsState

	log.Info("idea created", "id", msg.ideaID)

	return m, tea.Batch(
		m.getCampaigns,
		m.getOverview,
		m.campaigns.NewStatusMessage("Idea created successfully!"),
	)
}

func (m model) handleContributeResult(msg contributeMsg) (tea.Model, tea.Cmd) {
	m.submitting = false

	if msg.err != nil {
		// keep the form open so the user can retry
		m.errorMsg = "Contribution failed: " + msg.err.Error()
		m.contributeForm = newContributeForm(m.contributeCampaign)
		m.sessionState = contribute
		return m, tea.Batch(m.contributeForm.Init(), tea.WindowSize())
	}

	m.errorMsg = ""
	m.contributeForm = nil
	m.contributeCampaign = nil
	m.sessionState = campaignsState

	log.Info("contribution confirmed", "id", msg.contributionID)

	return m, tea.Batch(
		m.getCampaigns,
		m.getOverview,
		m.campaigns.NewStatusMessage("Contribution confirmed!"),
	)
}
