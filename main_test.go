package main

import (
	"errors"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fundverse/fundtui/config"
	"github.com/fundverse/fundtui/fv"
	"github.com/fundverse/fundtui/overview"
)

var errAPIDown = errors.New("gateway unavailable")

func newTestModel(t *testing.T, b backend) model {
	t.Helper()

	theme := newTheme(config.Colors{})
	m := model{
		keys:              initializeKeyMap(),
		help:              createHelpModel(theme),
		theme:             theme,
		styles:            createStyles(theme),
		sessionState:      campaignsState,
		campaignsListKeys: newCampaignListKeyMap(),
		loadingSpinner:    spinner.New(),
		overview:          overview.New(overview.WithStyles(overviewStyles(theme))),
		configView:        config.New(),
		loadingState:      newLoadingState("campaigns", "overview"),
		cfg:               testSession(),
		fvc:               b,
	}
	m.campaigns = list.New([]list.Item{}, m.newItemDelegate(), 40, 20)

	return m
}

func testCard(id int64) *fv.CampaignCard {
	return &fv.CampaignCard{
		ID:           id,
		Title:        "Solar Microgrid",
		Category:     "Environment",
		Goal:         500000000000,
		AmountRaised: 120000000000,
		DaysLeft:     12,
	}
}

func TestHandleGetCampaignsReplacesList(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})

	m.campaigns.SetItems([]list.Item{
		campaignItem{card: testCard(1)},
		campaignItem{card: testCard(2)},
	})

	updated, _ := m.handleGetCampaigns(getCampaignsMsg{
		cards: []*fv.CampaignCard{testCard(9)},
	})
	m = updated.(model)

	items := m.campaigns.Items()
	be.Equal(t, 1, len(items))
	be.Equal(t, "Solar Microgrid (9)", items[0].(campaignItem).Title())
}

func TestContributeSuccessRefreshesListOnce(t *testing.T) {
	b := &fakeBackend{cards: []*fv.CampaignCard{testCard(1)}}
	m := newTestModel(t, b)

	card := testCard(1)
	m.sessionState = contribute
	m.contributeCampaign = card
	m.contributeForm = newContributeForm(card)

	updated, cmd := m.handleContributeResult(contributeMsg{contributionID: 42})
	m = updated.(model)

	be.Equal(t, campaignsState, m.sessionState)
	be.Equal(t, "", m.errorMsg)
	be.Nonzero(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	be.True(t, ok)

	refreshes := 0
	for _, c := range batch {
		if _, ok := c().(getCampaignsMsg); ok {
			refreshes++
		}
	}
	be.Equal(t, 1, refreshes)
	be.Equal(t, 1, b.campaignCalls)
}

func TestContributeFailureKeepsFormOpen(t *testing.T) {
	b := &fakeBackend{}
	m := newTestModel(t, b)

	card := testCard(1)
	m.sessionState = contribute
	m.contributeCampaign = card
	m.contributeForm = newContributeForm(card)

	updated, _ := m.handleContributeResult(contributeMsg{err: errAPIDown})
	m = updated.(model)

	be.Equal(t, contribute, m.sessionState)
	be.Nonzero(t, m.contributeForm)
	be.In(t, "gateway unavailable", m.errorMsg)
	// no refresh on failure
	be.Equal(t, 0, b.campaignCalls)
}

func TestCreateIdeaFailureKeepsFormOpen(t *testing.T) {
	b := &fakeBackend{}
	m := newTestModel(t, b)

	m.sessionState = createIdea
	m.ideaDraft = &IdeaRequest{}
	m.createIdeaForm = newCreateIdeaForm(m.ideaDraft)

	updated, _ := m.handleCreateIdeaResult(createIdeaMsg{err: errAPIDown})
	m = updated.(model)

	be.Equal(t, createIdea, m.sessionState)
	be.Nonzero(t, m.createIdeaForm)
	be.In(t, "gateway unavailable", m.errorMsg)
	be.Equal(t, 0, b.campaignCalls)
}

// A failed creation keeps the typed field values: the form is rebuilt
// around the same draft, so nothing has to be re-entered.
func TestCreateIdeaFailurePreservesInput(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})

	draft := validIdeaRequest()
	m.sessionState = createIdea
	m.ideaDraft = &draft
	m.createIdeaForm = newCreateIdeaForm(m.ideaDraft)

	updated, _ := m.handleCreateIdeaResult(createIdeaMsg{err: errAPIDown})
	m = updated.(model)

	be.Equal(t, &draft, m.ideaDraft)
	be.Equal(t, "Eco-Friendly Water Bottles", m.ideaDraft.Title)
	be.Equal(t, "Environment", m.ideaDraft.Category)
	// the rebuilt form renders the preserved title
	be.In(t, "Eco-Friendly Water Bottles", m.createIdeaForm.View())
}

func TestCreateIdeaSuccessDiscardsDraft(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})

	draft := validIdeaRequest()
	m.sessionState = createIdea
	m.ideaDraft = &draft
	m.createIdeaForm = newCreateIdeaForm(m.ideaDraft)

	updated, _ := m.handleCreateIdeaResult(createIdeaMsg{ideaID: 3})
	m = updated.(model)

	be.Equal(t, campaignsState, m.sessionState)
	be.Zero(t, m.ideaDraft)
	be.Zero(t, m.createIdeaForm)
}

func TestHandleEscape(t *testing.T) {
	tests := []struct {
		name  string
		state sessionState
		want  sessionState
	}{
		{name: "detail returns to campaigns", state: campaignDetail, want: campaignsState},
		{name: "overview returns to campaigns", state: overviewState, want: campaignsState},
		{name: "config returns to campaigns", state: configView, want: campaignsState},
		{name: "campaigns is a no-op", state: campaignsState, want: campaignsState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, &fakeBackend{})
			m.sessionState = tt.state

			updated, _ := handleEscape(&m)
			be.Equal(t, tt.want, updated.(*model).sessionState)
		})
	}
}

func TestHandleEscapeAbortsContributeForm(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	card := testCard(1)
	m.sessionState = contribute
	m.contributeCampaign = card
	m.contributeForm = newContributeForm(card)
	m.errorMsg = "Contribution failed: boom"

	updated, _ := handleEscape(&m)
	got := updated.(*model)

	be.Equal(t, campaignsState, got.sessionState)
	be.Equal(t, "", got.errorMsg)
	be.Zero(t, got.contributeCampaign)
}

func TestCheckIfLoading(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})

	be.Equal(t, loading, m.checkIfLoading())

	m.loadingState.set("campaigns")
	be.Equal(t, loading, m.checkIfLoading())

	m.loadingState.set("overview")
	be.Equal(t, campaignsState, m.checkIfLoading())
}
