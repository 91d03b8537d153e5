package main

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/fundverse/fundtui/config"
	"github.com/fundverse/fundtui/fv"
	"github.com/fundverse/fundtui/overview"
)

// backend is the narrow set of gateway operations the TUI depends on.
// *fv.Client satisfies it; tests substitute a fake.
type backend interface {
	GetCampaignCards(ctx context.Context) ([]*fv.CampaignCard, error)
	GetCampaignCardsByStatus(ctx context.Context, status fv.CampaignStatus) ([]*fv.CampaignCard, error)
	GetCampaignWithIdea(ctx context.Context, campaignID int64) (*fv.CampaignWithIdea, error)
	CreateIdea(ctx context.Context, req fv.CreateIdeaRequest) (int64, error)
	RegisterUser(ctx context.Context, req fv.RegisterUserRequest) error
	Contribute(ctx context.Context, req fv.ContributeRequest) (int64, error)
	ConfirmPayment(ctx context.Context, contributionID int64, payeePrincipal string) error
}

type model struct {
	// loadingSpinner is a spinner model for the initial loading state
	loadingSpinner spinner.Model

	keys  keyMap
	help  help.Model
	theme Theme
	// styles is the set of lipgloss styles derived from the theme
	styles styles

	// sessionState is the current state of the session
	sessionState sessionState
	// previousSessionState is where escape returns to
	previousSessionState sessionState

	// campaigns is a bubbletea list model of campaign cards
	campaigns list.Model
	// campaignsListKeys is the keybindings for the campaigns list
	campaignsListKeys *campaignListKeyMap
	// statusFilter narrows the campaign list; empty means all
	statusFilter fv.CampaignStatus

	overview   overview.Model
	configView config.Model

	// detail is the campaign shown in the detail view
	detail *fv.CampaignWithIdea

	createIdeaForm *huh.Form
	// ideaDraft backs the create-idea form fields; it survives a failed
	// submission so the rebuilt form keeps the typed input
	ideaDraft      *IdeaRequest
	contributeForm *huh.Form
	// contributeCampaign is the campaign the contribute form targets
	contributeCampaign *fv.CampaignCard
	// submitting guards against duplicate concurrent submissions of
	// the same form; it does not cancel in-flight calls
	submitting bool

	// errorMsg is shown above forms after a failed workflow
	errorMsg string

	loadingState loadingState

	// cfg is the injected session: endpoint, payee principal and the
	// acting user's registration details
	cfg config.Config
	fvc backend
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.getCampaigns,
		m.getOverview,
		m.loadingSpinner.Tick,
	)
}

func (m model) checkIfLoading() sessionState {
	if loaded, waitingOn := m.loadingState.allLoaded(); !loaded {
		log.Debug("still loading", "waiting_on", waitingOn)
		return loading
	}

	return campaignsState
}

// rootAction starts the TUI.
func rootAction(_ context.Context, cfg config.Config, client *fv.Client) error {
	theme := newTheme(cfg.Colors)

	clKeyMap := newCampaignListKeyMap()
	m := model{
		keys:              initializeKeyMap(),
		help:              createHelpModel(theme),
		theme:             theme,
		styles:            createStyles(theme),
		sessionState:      loading,
		campaignsListKeys: clKeyMap,
		loadingSpinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
		),
		overview:     overview.New(overview.WithStyles(overviewStyles(theme))),
		configView:   config.New(),
		loadingState: newLoadingState("campaigns", "overview"),
		cfg:          cfg,
		fvc:          client,
	}

	m.configView.SetConfig(cfg)

	campaignList := list.New([]list.Item{}, m.newItemDelegate(), 0, 0)
	campaignList.SetShowTitle(false)
	campaignList.StatusMessageLifetime = statusMessageLifetime
	campaignList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			clKeyMap.refresh,
			clKeyMap.detail,
			clKeyMap.contribute,
			clKeyMap.newIdea,
			clKeyMap.cycleStatus,
		}
	}
	m.campaigns = campaignList

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
