package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fundverse/fundtui/fv"
)

type campaignItem struct {
	card *fv.CampaignCard
}

func (c campaignItem) Title() string {
	return fmt.Sprintf("%s (%d)", c.card.Title, c.card.ID)
}

func (c campaignItem) Description() string {
	timeLeft := fmt.Sprintf("%d days left", c.card.DaysLeft)
	if c.card.Ended() {
		timeLeft = "ended"
	}

	return fmt.Sprintf("%s | %s raised of %s | %s",
		c.card.Category,
		fv.DisplayAmount(c.card.AmountRaised),
		fv.DisplayAmount(c.card.Goal),
		timeLeft,
	)
}

func (c campaignItem) FilterValue() string {
	return fmt.Sprintf("%s %s", c.card.Title, c.card.Category)
}

type campaignListKeyMap struct {
	refresh     key.Binding
	detail      key.Binding
	contribute  key.Binding
	newIdea     key.Binding
	cycleStatus key.Binding
}

func newCampaignListKeyMap() *campaignListKeyMap {
	return &campaignListKeyMap{
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh campaigns"),
		),
		detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "campaign details"),
		),
		contribute: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "contribute"),
		),
		newIdea: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new idea"),
		),
		cycleStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle status filter"),
		),
	}
}

func (m model) newItemDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)}).
		Foreground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)}).
		Padding(0, 0, 0, 1)

	d.Styles.SelectedDesc = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)})

	return d
}

// nextStatusFilter cycles all -> active -> ended -> all.
func nextStatusFilter(current fv.CampaignStatus) fv.CampaignStatus {
	switch current {
	case "":
		return fv.CampaignActive
	case fv.CampaignActive:
		return fv.CampaignEnded
	default:
		return ""
	}
}

func updateCampaigns(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		// if the list is filtering, keys belong to the filter input
		if m.campaigns.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, m.campaignsListKeys.refresh):
				return m, m.getCampaigns

			case key.Matches(msg, m.campaignsListKeys.cycleStatus):
				m.statusFilter = nextStatusFilter(m.statusFilter)
				return m, m.getCampaigns

			case key.Matches(msg, m.campaignsListKeys.detail):
				item, ok := m.campaigns.SelectedItem().(campaignItem)
				if !ok {
					return m, nil
				}
				return m, m.getCampaignDetail(item.card.ID)

			case key.Matches(msg, m.campaignsListKeys.contribute):
				item, ok := m.campaigns.SelectedItem().(campaignItem)
				if !ok {
					return m, nil
				}
				return startContribute(&m, item.card)

			case key.Matches(msg, m.campaignsListKeys.newIdea):
				return startCreateIdea(&m)
			}
		}
	}

	var cmd tea.Cmd
	m.campaigns, cmd = m.campaigns.Update(msg)

	return m, cmd
}

func campaignsView(m model) string {
	return m.campaigns.View()
}
