package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for quit key first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case getCampaignsMsg:
		return m.handleGetCampaigns(msg)

	case getOverviewMsg:
		return m.handleGetOverview(msg)

	case campaignDetailMsg:
		return m.handleCampaignDetail(msg)

	case createIdeaMsg:
		return m.handleCreateIdeaResult(msg)

	case contributeMsg:
		return m.handleContributeResult(msg)

	case error:
		m.sessionState = errorState
		m.errorMsg = fmt.Sprintf("Check the gateway endpoint: %s", msg.Error())
		return m, nil
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case campaignsState:
		return updateCampaigns(msg, m)

	case campaignDetail:
		return m, nil

	case overviewState:
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd

	case createIdea:
		return updateCreateIdea(msg, m)

	case contribute:
		return updateContribute(msg, m)

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd

	case loading:
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
