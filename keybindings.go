package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	campaigns key.Binding
	overview  key.Binding
	config    key.Binding
	escape    key.Binding
	fullHelp  key.Binding
	quit      key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.campaigns,
		km.overview,
		km.config,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.campaigns,
			km.overview,
			km.config,
		},
		{
			km.escape,
			km.quit,
			km.fullHelp,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		campaigns: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "campaigns"),
		),
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "escape"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	log.Debug("key pressed", "key", msg.String())

	// Handle special keys first
	if model, cmd := handleSpecialKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Check if input is blocked by active forms
	if isInputBlocked(m) {
		return m, nil
	}

	// Handle session state changes
	if model, cmd := handleSessionStateKeys(msg, m); cmd != nil {
		return model, cmd
	}

	return m, nil
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) && !isInputBlocked(m) {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(m)
	}

	return m, nil
}

func isInputBlocked(m *model) bool {
	if m.campaigns.FilterState() == list.Filtering {
		return true
	}

	if m.createIdeaForm != nil && m.createIdeaForm.State == huh.StateNormal {
		return true
	}

	if m.contributeForm != nil && m.contributeForm.State == huh.StateNormal {
		return true
	}

	return m.submitting
}

func handleEscape(m *model) (tea.Model, tea.Cmd) {
	switch m.sessionState {
	case createIdea:
		if m.createIdeaForm != nil {
			m.createIdeaForm.State = huh.StateAborted
		}
		m.errorMsg = ""
		m.ideaDraft = nil
		m.sessionState = campaignsState
		return m, tea.Batch(tea.WindowSize())

	case contribute:
		if m.contributeForm != nil {
			m.contributeForm.State = huh.StateAborted
		}
		m.errorMsg = ""
		m.contributeCampaign = nil
		m.sessionState = campaignsState
		return m, tea.Batch(tea.WindowSize())

	case campaignDetail, overviewState, configView:
		m.sessionState = campaignsState
		return m, tea.Batch(tea.WindowSize())
	}

	return m, nil
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.campaigns):
		m.previousSessionState = m.sessionState
		m.sessionState = campaignsState
		return m, tea.WindowSize()

	case key.Matches(msg, m.keys.overview):
		m.previousSessionState = m.sessionState
		m.sessionState = overviewState
		return m, tea.Batch(m.getOverview, tea.WindowSize())

	case key.Matches(msg, m.keys.config):
		m.previousSessionState = m.sessionState
		m.sessionState = configView
		return m, tea.WindowSize()
	}

	return m, nil
}
