package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch m.sessionState {
	case campaignsState:
		b.WriteString(campaignsView(m))
	case campaignDetail:
		b.WriteString(campaignDetailView(m))
	case overviewState:
		b.WriteString(m.overview.View())
	case createIdea:
		b.WriteString(createIdeaView(m))
	case contribute:
		b.WriteString(contributeView(m))
	case configView:
		b.WriteString(m.configView.View())
	case loading:
		b.WriteString(fmt.Sprintf("%s Loading campaigns...", m.loadingSpinner.View()))
	case errorState:
		b.WriteString(m.styles.errorStyle.Render(fmt.Sprintf("%s - 'q' to quit", m.errorMsg)))
		return m.styles.docStyle.Render(b.String())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	if m.statusFilter == "" {
		return m.styles.titleStyle.Render(fmt.Sprintf("fundtui | %s", m.sessionState.String()))
	}

	return m.styles.titleStyle.Render(
		fmt.Sprintf("fundtui | %s | %s", m.sessionState.String(), m.statusFilter),
	)
}
