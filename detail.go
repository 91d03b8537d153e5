package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fundverse/fundtui/fv"
)

// campaignDetailView renders a campaign joined with its idea.
func campaignDetailView(m model) string {
	if m.detail == nil {
		return "No campaign selected"
	}

	card := m.detail.Campaign
	idea := m.detail.Idea

	labelStyle := lipgloss.NewStyle().Foreground(m.theme.SecondaryText).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label),
			valueStyle.Render(value),
		)
	}

	timeLeft := fmt.Sprintf("%d days", card.DaysLeft)
	if card.Ended() {
		timeLeft = "ended"
	}

	rows := []string{
		m.styles.titleStyle.Render(card.Title),
		"",
		row("Campaign ID", fmt.Sprintf("%d", card.ID)),
		row("Category", card.Category),
		row("Raised", fv.DisplayAmount(card.AmountRaised)),
		row("Goal", fv.DisplayAmount(card.Goal)),
		row("Ends", time.Unix(card.EndDate, 0).UTC().Format("2006-01-02")),
		row("Time left", timeLeft),
		"",
		row("Idea ID", fmt.Sprintf("%d", card.IdeaID)),
		row("Legal entity", idea.LegalEntity),
		row("Contact", idea.ContactInfo),
	}

	if idea.Status != "" {
		rows = append(rows, row("Idea status", idea.Status))
	}

	rows = append(rows, "", valueStyle.Render(idea.Description))

	block := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, standardMargin).
		Render(block) + "\n\n" + labelStyle.Render("esc to go back")
}
