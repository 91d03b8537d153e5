// Package overview renders the campaign dashboard widget for fundtui.
package overview

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fundverse/fundtui/fv"
)

var titleCaser = cases.Title(language.English)

// Model holds the state for the overview widget.
type Model struct {
	Styles   Styles
	Viewport viewport.Model

	summary      Summary
	active       []*fv.CampaignCard
	ended        []*fv.CampaignCard
	campaignTree *tree.Tree
}

// Summary aggregates the monetary state of all known campaigns.
type Summary struct {
	totalRaised money.Money
	totalGoal   money.Money
}

// Styles customizes the widget's rendering.
type Styles struct {
	RaisedStyle   lipgloss.Style
	GoalStyle     lipgloss.Style
	TreeRootStyle lipgloss.Style
	StatusStyle   lipgloss.Style
	SummaryStyle  lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		RaisedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22ba46")),
		GoalStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd644")),
		TreeRootStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		StatusStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")),

		SummaryStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

// Option configures a Model.
type Option func(*Model)

// WithStyles overrides parts of the default styling. Zero-value styles
// keep their defaults.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		defaults := defaultStyles()
		if s.SummaryStyle.GetBorderStyle() == (lipgloss.Border{}) {
			s.SummaryStyle = defaults.SummaryStyle
		}
		m.Styles = s
	}
}

// New creates an overview model.
func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		summary: Summary{
			// zero values so the currency is set from the start
			totalRaised: *money.New(0, fv.CurrencyCode),
			totalGoal:   *money.New(0, fv.CurrencyCode),
		},
		campaignTree: tree.New(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.campaignTree.Root(m.Styles.TreeRootStyle.Render("Campaigns"))

	m.UpdateViewport()

	return m
}

// SetCampaigns replaces the campaign sets shown by the dashboard.
func (m *Model) SetCampaigns(active, ended []*fv.CampaignCard) {
	m.active = active
	m.ended = ended
	m.updateSummary()
	m.updateCampaignTree()
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

// UpdateViewport rebuilds the viewport content from the current state.
func (m *Model) UpdateViewport() {
	campaignTreeContent := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(m.campaignTree.String())

	categoryBreakdown := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(lipgloss.Top,
				lipgloss.NewStyle().Bold(true).Render("Raised by Category"),
				table.New(
					table.WithColumns([]table.Column{
						{Title: "Category", Width: 20},
						{Title: "Raised", Width: 20},
						{Title: "% of Total", Width: 10},
					}),
					table.WithRows(m.calculateCategoryBreakdown()),
				).View(),
			),
		)

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top,
		m.summaryView(),
		campaignTreeContent,
		categoryBreakdown,
	)

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.headerView(),
			mainContent,
		),
	)
}

func (m *Model) headerView() string {
	return fmt.Sprintf("Overview - %d active, %d ended", len(m.active), len(m.ended))
}

func (m Model) summaryView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Raised: %s\n", m.Styles.RaisedStyle.Render(m.summary.totalRaised.Display())))
	b.WriteString(fmt.Sprintf("Goal: %s\n", m.Styles.GoalStyle.Render(m.summary.totalGoal.Display())))

	progress := 0.0
	if m.summary.totalGoal.Amount() != 0 {
		progress = float64(m.summary.totalRaised.Amount()) / float64(m.summary.totalGoal.Amount()) * 100
	}
	b.WriteString(fmt.Sprintf("Progress: %.1f%%", progress))

	return m.Styles.SummaryStyle.Render(b.String())
}

func (m *Model) updateSummary() {
	totalRaised, totalGoal := money.New(0, fv.CurrencyCode), money.New(0, fv.CurrencyCode)

	for _, c := range m.allCampaigns() {
		totalRaised, _ = totalRaised.Add(fv.Money(c.AmountRaised))
		totalGoal, _ = totalGoal.Add(fv.Money(c.Goal))
	}

	m.summary = Summary{totalRaised: *totalRaised, totalGoal: *totalGoal}
}

// calculateCategoryBreakdown sums amount raised per category across
// all campaigns, as a share of the grand total.
func (m *Model) calculateCategoryBreakdown() []table.Row {
	totals := make(map[string]*money.Money)
	var order []string

	for _, c := range m.allCampaigns() {
		if _, exists := totals[c.Category]; !exists {
			totals[c.Category] = money.New(0, fv.CurrencyCode)
			order = append(order, c.Category)
		}
		totals[c.Category], _ = totals[c.Category].Add(fv.Money(c.AmountRaised))
	}

	grandTotal := m.summary.totalRaised.Amount()

	var rows []table.Row
	for _, category := range order {
		total := totals[category]
		percentage := 0.0
		if grandTotal != 0 {
			percentage = float64(total.Amount()) / float64(grandTotal) * 100
		}
		rows = append(rows, table.Row{
			titleCaser.String(category),
			total.Display(),
			fmt.Sprintf("%.2f%%", percentage),
		})
	}

	return rows
}

func (m *Model) updateCampaignTree() {
	m.campaignTree = tree.New().Root(m.Styles.TreeRootStyle.Render("Campaigns"))

	activeTree := tree.New().Root(m.Styles.StatusStyle.Render("Active"))
	for _, c := range m.active {
		activeTree.Child(fmt.Sprintf("%s: %s / %s",
			c.Title,
			fv.DisplayAmount(c.AmountRaised),
			fv.DisplayAmount(c.Goal),
		))
	}

	endedTree := tree.New().Root(m.Styles.StatusStyle.Render("Ended"))
	for _, c := range m.ended {
		endedTree.Child(fmt.Sprintf("%s: %s raised",
			c.Title,
			fv.DisplayAmount(c.AmountRaised),
		))
	}

	m.campaignTree.Child(activeTree)
	m.campaignTree.Child(endedTree)
}

func (m *Model) allCampaigns() []*fv.CampaignCard {
	all := make([]*fv.CampaignCard, 0, len(m.active)+len(m.ended))
	all = append(all, m.active...)
	all = append(all, m.ended...)
	return all
}
