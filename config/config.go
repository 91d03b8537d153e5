package config

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug"`
	// Endpoint is the FundVerse gateway URL
	Endpoint string `toml:"endpoint"`
	// Token is the gateway API token
	Token string `toml:"token"`
	// PayeePrincipal is the backend's custodial identity, the payee of
	// every contribution
	PayeePrincipal string `toml:"payee_principal"`
	// Name is the acting user's display name, sent on registration
	Name string `toml:"name"`
	// Email is the acting user's email, sent on registration
	Email string `toml:"email"`
	// Colors customizes the TUI theme
	Colors Colors `toml:"colors"`
}

// Colors holds the configurable theme colors. Values are hex strings
// or ANSI codes; empty values fall back to the built-in defaults.
type Colors struct {
	Primary       string `toml:"primary"`
	Error         string `toml:"error"`
	Success       string `toml:"success"`
	Warning       string `toml:"warning"`
	Muted         string `toml:"muted"`
	Raised        string `toml:"raised"`
	Goal          string `toml:"goal"`
	Border        string `toml:"border"`
	Background    string `toml:"background"`
	Text          string `toml:"text"`
	SecondaryText string `toml:"secondary_text"`
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New() Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 30},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#ffd644"))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func maskSensitiveValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + strings.Repeat("*", len(value)-4)
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	rows := []table.Row{
		{
			"Debug",
			strconv.FormatBool(config.Debug),
			"Enable debug logging",
		},
		{
			"Endpoint",
			config.Endpoint,
			"FundVerse gateway URL",
		},
		{
			"Token",
			maskSensitiveValue(config.Token),
			"Gateway API token",
		},
		{
			"Payee Principal",
			config.PayeePrincipal,
			"Custodial identity receiving contributions",
		},
		{
			"Name",
			config.Name,
			"Display name sent on user registration",
		},
		{
			"Email",
			config.Email,
			"Email sent on user registration",
		},
	}

	m.configTable.SetRows(rows)
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
