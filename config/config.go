// Package config holds the application configuration and a small table view
// for inspecting it inside the TUI.
package config

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug"`
	// BaseURL is the root of the ledgerbook API, e.g. http://localhost:8080
	BaseURL string `toml:"base_url"`
	// PageSize is the server page size for account entries
	PageSize int `toml:"page_size"`
	// Colors overrides the default theme
	Colors Colors `toml:"colors"`
}

// Colors are the configurable theme colors. Values are hex strings or ANSI
// codes; empty values fall back to the built-in defaults.
type Colors struct {
	Primary       string `toml:"primary"`
	Error         string `toml:"error"`
	Success       string `toml:"success"`
	Warning       string `toml:"warning"`
	Muted         string `toml:"muted"`
	Credit        string `toml:"credit"`
	Debit         string `toml:"debit"`
	Border        string `toml:"border"`
	Background    string `toml:"background"`
	Text          string `toml:"text"`
	SecondaryText string `toml:"secondary_text"`
}

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 50

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New() Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 20},
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

func displayValue(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
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
			"Base URL",
			displayValue(config.BaseURL),
			"Root of the ledgerbook API",
		},
		{
			"Page Size",
			strconv.Itoa(config.PageSize),
			"Server page size for account entries",
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
