package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	accounts  key.Binding
	entries   key.Binding
	config    key.Binding
	refresh   key.Binding
	create    key.Binding
	edit      key.Binding
	remove    key.Binding
	nextPage  key.Binding
	prevPage  key.Binding
	sortField key.Binding
	sortDir   key.Binding
	escape    key.Binding
	fullHelp  key.Binding
	quit      key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.accounts,
		km.entries,
		km.create,
		km.edit,
		km.remove,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.accounts,
			km.entries,
			km.config,
			km.refresh,
			km.quit,
			km.fullHelp,
		},
		{
			km.create,
			km.edit,
			km.remove,
			km.escape,
		},
		{
			km.prevPage,
			km.nextPage,
			km.sortField,
			km.sortDir,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		accounts: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "accounts"),
		),
		entries: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "entries"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new row"),
		),
		edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit row"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete row"),
		),
		nextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		prevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous page"),
		),
		sortField: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort field"),
		),
		sortDir: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "sort direction"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
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
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// the edit form owns the keyboard; ctrl+c still quits
	if m.sessionState == editRow {
		if k == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(m)
	}

	if m.sessionState == loading || m.sessionState == errorState {
		return m, nil
	}

	return handleSessionStateKeys(msg, m)
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.accounts):
		if m.sessionState != accountsView {
			m.previousSessionState = m.sessionState
			m.sessionState = accountsView
			m.statusMsg = ""
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.entries):
		if m.sessionState != entriesView {
			m.previousSessionState = m.sessionState
			m.sessionState = entriesView
			m.statusMsg = ""
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.config):
		if m.sessionState != configView {
			m.previousSessionState = m.sessionState
			m.configView.SetFocus(true)
			m.sessionState = configView
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.refresh):
		m.entries.StartFetch()
		m.accounts.StartFetch()
		return m, m.refreshAll

	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, tea.WindowSize()
	}

	return m, nil
}

// handleEscape returns to the previous view, or the entries view as home.
func handleEscape(m *model) (tea.Model, tea.Cmd) {
	if m.sessionState == configView {
		m.configView.SetFocus(false)
	}

	if m.sessionState == entriesView {
		return m, nil
	}

	m.previousSessionState = m.sessionState
	m.sessionState = entriesView
	return m, tea.WindowSize()
}
