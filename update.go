package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if mdl, cmd := handleKeyPress(keyMsg, &m); cmd != nil {
			return mdl, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case accountsPageMsg:
		return m.handleAccountsPage(msg)
	case entriesPageMsg:
		return m.handleEntriesPage(msg)
	case refreshMsg:
		return m.handleRefresh(msg)
	case accountSavedMsg:
		return m.handleAccountSaved(msg)
	case entrySavedMsg:
		return m.handleEntrySaved(msg)
	case accountDeletedMsg:
		return m.handleAccountDeleted(msg)
	case entryDeletedMsg:
		return m.handleEntryDeleted(msg)
	case saveFailedMsg:
		return m.handleSaveFailed(msg)
	case deleteFailedMsg:
		return m.handleDeleteFailed(msg)
	case apiErrorMsg:
		return m.handleAPIError(msg)
	}

	switch m.sessionState {
	case accountsView:
		return updateAccountsView(msg, m)
	case entriesView:
		return updateEntriesView(msg, m)
	case editRow:
		return updateEditRow(msg, m)
	case configView:
		var cmd tea.Cmd
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd
	}

	return m, nil
}
