package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerbook/ledgertui/grid"
	"github.com/ledgerbook/ledgertui/ledger"
)

const entryDateLayout = "2006-01-02"

// entryRowID maps an entry to its row identity, zero ID meaning unsaved.
func entryRowID(e ledger.AccountEntry) grid.RowID {
	if e.ID == 0 {
		return grid.UnsavedRow()
	}
	return grid.PersistedRow(e.ID)
}

func blankEntry() ledger.AccountEntry {
	return ledger.AccountEntry{}
}

func buildEntriesTable(theme Theme) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Value", Width: 14},
			{Title: "Name", Width: 30},
			{Title: "Account", Width: 20},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Background).
		Background(theme.Primary).
		Bold(false)
	t.SetStyles(s)

	return t
}

// refreshEntriesRows rebuilds the table rows and the page statistics from the
// controller state.
func (m *model) refreshEntriesRows() {
	entries := m.entries.Rows()
	rows := make([]table.Row, 0, len(entries))

	for _, e := range entries {
		id := entryRowID(e)
		date := ""
		if e.EntryDate != nil {
			date = e.EntryDate.Format(entryDateLayout)
		}
		rows = append(rows, table.Row{
			id.String(),
			displayUSD(e.Value),
			e.Name,
			e.AccountName,
			date,
		})
	}

	m.entriesTable.SetRows(rows)
	if cursor := m.entriesTable.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.entriesTable.SetCursor(len(rows) - 1)
	}

	m.entryStats = newEntryStats(entries)
}

// selectedEntry returns the entry under the table cursor.
func (m model) selectedEntry() (ledger.AccountEntry, bool) {
	entries := m.entries.Rows()
	cursor := m.entriesTable.Cursor()
	if cursor < 0 || cursor >= len(entries) {
		return ledger.AccountEntry{}, false
	}
	return entries[cursor], true
}

func updateEntriesView(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.create):
			if !m.entries.BeginCreate() {
				m.statusMsg = "Finish the new entry before adding another"
				return m, nil
			}
			m.refreshEntriesRows()
			m.entriesTable.SetCursor(len(m.entries.Rows()) - 1)
			return m.openEntryForm(grid.UnsavedRow())

		case key.Matches(keyMsg, m.keys.edit):
			entry, ok := m.selectedEntry()
			if !ok {
				return m, nil
			}
			id := entryRowID(entry)
			if id.Unsaved() || m.entries.BeginEdit(id) {
				return m.openEntryForm(id)
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.remove):
			entry, ok := m.selectedEntry()
			if !ok {
				return m, nil
			}
			id := entryRowID(entry)
			if id.Unsaved() {
				m.entries.Cancel(id)
				m.refreshEntriesRows()
				return m, nil
			}
			if !m.entries.TryAcquire(id) {
				m.statusMsg = "A request for this entry is still in flight"
				return m, nil
			}
			m.entries.StartFetch()
			return m, m.deleteEntry(id)

		case key.Matches(keyMsg, m.keys.nextPage):
			meta := m.entries.Meta()
			if m.entryQuery.page+1 < meta.TotalPages {
				m.entryQuery.page++
				m.entries.StartFetch()
				return m, m.getEntriesPage
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.prevPage):
			if m.entryQuery.page > 0 {
				m.entryQuery.page--
				m.entries.StartFetch()
				return m, m.getEntriesPage
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.sortField):
			m.entryQuery.sort = nextSortField(m.entryQuery.sort)
			m.entries.StartFetch()
			return m, m.getEntriesPage

		case key.Matches(keyMsg, m.keys.sortDir):
			if m.entryQuery.direction == "ASC" {
				m.entryQuery.direction = "DESC"
			} else {
				m.entryQuery.direction = "ASC"
			}
			m.entries.StartFetch()
			return m, m.getEntriesPage
		}
	}

	var cmd tea.Cmd
	m.entriesTable, cmd = m.entriesTable.Update(msg)
	return m, cmd
}

func nextSortField(current string) string {
	for i, f := range entrySortFields {
		if f == current {
			return entrySortFields[(i+1)%len(entrySortFields)]
		}
	}
	return entrySortFields[0]
}
