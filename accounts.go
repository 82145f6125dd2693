package main

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ledgerbook/ledgertui/grid"
	"github.com/ledgerbook/ledgertui/ledger"
)

var titleCaser = cases.Title(language.English)

// accountRowID maps an account to its row identity. The server assigns
// positive IDs, so zero marks the not-yet-persisted row.
func accountRowID(a ledger.Account) grid.RowID {
	if a.ID == 0 {
		return grid.UnsavedRow()
	}
	return grid.PersistedRow(a.ID)
}

func blankAccount() ledger.Account {
	return ledger.Account{AccountType: "checking"}
}

func buildAccountsTable(theme Theme) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Account Name", Width: 30},
			{Title: "Account ID", Width: 16},
			{Title: "Type", Width: 12},
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

// refreshAccountsRows rebuilds the table rows from the controller state.
func (m *model) refreshAccountsRows() {
	accounts := m.accounts.Rows()
	rows := make([]table.Row, 0, len(accounts))

	for _, a := range accounts {
		id := accountRowID(a)
		rows = append(rows, table.Row{
			id.String(),
			a.AccountName,
			a.AccountID,
			titleCaser.String(a.AccountType),
		})
	}

	m.accountsTable.SetRows(rows)
	if cursor := m.accountsTable.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.accountsTable.SetCursor(len(rows) - 1)
	}
}

// selectedAccount returns the account under the table cursor.
func (m model) selectedAccount() (ledger.Account, bool) {
	accounts := m.accounts.Rows()
	cursor := m.accountsTable.Cursor()
	if cursor < 0 || cursor >= len(accounts) {
		return ledger.Account{}, false
	}
	return accounts[cursor], true
}

func updateAccountsView(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.create):
			if !m.accounts.BeginCreate() {
				m.statusMsg = "Finish the new account before adding another"
				return m, nil
			}
			m.refreshAccountsRows()
			m.accountsTable.SetCursor(len(m.accounts.Rows()) - 1)
			return m.openAccountForm(grid.UnsavedRow())

		case key.Matches(keyMsg, m.keys.edit):
			account, ok := m.selectedAccount()
			if !ok {
				return m, nil
			}
			id := accountRowID(account)
			if id.Unsaved() || m.accounts.BeginEdit(id) {
				return m.openAccountForm(id)
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.remove):
			account, ok := m.selectedAccount()
			if !ok {
				return m, nil
			}
			id := accountRowID(account)
			if id.Unsaved() {
				m.accounts.Cancel(id)
				m.refreshAccountsRows()
				return m, nil
			}
			if !m.accounts.TryAcquire(id) {
				m.statusMsg = "A request for this account is still in flight"
				return m, nil
			}
			m.accounts.StartFetch()
			return m, m.deleteAccount(id)
		}
	}

	var cmd tea.Cmd
	m.accountsTable, cmd = m.accountsTable.Update(msg)
	return m, cmd
}

func formatRowCount(n int) string {
	if n == 1 {
		return "1 account"
	}
	return strconv.Itoa(n) + " accounts"
}
