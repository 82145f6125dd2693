package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ledgerbook/ledgertui/grid"
	"github.com/ledgerbook/ledgertui/ledger"
)

type (
	// accountsPageMsg carries the whole account collection
	accountsPageMsg struct {
		page *ledger.Pageable[ledger.Account]
	}
	// entriesPageMsg carries one server page of account entries
	entriesPageMsg struct {
		page *ledger.Pageable[ledger.AccountEntry]
	}
	// refreshMsg carries both collections fetched in parallel
	refreshMsg struct {
		accounts *ledger.Pageable[ledger.Account]
		entries  *ledger.Pageable[ledger.AccountEntry]
	}
	accountSavedMsg struct {
		id      grid.RowID
		account *ledger.Account
	}
	entrySavedMsg struct {
		id    grid.RowID
		entry *ledger.AccountEntry
	}
	accountDeletedMsg struct {
		id grid.RowID
	}
	entryDeletedMsg struct {
		id grid.RowID
	}
	saveFailedMsg struct {
		kind entityKind
		id   grid.RowID
		err  error
	}
	deleteFailedMsg struct {
		kind entityKind
		id   grid.RowID
		err  error
	}
	// apiErrorMsg is a failed read; writes report through the failed msgs.
	// The flags name the fetch counters the failed request was counted in.
	apiErrorMsg struct {
		err      error
		accounts bool
		entries  bool
	}
)

func (m model) getAccounts() tea.Msg {
	page, err := m.lgc.GetAccounts(context.Background())
	if err != nil {
		return apiErrorMsg{err: err, accounts: true}
	}

	return accountsPageMsg{page: page}
}

func (m model) getEntriesPage() tea.Msg {
	q := m.entryQuery
	filters := &ledger.EntryFilters{
		Page:      &q.page,
		Size:      &q.size,
		Sort:      &q.sort,
		Direction: &q.direction,
	}

	page, err := m.lgc.GetAccountEntries(context.Background(), filters)
	if err != nil {
		return apiErrorMsg{err: err, entries: true}
	}

	return entriesPageMsg{page: page}
}

// refreshAll fetches accounts and the current entry page concurrently.
func (m model) refreshAll() tea.Msg {
	ctx := context.Background()
	q := m.entryQuery

	var (
		accountsPage *ledger.Pageable[ledger.Account]
		entriesPage  *ledger.Pageable[ledger.AccountEntry]
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		accountsPage, err = m.lgc.GetAccounts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		entriesPage, err = m.lgc.GetAccountEntries(ctx, &ledger.EntryFilters{
			Page:      &q.page,
			Size:      &q.size,
			Sort:      &q.sort,
			Direction: &q.direction,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return apiErrorMsg{err: err, accounts: true, entries: true}
	}

	return refreshMsg{accounts: accountsPage, entries: entriesPage}
}

func (m model) saveAccount(id grid.RowID, account ledger.Account) tea.Cmd {
	return func() tea.Msg {
		var (
			saved *ledger.Account
			err   error
		)

		if id.Unsaved() {
			saved, err = m.lgc.CreateAccount(context.Background(), &account)
		} else {
			saved, err = m.lgc.UpdateAccount(context.Background(), &account)
		}
		if err != nil {
			return saveFailedMsg{kind: accountEntity, id: id, err: err}
		}

		return accountSavedMsg{id: id, account: saved}
	}
}

func (m model) saveEntry(id grid.RowID, entry ledger.AccountEntry) tea.Cmd {
	return func() tea.Msg {
		var (
			saved *ledger.AccountEntry
			err   error
		)

		if id.Unsaved() {
			saved, err = m.lgc.CreateAccountEntry(context.Background(), &entry)
		} else {
			saved, err = m.lgc.UpdateAccountEntry(context.Background(), &entry)
		}
		if err != nil {
			return saveFailedMsg{kind: entryEntity, id: id, err: err}
		}

		return entrySavedMsg{id: id, entry: saved}
	}
}

func (m model) deleteAccount(id grid.RowID) tea.Cmd {
	return func() tea.Msg {
		if err := m.lgc.DeleteAccount(context.Background(), id.Value()); err != nil {
			return deleteFailedMsg{kind: accountEntity, id: id, err: err}
		}

		return accountDeletedMsg{id: id}
	}
}

func (m model) deleteEntry(id grid.RowID) tea.Cmd {
	return func() tea.Msg {
		if err := m.lgc.DeleteAccountEntry(context.Background(), id.Value()); err != nil {
			return deleteFailedMsg{kind: entryEntity, id: id, err: err}
		}

		return entryDeletedMsg{id: id}
	}
}

func (m model) handleAccountsPage(msg accountsPageMsg) (tea.Model, tea.Cmd) {
	log.Debug("accounts loaded", "count", len(msg.page.Content))

	m.accounts.SetPage(msg.page.Content, msg.page.Page)
	m.accounts.EndFetch()
	m.loadingState.set("accounts")
	m.refreshAccountsRows()

	m.sessionState = m.checkIfLoading()
	return m, nil
}

func (m model) handleEntriesPage(msg entriesPageMsg) (tea.Model, tea.Cmd) {
	log.Debug("entries loaded",
		"count", len(msg.page.Content),
		"page", msg.page.Page.Number,
		"total", msg.page.Page.TotalElements,
	)

	m.entries.SetPage(msg.page.Content, msg.page.Page)
	m.entries.EndFetch()
	m.loadingState.set("entries")
	// the server's page number is authoritative, e.g. when a page past the
	// end was requested
	m.entryQuery.page = msg.page.Page.Number
	m.refreshEntriesRows()

	m.sessionState = m.checkIfLoading()
	return m, nil
}

func (m model) handleRefresh(msg refreshMsg) (tea.Model, tea.Cmd) {
	m.accounts.SetPage(msg.accounts.Content, msg.accounts.Page)
	m.accounts.EndFetch()
	m.entries.SetPage(msg.entries.Content, msg.entries.Page)
	m.entries.EndFetch()
	m.entryQuery.page = msg.entries.Page.Number
	m.refreshAccountsRows()
	m.refreshEntriesRows()

	m.statusMsg = "Refreshed"
	return m, nil
}

func (m model) handleAccountSaved(msg accountSavedMsg) (tea.Model, tea.Cmd) {
	if msg.id.Unsaved() {
		m.accounts.ApplyCreate(*msg.account)
	} else {
		m.accounts.ApplyUpdate(msg.id, *msg.account)
	}
	m.accounts.Release(msg.id)
	m.accounts.EndFetch()
	m.refreshAccountsRows()

	m.statusMsg = fmt.Sprintf("Saved account %q", msg.account.AccountName)
	return m, nil
}

func (m model) handleEntrySaved(msg entrySavedMsg) (tea.Model, tea.Cmd) {
	if msg.id.Unsaved() {
		m.entries.ApplyCreate(*msg.entry)
	} else {
		m.entries.ApplyUpdate(msg.id, *msg.entry)
	}
	m.entries.Release(msg.id)
	m.entries.EndFetch()
	m.refreshEntriesRows()

	m.statusMsg = fmt.Sprintf("Saved entry %q", msg.entry.Name)
	return m, nil
}

// handleSaveFailed keeps the row in edit mode: an unsaved row keeps the
// entered values, a persisted row shows its pre-edit values again.
func (m model) handleSaveFailed(msg saveFailedMsg) (tea.Model, tea.Cmd) {
	log.Debug("save failed", "kind", msg.kind, "row", msg.id, "error", msg.err)

	switch msg.kind {
	case accountEntity:
		m.accounts.Release(msg.id)
		m.accounts.EndFetch()
		if !msg.id.Unsaved() {
			m.accounts.RevertToSnapshot(msg.id)
		}
		m.refreshAccountsRows()
	case entryEntity:
		m.entries.Release(msg.id)
		m.entries.EndFetch()
		if !msg.id.Unsaved() {
			m.entries.RevertToSnapshot(msg.id)
		}
		m.refreshEntriesRows()
	}

	var ve *ledger.ValidationError
	if errors.As(msg.err, &ve) {
		m.statusMsg = ve.Error()
	} else {
		m.statusMsg = fmt.Sprintf("Save failed: %v", msg.err)
	}

	return m, nil
}

func (m model) handleAccountDeleted(msg accountDeletedMsg) (tea.Model, tea.Cmd) {
	m.accounts.Release(msg.id)
	m.accounts.EndFetch()
	m.accounts.Remove(msg.id)
	m.refreshAccountsRows()

	m.statusMsg = "Account deleted"
	return m, nil
}

func (m model) handleEntryDeleted(msg entryDeletedMsg) (tea.Model, tea.Cmd) {
	m.entries.Release(msg.id)
	m.entries.EndFetch()
	m.entries.Remove(msg.id)
	m.refreshEntriesRows()

	m.statusMsg = "Entry deleted"
	return m, nil
}

// handleDeleteFailed leaves the row in place.
func (m model) handleDeleteFailed(msg deleteFailedMsg) (tea.Model, tea.Cmd) {
	log.Debug("delete failed", "kind", msg.kind, "row", msg.id, "error", msg.err)

	switch msg.kind {
	case accountEntity:
		m.accounts.Release(msg.id)
		m.accounts.EndFetch()
	case entryEntity:
		m.entries.Release(msg.id)
		m.entries.EndFetch()
	}

	m.statusMsg = fmt.Sprintf("Delete failed: %v", msg.err)
	return m, nil
}

func (m model) handleAPIError(msg apiErrorMsg) (tea.Model, tea.Cmd) {
	log.Error("api request failed", "error", msg.err)

	if msg.accounts {
		m.accounts.EndFetch()
	}
	if msg.entries {
		m.entries.EndFetch()
	}

	if m.sessionState == loading {
		m.errMsg = msg.err.Error()
		m.sessionState = errorState
		return m, nil
	}

	m.statusMsg = fmt.Sprintf("Request failed: %v", msg.err)
	return m, nil
}

func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()
	width := msg.Width - h
	height := msg.Height - v - 8

	m.help.Width = width

	m.accountsTable.SetWidth(width)
	m.accountsTable.SetHeight(height)
	m.entriesTable.SetWidth(width)
	m.entriesTable.SetHeight(height)
	m.configView.SetSize(width, height)

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}
