package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/ledgertui/grid"
	"github.com/ledgerbook/ledgertui/ledger"
)

const (
	formKeyAccountName = "accountName"
	formKeyAccountID   = "accountId"
	formKeyAccountType = "accountType"

	formKeyValue     = "value"
	formKeyName      = "name"
	formKeyEntryAcct = "account"
	formKeyEntryDate = "entryDate"
)

var accountTypeOptions = []huh.Option[string]{
	huh.NewOption("Checking", "checking"),
	huh.NewOption("Savings", "savings"),
	huh.NewOption("Credit", "credit"),
	huh.NewOption("Investment", "investment"),
	huh.NewOption("Loan", "loan"),
}

// openAccountForm switches to the edit form for the given account row.
func (m model) openAccountForm(id grid.RowID) (tea.Model, tea.Cmd) {
	account, ok := m.accounts.Row(id)
	if !ok {
		return m, nil
	}

	m.editForm = newAccountForm(account)
	m.editing = editTarget{kind: accountEntity, id: id}
	m.previousSessionState = m.sessionState
	m.sessionState = editRow
	m.statusMsg = ""

	return m, m.editForm.Init()
}

// openEntryForm switches to the edit form for the given entry row.
func (m model) openEntryForm(id grid.RowID) (tea.Model, tea.Cmd) {
	entry, ok := m.entries.Row(id)
	if !ok {
		return m, nil
	}

	m.editForm = newEntryForm(entry, m.accounts.Rows())
	m.editing = editTarget{kind: entryEntity, id: id}
	m.previousSessionState = m.sessionState
	m.sessionState = editRow
	m.statusMsg = ""

	return m, m.editForm.Init()
}

func newAccountForm(account ledger.Account) *huh.Form {
	name := account.AccountName
	businessID := account.AccountID
	accountType := account.AccountType

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account Name").
				Description("Display name of the account").
				Key(formKeyAccountName).
				Value(&name),
			huh.NewInput().
				Title("Account ID").
				Description("External identifier, e.g. the bank's account number").
				Key(formKeyAccountID).
				Value(&businessID),
			huh.NewSelect[string]().
				Title("Account Type").
				Options(accountTypeOptions...).
				Key(formKeyAccountType).
				Value(&accountType),
		),
	)
}

func accountFromForm(form *huh.Form, id grid.RowID) ledger.Account {
	return ledger.Account{
		ID:          id.Value(),
		AccountName: strings.TrimSpace(form.GetString(formKeyAccountName)),
		AccountID:   strings.TrimSpace(form.GetString(formKeyAccountID)),
		AccountType: form.GetString(formKeyAccountType),
	}
}

func newEntryForm(entry ledger.AccountEntry, accounts []ledger.Account) *huh.Form {
	value := ""
	if !entry.Value.IsZero() || entryRowID(entry) != grid.UnsavedRow() {
		value = entry.Value.String()
	}
	name := entry.Name
	date := ""
	if entry.EntryDate != nil {
		date = entry.EntryDate.Format(entryDateLayout)
	}
	accountID := entry.AccountID

	options := make([]huh.Option[int64], 0, len(accounts))
	for _, a := range accounts {
		if accountRowID(a).Unsaved() {
			continue
		}
		options = append(options, huh.NewOption(a.AccountName, a.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Value").
				Description("Dollar amount, negative for debits").
				Key(formKeyValue).
				Value(&value).
				Validate(validateDecimal),
			huh.NewInput().
				Title("Name").
				Description("What the entry is for").
				Key(formKeyName).
				Value(&name),
			huh.NewSelect[int64]().
				Title("Account").
				Options(options...).
				Key(formKeyEntryAcct).
				Value(&accountID),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, leave empty for none").
				Key(formKeyEntryDate).
				Value(&date).
				Validate(validateOptionalDate),
		),
	)
}

func entryFromForm(form *huh.Form, id grid.RowID, accounts []ledger.Account) ledger.AccountEntry {
	value, _ := decimal.NewFromString(strings.TrimSpace(form.GetString(formKeyValue)))

	var entryDate *time.Time
	if s := strings.TrimSpace(form.GetString(formKeyEntryDate)); s != "" {
		if t, err := time.Parse(entryDateLayout, s); err == nil {
			entryDate = &t
		}
	}

	accountID, _ := form.Get(formKeyEntryAcct).(int64)
	accountName := ""
	for _, a := range accounts {
		if a.ID == accountID {
			accountName = a.AccountName
			break
		}
	}

	return ledger.AccountEntry{
		ID:          id.Value(),
		Value:       value,
		Name:        strings.TrimSpace(form.GetString(formKeyName)),
		EntryDate:   entryDate,
		AccountID:   accountID,
		AccountName: accountName,
	}
}

// validateDecimal only checks that the input parses; whether the value is
// acceptable is the server's call.
func validateDecimal(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	return nil
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(entryDateLayout, s); err != nil {
		return fmt.Errorf("not a date (YYYY-MM-DD): %q", s)
	}
	return nil
}

// updateEditRow drives the edit form. Escape cancels the edit before the form
// sees the key, so the row state machine always observes the cancellation.
func updateEditRow(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.cancelEdit()
		m.sessionState = m.previousSessionState
		return m, nil
	}

	form, cmd := m.editForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.editForm = f
	}

	switch m.editForm.State {
	case huh.StateCompleted:
		return m.submitEditForm()
	case huh.StateAborted:
		m.cancelEdit()
		m.sessionState = m.previousSessionState
		return m, nil
	}

	return m, cmd
}

// cancelEdit rolls the edited row back through the controller.
func (m *model) cancelEdit() {
	switch m.editing.kind {
	case accountEntity:
		m.accounts.Cancel(m.editing.id)
		m.refreshAccountsRows()
	case entryEntity:
		m.entries.Cancel(m.editing.id)
		m.refreshEntriesRows()
	}
	m.editForm = nil
}

// submitEditForm writes the entered values into the row, claims the per-row
// request slot and dispatches the save. The table shows the entered values
// while the request is in flight.
func (m model) submitEditForm() (tea.Model, tea.Cmd) {
	id := m.editing.id

	switch m.editing.kind {
	case accountEntity:
		entered := accountFromForm(m.editForm, id)
		if !m.accounts.TryAcquire(id) {
			m.statusMsg = "A save for this account is still in flight"
			m.sessionState = m.previousSessionState
			return m, nil
		}
		m.accounts.SetRow(id, entered)
		m.refreshAccountsRows()
		m.accounts.StartFetch()
		m.editForm = nil
		m.sessionState = m.previousSessionState
		return m, m.saveAccount(id, entered)

	case entryEntity:
		entered := entryFromForm(m.editForm, id, m.accounts.Rows())
		if !m.entries.TryAcquire(id) {
			m.statusMsg = "A save for this entry is still in flight"
			m.sessionState = m.previousSessionState
			return m, nil
		}
		m.entries.SetRow(id, entered)
		m.refreshEntriesRows()
		m.entries.StartFetch()
		m.editForm = nil
		m.sessionState = m.previousSessionState
		return m, m.saveEntry(id, entered)
	}

	m.sessionState = m.previousSessionState
	return m, nil
}
