package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ledgerbook/ledgertui/config"
	"github.com/ledgerbook/ledgertui/grid"
	"github.com/ledgerbook/ledgertui/ledger"
)

type entityKind int

const (
	accountEntity entityKind = iota
	entryEntity
)

// entryQuery is the paging and sorting state sent to the server for the
// account entry collection.
type entryQuery struct {
	page      int
	size      int
	sort      string
	direction string
}

// entrySortFields is the cycle order for the sort field key.
var entrySortFields = []string{"id", "value", "name", "entryDate"}

// editTarget identifies the row an open edit form belongs to.
type editTarget struct {
	kind entityKind
	id   grid.RowID
}

type model struct {
	loadingSpinner spinner.Model

	keys keyMap
	help help.Model

	theme  Theme
	styles styles

	sessionState sessionState
	// previousSessionState is the state before the current one, used for
	// returning from the edit form and the config view
	previousSessionState sessionState
	loadingState         loadingState

	cfg        config.Config
	configView config.Model

	// lgc is the ledgerbook API client
	lgc *ledger.Client

	// accounts holds the whole account collection, paginated client side
	accounts *grid.Controller[ledger.Account]
	// entries holds one server page of account entries
	entries *grid.Controller[ledger.AccountEntry]

	accountsTable table.Model
	entriesTable  table.Model

	entryQuery entryQuery
	entryStats entryStats

	editForm *huh.Form
	editing  editTarget

	statusMsg string
	errMsg    string
}

func newModel(cfg config.Config, client *ledger.Client) model {
	theme := newTheme(cfg.Colors)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}

	m := model{
		loadingSpinner:       s,
		keys:                 initializeKeyMap(),
		help:                 createHelpModel(theme),
		theme:                theme,
		styles:               createStyles(theme),
		sessionState:         loading,
		previousSessionState: entriesView,
		loadingState:         newLoadingState("accounts", "entries"),
		cfg:                  cfg,
		configView:           config.New(),
		lgc:                  client,
		accounts:             grid.New(accountRowID, blankAccount, "accountName"),
		entries:              grid.New(entryRowID, blankEntry, "value"),
		accountsTable:        buildAccountsTable(theme),
		entriesTable:         buildEntriesTable(theme),
		entryQuery: entryQuery{
			page:      0,
			size:      pageSize,
			sort:      "id",
			direction: "DESC",
		},
	}
	m.configView.SetConfig(cfg)

	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.loadingSpinner.Tick,
		m.getAccounts,
		m.getEntriesPage,
	)
}

// checkIfLoading reports which state the model should be in with respect to
// the initial data load.
func (m model) checkIfLoading() sessionState {
	if ok, pending := m.loadingState.allLoaded(); !ok {
		log.Debug("still loading", "pending", pending)
		return loading
	}

	if m.sessionState == loading {
		return entriesView
	}

	return m.sessionState
}

func rootAction(ctx context.Context, cfg config.Config, client *ledger.Client) error {
	m := newModel(cfg, client)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}

func main() {
	Execute()
}
