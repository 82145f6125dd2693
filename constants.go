package main

const standardMargin = 2

// Output formats for CLI commands.
const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Session states
type sessionState int

const (
	loading sessionState = iota
	accountsView
	entriesView
	editRow
	configView
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case loading:
		return "loading"
	case accountsView:
		return "accounts"
	case entriesView:
		return "account entries"
	case editRow:
		return "edit"
	case configView:
		return "configuration"
	case errorState:
		return "error"
	}

	return "unknown"
}
