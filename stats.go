package main

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/ledgertui/ledger"
)

// entryStats summarizes the currently loaded page of entries, not the whole
// data set.
type entryStats struct {
	count   int
	total   decimal.Decimal
	average decimal.Decimal
	// averageDefined is false for an empty page. decimal carries no NaN, so
	// the undefined average is an explicit state instead.
	averageDefined bool
}

func newEntryStats(entries []ledger.AccountEntry) entryStats {
	s := entryStats{count: len(entries)}

	for _, e := range entries {
		s.total = s.total.Add(e.Value)
	}

	if s.count > 0 {
		s.average = s.total.Div(decimal.NewFromInt(int64(s.count)))
		s.averageDefined = true
	}

	return s
}

func (s entryStats) totalDisplay() string {
	return displayUSD(s.total)
}

func (s entryStats) averageDisplay() string {
	if !s.averageDefined {
		return "n/a"
	}
	return displayUSD(s.average)
}

// displayUSD renders a decimal dollar amount with currency formatting.
func displayUSD(d decimal.Decimal) string {
	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}
