package main

import (
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/ledgertui/ledger"
)

func TestNewEntryStats(t *testing.T) {
	entries := []ledger.AccountEntry{
		{ID: 1, Value: decimal.RequireFromString("10.50")},
		{ID: 2, Value: decimal.RequireFromString("-3.25")},
		{ID: 3, Value: decimal.RequireFromString("1.75")},
	}

	stats := newEntryStats(entries)

	be.Equal(t, 3, stats.count)
	be.True(t, stats.total.Equal(decimal.RequireFromString("9.00")))
	be.True(t, stats.averageDefined)
	be.True(t, stats.average.Equal(decimal.RequireFromString("3.00")))
}

func TestEntryStatsEmptyPage(t *testing.T) {
	stats := newEntryStats(nil)

	be.Equal(t, 0, stats.count)
	be.True(t, stats.total.IsZero())
	be.False(t, stats.averageDefined)
	be.Equal(t, "n/a", stats.averageDisplay())
	be.Equal(t, "$0.00", stats.totalDisplay())
}

func TestDisplayUSD(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "whole dollars", value: "12", want: "$12.00"},
		{name: "with cents", value: "12.34", want: "$12.34"},
		{name: "negative", value: "-5.50", want: "-$5.50"},
		{name: "rounds sub-cent", value: "1.005", want: "$1.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.want, displayUSD(decimal.RequireFromString(tt.value)))
		})
	}
}
