package main

import (
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerbook/ledgertui/config"
)

func TestNewThemeDefaults(t *testing.T) {
	theme := newTheme(config.Colors{})

	be.Equal(t, lipgloss.Color("#ffd644"), theme.Primary)
	be.Equal(t, lipgloss.Color("#00ff00"), theme.Credit)
	be.Equal(t, lipgloss.Color("#ff0000"), theme.Debit)
	be.Equal(t, lipgloss.Color("#888888"), theme.SecondaryText)
}

func TestNewThemeOverrides(t *testing.T) {
	theme := newTheme(config.Colors{
		Primary: "#123456",
		Credit:  "46",
	})

	be.Equal(t, lipgloss.Color("#123456"), theme.Primary)
	be.Equal(t, lipgloss.Color("46"), theme.Credit)
	// untouched colors keep their defaults
	be.Equal(t, lipgloss.Color("#ff0000"), theme.Error)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     lipgloss.Color
	}{
		{name: "empty falls back", input: "", fallback: "#abcdef", want: lipgloss.Color("#abcdef")},
		{name: "hex passes through", input: "#ff00ff", fallback: "#abcdef", want: lipgloss.Color("#ff00ff")},
		{name: "ansi passes through", input: "21", fallback: "#abcdef", want: lipgloss.Color("21")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.want, parseColor(tt.input, tt.fallback))
		})
	}
}
