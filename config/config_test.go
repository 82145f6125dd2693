package config

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "set value",
			value:    "http://localhost:8080",
			expected: "http://localhost:8080",
		},
		{
			name:     "empty value",
			value:    "",
			expected: "(not set)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := displayValue(tt.value)
			be.Equal(t, tt.expected, result)
		})
	}
}

func TestSetConfig(t *testing.T) {
	// Test that SetConfig properly sets up the table rows
	m := New()
	testConfig := Config{
		Debug:    true,
		BaseURL:  "http://localhost:8080",
		PageSize: 50,
	}

	m.SetConfig(testConfig)

	if m.configTable.Rows() == nil {
		t.Error("Expected config table to have rows after SetConfig")
	}
	be.Equal(t, 3, len(m.configTable.Rows()))
}
