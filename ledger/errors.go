package ledger

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError is returned for 4xx responses. Fields maps each rejected
// field name to a human-readable message from the server.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)

	return "validation failed: " + strings.Join(parts, ", ")
}

// RequestError is returned for any non-success status outside the 4xx range.
// It carries no structured detail.
type RequestError struct {
	StatusCode int
	Status     string
}

func (e *RequestError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("request failed: %s", e.Status)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}
