package models

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed or missing field in incoming data.
// It is returned before any write is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NormalizeSymbol trims whitespace and uppercases a ticker symbol so that
// " aapl " and "AAPL" address the same rows.
func NormalizeSymbol(symbol string) (string, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(symbol))
	if cleaned == "" {
		return "", &ValidationError{Field: "symbol", Reason: "must not be empty"}
	}
	return cleaned, nil
}
