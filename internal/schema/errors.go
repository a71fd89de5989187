package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Issue describes one failing field of a payload.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned by every Parse function when the payload is rejected.
// It lists each failing field, sorted by field name.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = fmt.Sprintf("%s: %s", issue.Field, issue.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasField reports whether any issue names the given field.
func (e *ValidationError) HasField(field string) bool {
	for _, issue := range e.Issues {
		if issue.Field == field {
			return true
		}
	}
	return false
}

func newValidationError(issues []Issue) *ValidationError {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Field != issues[j].Field {
			return issues[i].Field < issues[j].Field
		}
		return issues[i].Reason < issues[j].Reason
	})
	return &ValidationError{Issues: issues}
}
