package config

import "fmt"

// Reason classifies why configuration resolution failed.
type Reason string

const (
	ReasonUnknownOption    Reason = "Unknown option"
	ReasonAssignment       Reason = "Assignment to option"
	ReasonMultipleValues   Reason = "Multiple values not allowed"
	ReasonInvalidValue     Reason = "Invalid value"
	ReasonNoSuchProfile    Reason = "No such profile"
	ReasonDuplicateProfile Reason = "Profile defined twice"
)

// Error reports a single unrecoverable resolution failure. Name is the
// offending option or profile name; Value carries the offending value for
// display when one is relevant. Resolution either succeeds completely or
// fails with exactly one Error.
type Error struct {
	Name   string
	Value  string
	Reason Reason
}

func (e *Error) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s = %s: %s", e.Name, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}
