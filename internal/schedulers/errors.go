package schedulers

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *ValidationError through errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIterationBudgetExceeded is returned when a run takes more scheduling
	// decisions than Options.MaxIterations allows.
	ErrIterationBudgetExceeded = errors.New("iteration budget exceeded")
)

// ValidationError reports a rejected input field. Index is the offending element
// of a list field, or -1 when the whole field is at fault.
type ValidationError struct {
	Field  string
	Index  int
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid %s[%d] %q: %s", e.Field, e.Index, e.Value, e.Reason)
	}
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
