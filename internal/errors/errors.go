package errors

import (
	"errors"
	"fmt"
)

var (
	ErrReservedID        = errors.New("ring: reserved identifier")
	ErrEmptyQuery        = errors.New("ring: query has no patterns")
	ErrUnorderedVariable = errors.New("ring: variable missing from query order")
	ErrUnknownVariable   = errors.New("ring: ordered variable not in any pattern")
	ErrDuplicateVariable = errors.New("ring: variable ordered twice")
)

// PatternError reports a problem with one pattern of a query. Index is
// the position of the pattern in its query, or -1 for a lone pattern.
type PatternError struct {
	Err   error
	Index int
	Axis  string
}

func (e *PatternError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("ring: pattern %s: %s", e.Axis, e.Err)
	}
	return fmt.Sprintf("ring: pattern %d %s: %s", e.Index, e.Axis, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsPattern returns a boolean indicating whether the error is a pattern error.
func IsPattern(err error) bool {
	var pe *PatternError
	return errors.As(err, &pe)
}
