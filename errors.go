package ring

import "github.com/wangTheTiger/new-ring/internal/errors"

var (
	ErrReservedID        = errors.ErrReservedID // None used as a term
	ErrEmptyQuery        = errors.ErrEmptyQuery
	ErrUnorderedVariable = errors.ErrUnorderedVariable
	ErrUnknownVariable   = errors.ErrUnknownVariable
	ErrDuplicateVariable = errors.ErrDuplicateVariable
)

// PatternError locates an invalid pattern within a query.
type PatternError = errors.PatternError

// IsPattern returns a boolean indicating whether the error is a pattern error.
func IsPattern(err error) bool {
	return errors.IsPattern(err)
}
