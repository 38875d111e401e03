package join

import (
	"fmt"

	"github.com/wangTheTiger/new-ring/internal/errors"
	"github.com/wangTheTiger/new-ring/internal/triples"
)

// Query is a conjunction of triple patterns. Order is the global variable
// order the join binds variables in; it must list every variable of the
// patterns exactly once.
type Query struct {
	Patterns []triples.Pattern
	Order    []triples.Var
}

// Validate returns ErrEmptyQuery, a *PatternError wrapping ErrReservedID,
// or ErrDuplicateVariable, ErrUnknownVariable or ErrUnorderedVariable
// wrapped with the offending variable.
func (q *Query) Validate() error {
	if len(q.Patterns) == 0 {
		return errors.ErrEmptyQuery
	}
	mentioned := make(map[triples.Var]bool)
	for i := range q.Patterns {
		p := &q.Patterns[i]
		if err := p.Validate(); err != nil {
			pe := *err.(*errors.PatternError)
			pe.Index = i
			return &pe
		}
		for _, v := range p.Variables() {
			mentioned[v] = true
		}
	}
	ordered := make(map[triples.Var]bool, len(q.Order))
	for _, v := range q.Order {
		switch {
		case ordered[v]:
			return fmt.Errorf("%w: %s", errors.ErrDuplicateVariable, v)
		case !mentioned[v]:
			return fmt.Errorf("%w: %s", errors.ErrUnknownVariable, v)
		}
		ordered[v] = true
	}
	for v := range mentioned {
		if !ordered[v] {
			return fmt.Errorf("%w: %s", errors.ErrUnorderedVariable, v)
		}
	}
	return nil
}
