package ring

import (
	"github.com/wangTheTiger/new-ring/internal/join"
	index "github.com/wangTheTiger/new-ring/internal/ring"
	"github.com/wangTheTiger/new-ring/internal/triples"
)

type (
	// ID identifies a term. None is reserved.
	ID = triples.ID

	// Var identifies a query variable.
	Var = triples.Var

	// Axis is one of Subject, Predicate or Object.
	Axis = triples.Axis

	Triple  = triples.Triple
	Term    = triples.Term
	Pattern = triples.Pattern

	// Range is a half-open span of rows in one column order, reported by
	// iterators for diagnostics.
	Range = index.Range

	// Query is a conjunction of patterns with the order its variables are
	// bound in.
	Query = join.Query
)

// None marks unbound positions and exhausted searches.
const None = triples.None

const (
	Subject   = triples.Subject
	Predicate = triples.Predicate
	Object    = triples.Object
)

// Const returns a pattern term fixed to id.
func Const(id ID) Term {
	return triples.Const(id)
}

// Variable returns a pattern term referring to v.
func Variable(v Var) Term {
	return triples.Variable(v)
}

func NewPattern(s, p, o Term) Pattern {
	return triples.NewPattern(s, p, o)
}
