package ltj

import (
	"github.com/wangTheTiger/new-ring/internal/invariants"
	"github.com/wangTheTiger/new-ring/internal/logger"
	"github.com/wangTheTiger/new-ring/internal/ring"
	"github.com/wangTheTiger/new-ring/internal/triples"
)

// Index answers navigation queries over the six orders of a triple store.
// A range passed to Narrow, Min, Seek or Enumerate at some depth must be a
// block of order o whose first depth columns are fixed. Implementations
// must allow concurrent readers if iterators run in parallel.
type Index interface {
	// Open returns the range covering all rows of order o.
	Open(o triples.Order) ring.Range

	// Narrow returns the rows of r whose column depth equals v.
	Narrow(r ring.Range, o triples.Order, depth int, v triples.ID) ring.Range

	// Min returns the smallest value of column depth in r, or triples.None.
	Min(r ring.Range, o triples.Order, depth int) triples.ID

	// Seek returns the smallest value of column depth in r that is greater
	// than or equal to c, or triples.None.
	Seek(r ring.Range, o triples.Order, depth int, c triples.ID) triples.ID

	// Enumerate returns the distinct values of column depth in r in
	// ascending order.
	Enumerate(r ring.Range, o triples.Order, depth int) []triples.ID
}

var _ Index = (*ring.Ring)(nil)

// Iterator is a trie view of one triple pattern over an Index. Variables
// of the pattern are bound with Down and unbound with Up, one trie level
// at a time. Down and Up must nest like a stack: Up undoes the most
// recent Down that is still in effect. Only one level of range state is
// kept per axis; that is enough because the trie is exactly three levels
// deep.
//
// Iterators are not safe for concurrent use.
type Iterator struct {
	pattern *triples.Pattern
	index   Index
	log     logger.Logger

	cur    [triples.NumAxes]triples.ID
	ranges [triples.NumAxes]ring.Range
	empty  bool

	// Positions bound by Down, kept only with invariants enabled.
	trail  [triples.NumAxes]triples.Axis
	ntrail int
}

// New creates an iterator of pattern p over idx, resolving the constants
// of p. If they can't co-occur, the iterator is empty and must not be
// queried. A nil log disables dispatch tracing.
func New(p *triples.Pattern, idx Index, log logger.Logger) *Iterator {
	it := &Iterator{pattern: p, index: idx, log: log}
	for _, a := range triples.Axes {
		it.cur[a] = triples.None
		it.ranges[a] = idx.Open(triples.Primary(a))
	}
	mask := 0
	for _, a := range triples.Axes {
		if !p.Term(a).IsVariable() {
			mask |= 1 << a
		}
	}
	for _, a := range resolution[mask] {
		c := p.Term(a).ID()
		if it.seek(a, c) != c {
			it.empty = true
			return it
		}
		it.bind(a, c)
	}
	return it
}

// Pattern returns the pattern this iterator walks.
func (it *Iterator) Pattern() *triples.Pattern {
	return it.pattern
}

// Empty reports whether the constants of the pattern have no match.
func (it *Iterator) Empty() bool {
	return it.empty
}

// Binding returns the value bound at axis a, or triples.None.
func (it *Iterator) Binding(a triples.Axis) triples.ID {
	return it.cur[a]
}

// Range returns the current range of axis a. Two axes not yet told apart
// by a binding hold equal ranges.
func (it *Iterator) Range(a triples.Axis) ring.Range {
	return it.ranges[a]
}

// Bound returns the number of bound positions, constants included.
func (it *Iterator) Bound() int {
	n := 0
	for _, v := range it.cur {
		if v != triples.None {
			n++
		}
	}
	return n
}

func (it *Iterator) bound(a triples.Axis) bool {
	return it.cur[a] != triples.None
}

func (it *Iterator) contextOf(x triples.Axis) context {
	y, z := x.Others()
	var ctx context
	if it.bound(y) {
		ctx |= firstBound
	}
	if it.bound(z) {
		ctx |= secondBound
	}
	return ctx
}

// free returns the first unbound position referring to v.
func (it *Iterator) free(v triples.Var) (triples.Axis, bool) {
	for _, a := range triples.Axes {
		if it.pattern.Term(a).Is(v) && !it.bound(a) {
			return a, true
		}
	}
	return 0, false
}

// held returns the last bound position referring to v.
func (it *Iterator) held(v triples.Var) (triples.Axis, bool) {
	for i := triples.NumAxes - 1; i >= 0; i-- {
		a := triples.Axes[i]
		if it.pattern.Term(a).Is(v) && it.bound(a) {
			return a, true
		}
	}
	return 0, false
}

func (it *Iterator) trace(name string) {
	if it.log != nil {
		it.log.Debugf("ring: %s", name)
	}
}

func (it *Iterator) checkUsable() {
	if invariants.Enabled && it.empty {
		panic("ring: use of empty iterator")
	}
}
