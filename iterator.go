package ring

import "github.com/wangTheTiger/new-ring/internal/ltj"

// Iterator is a trie view of one triple pattern, walked one variable at
// a time by a join. Down and Up must nest like a stack. Leap and Seek
// return None when no value qualifies. All iterators returned from this
// package are not designed for concurrent usage.
type Iterator interface {
	// Empty reports whether the constants of the pattern have no match.
	// An empty iterator must not be navigated.
	Empty() bool

	// Down binds the next unbound position of v to value, which must
	// have been reported by Leap, Seek or SeekAll.
	Down(v Var, value ID)

	// Up undoes the most recent Down of v.
	Up(v Var)

	// Leap returns the smallest value v can take in the current context.
	Leap(v Var) ID

	// Seek returns the smallest value v can take that is equal to or
	// greater than c.
	Seek(v Var, c ID) ID

	// InLastLevel reports whether exactly one position is left unbound.
	InLastLevel() bool

	// SeekAll returns every value the last unbound position can take, in
	// ascending order. It panics unless InLastLevel reports true.
	SeekAll(v Var) []ID

	// Binding returns the value bound at axis a, or None.
	Binding(a Axis) ID

	// Bound returns the number of bound positions, constants included.
	Bound() int

	// Range returns the current range of axis a. Axes not yet told apart
	// by a binding report equal ranges.
	Range(a Axis) Range

	// Pattern returns the pattern the iterator walks.
	Pattern() *Pattern
}

var _ Iterator = (*ltj.Iterator)(nil)
