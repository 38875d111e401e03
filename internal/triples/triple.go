package triples

import "fmt"

// Triple is a subject/predicate/object statement.
type Triple struct {
	S, P, O ID
}

// Get returns the identifier at axis a.
func (t Triple) Get(a Axis) ID {
	switch a {
	case Subject:
		return t.S
	case Predicate:
		return t.P
	}
	return t.O
}

// Permute returns the identifiers of t in the column order of o.
func (t Triple) Permute(o Order) [NumAxes]ID {
	axes := o.Axes()
	return [NumAxes]ID{t.Get(axes[0]), t.Get(axes[1]), t.Get(axes[2])}
}

// Valid reports whether no position holds the None sentinel.
func (t Triple) Valid() bool {
	return !t.S.IsNone() && !t.P.IsNone() && !t.O.IsNone()
}

func (t Triple) String() string {
	return fmt.Sprintf("(%s %s %s)", t.S, t.P, t.O)
}

// Compare orders a and b lexicographically under o.
func Compare(o Order, a, b Triple) int {
	for _, axis := range o.Axes() {
		x, y := a.Get(axis), b.Get(axis)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}
