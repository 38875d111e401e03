package triples

import "fmt"

// Axis is one of the three positions of a triple.
type Axis int

const (
	Subject Axis = iota
	Predicate
	Object
)

// NumAxes is the number of positions in a triple, hence the depth of the trie.
const NumAxes = 3

// Axes lists all axes in canonical order.
var Axes = [NumAxes]Axis{Subject, Predicate, Object}

var others = [NumAxes][2]Axis{
	Subject:   {Predicate, Object},
	Predicate: {Subject, Object},
	Object:    {Subject, Predicate},
}

// Others returns the two axes other than a, in canonical order.
func (a Axis) Others() (Axis, Axis) {
	o := others[a]
	return o[0], o[1]
}

func (a Axis) String() string {
	switch a {
	case Subject:
		return "S"
	case Predicate:
		return "P"
	case Object:
		return "O"
	}
	return fmt.Sprintf("unknown axis: %d", int(a))
}
