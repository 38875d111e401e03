package triples

import "fmt"

// Order is one of the six total orders over triples. The name spells
// the column priority: SPO sorts by subject, then predicate, then object.
type Order int

const (
	SPO Order = iota
	SOP
	PSO
	POS
	OSP
	OPS
)

// NumOrders is the number of orders an index keeps.
const NumOrders = 6

var orderAxes = [NumOrders][NumAxes]Axis{
	SPO: {Subject, Predicate, Object},
	SOP: {Subject, Object, Predicate},
	PSO: {Predicate, Subject, Object},
	POS: {Predicate, Object, Subject},
	OSP: {Object, Subject, Predicate},
	OPS: {Object, Predicate, Subject},
}

var ordersByPrefix [NumAxes][NumAxes]Order

func init() {
	for o, axes := range orderAxes {
		ordersByPrefix[axes[0]][axes[1]] = Order(o)
	}
}

// Axes returns the columns of o from most to least significant.
func (o Order) Axes() [NumAxes]Axis {
	return orderAxes[o]
}

// Column returns the depth at which axis a is sorted in o.
func (o Order) Column(a Axis) int {
	for i, x := range orderAxes[o] {
		if x == a {
			return i
		}
	}
	panic(fmt.Sprintf("ring: axis %d not in order %d", int(a), int(o)))
}

func (o Order) String() string {
	if o < 0 || o >= NumOrders {
		return fmt.Sprintf("unknown order: %d", int(o))
	}
	axes := orderAxes[o]
	return axes[0].String() + axes[1].String() + axes[2].String()
}

// OrderOf returns the order sorting by first, then second. The two axes
// must differ.
func OrderOf(first, second Axis) Order {
	if first == second {
		panic("ring: order of a single axis")
	}
	return ordersByPrefix[first][second]
}

// Primary returns the order used for top level ranges of axis a. The
// primary orders rotate S->P->O, so each axis owns exactly one of them.
func Primary(a Axis) Order {
	switch a {
	case Subject:
		return SPO
	case Predicate:
		return POS
	}
	return OSP
}
