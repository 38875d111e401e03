package triples

import (
	"math"
	"strconv"
)

// ID identifies a term in the triple store.
type ID uint64

// None is the distinguished "no value" identifier. It marks unbound
// positions and exhausted searches, and is never a valid term.
const None ID = math.MaxUint64

// IsNone reports whether id is the None sentinel.
func (id ID) IsNone() bool {
	return id == None
}

func (id ID) String() string {
	if id == None {
		return "none"
	}
	return strconv.FormatUint(uint64(id), 10)
}

// Var identifies a query variable.
type Var uint32

func (v Var) String() string {
	return "?" + strconv.FormatUint(uint64(v), 10)
}
