package triples

import (
	"fmt"

	"github.com/wangTheTiger/new-ring/internal/errors"
)

// Term is one slot of a triple pattern: either a constant identifier or
// a reference to a variable.
type Term struct {
	value    uint64
	variable bool
}

// Const returns a constant term.
func Const(id ID) Term {
	return Term{value: uint64(id)}
}

// Variable returns a variable term.
func Variable(v Var) Term {
	return Term{value: uint64(v), variable: true}
}

func (t Term) IsVariable() bool { return t.variable }

// ID returns the constant of t. The behaviour is undefined if t is a variable.
func (t Term) ID() ID { return ID(t.value) }

// Var returns the variable of t. The behaviour is undefined if t is a constant.
func (t Term) Var() Var { return Var(t.value) }

// Is reports whether t is a reference to variable v.
func (t Term) Is(v Var) bool {
	return t.variable && Var(t.value) == v
}

func (t Term) String() string {
	if t.variable {
		return t.Var().String()
	}
	return t.ID().String()
}

// Pattern is a triple whose positions may be variables.
type Pattern struct {
	S, P, O Term
}

// NewPattern returns pattern (s p o).
func NewPattern(s, p, o Term) Pattern {
	return Pattern{S: s, P: p, O: o}
}

// Term returns the term at axis a.
func (p *Pattern) Term(a Axis) Term {
	switch a {
	case Subject:
		return p.S
	case Predicate:
		return p.P
	}
	return p.O
}

// Mentions reports whether v occurs in any position of p.
func (p *Pattern) Mentions(v Var) bool {
	return p.S.Is(v) || p.P.Is(v) || p.O.Is(v)
}

// Occurrences counts the positions of p referring to v.
func (p *Pattern) Occurrences(v Var) int {
	n := 0
	for _, a := range Axes {
		if p.Term(a).Is(v) {
			n++
		}
	}
	return n
}

// Variables returns the distinct variables of p in axis order.
func (p *Pattern) Variables() []Var {
	var vars []Var
	for _, a := range Axes {
		t := p.Term(a)
		if !t.IsVariable() {
			continue
		}
		seen := false
		for _, v := range vars {
			if v == t.Var() {
				seen = true
				break
			}
		}
		if !seen {
			vars = append(vars, t.Var())
		}
	}
	return vars
}

// Validate rejects patterns holding the None sentinel as a constant.
func (p *Pattern) Validate() error {
	for _, a := range Axes {
		if t := p.Term(a); !t.IsVariable() && t.ID().IsNone() {
			return &errors.PatternError{Index: -1, Axis: a.String(), Err: errors.ErrReservedID}
		}
	}
	return nil
}

func (p Pattern) String() string {
	return fmt.Sprintf("(%s %s %s)", p.S, p.P, p.O)
}
