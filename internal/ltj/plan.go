package ltj

import "github.com/wangTheTiger/new-ring/internal/triples"

// context tells which of the two other axes of a target axis are bound.
// Bits follow the canonical order of Axis.Others.
type context uint8

const (
	noContext   context = 0
	firstBound  context = 1
	secondBound context = 2
	bothBound   context = firstBound | secondBound
)

// Primitive names of the dispatch tables, indexed by target axis and
// context. They only feed tracing.
var (
	minNames = [triples.NumAxes][4]string{
		triples.Subject:   {"min_S", "min_S_in_P", "min_S_in_O", "min_S_in_PO"},
		triples.Predicate: {"min_P", "min_P_in_S", "min_P_in_O", "min_P_in_SO"},
		triples.Object:    {"min_O", "min_O_in_S", "min_O_in_P", "min_O_in_SP"},
	}
	seekNames = [triples.NumAxes][4]string{
		triples.Subject:   {"next_S", "next_S_in_P", "next_S_in_O", "next_S_in_PO"},
		triples.Predicate: {"next_P", "next_P_in_S", "next_P_in_O", "next_P_in_SO"},
		triples.Object:    {"next_O", "next_O_in_S", "next_O_in_P", "next_O_in_SP"},
	}
	downNames = [triples.NumAxes][4]string{
		triples.Subject:   {"down_S", "down_P_S", "down_O_S", "down_PO_S"},
		triples.Predicate: {"down_P", "down_S_P", "down_O_P", "down_SO_P"},
		triples.Object:    {"down_O", "down_S_O", "down_P_O", "down_SP_O"},
	}
	upNames = [triples.NumAxes][4]string{
		triples.Subject:   {"up_S", "up_P_S", "up_O_S", "up_PO_S"},
		triples.Predicate: {"up_P", "up_S_P", "up_O_P", "up_SO_P"},
		triples.Object:    {"up_O", "up_S_O", "up_P_O", "up_SP_O"},
	}
)

const (
	constSubject   = 1 << triples.Subject
	constPredicate = 1 << triples.Predicate
	constObject    = 1 << triples.Object
)

// resolution lists, per set of constant positions, the order in which
// constants are looked up. Each order follows the S->P->O rotation so no
// lookup needs a range narrowed against the rotation.
var resolution = [8][]triples.Axis{
	constSubject:                                {triples.Subject},
	constPredicate:                              {triples.Predicate},
	constObject:                                 {triples.Object},
	constSubject | constPredicate:               {triples.Subject, triples.Predicate},
	constPredicate | constObject:                {triples.Predicate, triples.Object},
	constSubject | constObject:                  {triples.Object, triples.Subject},
	constSubject | constPredicate | constObject: {triples.Subject, triples.Predicate, triples.Object},
}

// view returns the order and column under which values of axis x are
// sorted inside its current range, given context ctx.
//
// With one other axis y bound, the range of x is the block of y's value,
// which has the same rows in both orders starting with y; the one
// continuing with x is used. With both bound, the range was narrowed in
// the order that produced it and x is its last column.
func (it *Iterator) view(x triples.Axis, ctx context) (triples.Order, int) {
	y, z := x.Others()
	switch ctx {
	case noContext:
		return triples.Primary(x), 0
	case firstBound:
		return triples.OrderOf(y, x), 1
	case secondBound:
		return triples.OrderOf(z, x), 1
	}
	return it.ranges[x].Order, 2
}
