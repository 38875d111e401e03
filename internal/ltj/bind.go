package ltj

import (
	"fmt"

	"github.com/wangTheTiger/new-ring/internal/invariants"
	"github.com/wangTheTiger/new-ring/internal/triples"
)

// Down binds the first unbound position referring to v to value, moving
// one level down the trie. value must occur at that position within the
// current ranges, as reported by Leap, Seek or SeekAll.
func (it *Iterator) Down(v triples.Var, value triples.ID) {
	it.checkUsable()
	x, ok := it.free(v)
	if !ok {
		if invariants.Enabled {
			panic(fmt.Sprintf("ring: down on %s without unbound position in %s", v, it.pattern))
		}
		return
	}
	it.bind(x, value)
	if invariants.Enabled {
		it.trail[it.ntrail] = x
		it.ntrail++
	}
}

// Up unbinds the last bound position referring to v, undoing the range
// changes of the matching Down.
func (it *Iterator) Up(v triples.Var) {
	it.checkUsable()
	x, ok := it.held(v)
	if !ok {
		if invariants.Enabled {
			panic(fmt.Sprintf("ring: up on %s without bound position in %s", v, it.pattern))
		}
		return
	}
	if invariants.Enabled {
		if it.ntrail == 0 || it.trail[it.ntrail-1] != x {
			panic(fmt.Sprintf("ring: up on %s out of down order in %s", v, it.pattern))
		}
		it.ntrail--
	}
	it.unbind(x)
}

// bind narrows the ranges of the axes left unbound once x holds value.
// Narrowing reads the range of x: with one other axis y bound it is the
// block of y's value, with none bound it is the full range.
func (it *Iterator) bind(x triples.Axis, value triples.ID) {
	y, z := x.Others()
	ctx := it.contextOf(x)
	it.trace(downNames[x][ctx])
	switch ctx {
	case bothBound:
		// The row is pinned and no deeper range exists.
	case firstBound:
		it.ranges[z] = it.index.Narrow(it.ranges[x], triples.OrderOf(y, x), 1, value)
	case secondBound:
		it.ranges[y] = it.index.Narrow(it.ranges[x], triples.OrderOf(z, x), 1, value)
	default:
		// y and z stay indistinguishable until one of them is bound.
		r := it.index.Narrow(it.ranges[x], triples.Primary(x), 0, value)
		it.ranges[y], it.ranges[z] = r, r
	}
	it.cur[x] = value
}

// unbind reverts bind for x, assuming x was the latest bound axis.
func (it *Iterator) unbind(x triples.Axis) {
	y, z := x.Others()
	ctx := it.contextOf(x)
	it.trace(upNames[x][ctx])
	switch ctx {
	case bothBound:
	case firstBound:
		it.ranges[z] = it.ranges[x]
	case secondBound:
		it.ranges[y] = it.ranges[x]
	default:
		it.ranges[y] = it.index.Open(triples.Primary(y))
		it.ranges[z] = it.index.Open(triples.Primary(z))
	}
	it.cur[x] = triples.None
}
