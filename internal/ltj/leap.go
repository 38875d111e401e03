package ltj

import "github.com/wangTheTiger/new-ring/internal/triples"

// Leap returns the smallest value the first unbound position referring
// to v takes within the current ranges, or triples.None if there is none
// or v is not in the pattern.
func (it *Iterator) Leap(v triples.Var) triples.ID {
	it.checkUsable()
	x, ok := it.free(v)
	if !ok {
		return triples.None
	}
	ctx := it.contextOf(x)
	it.trace(minNames[x][ctx])
	o, depth := it.view(x, ctx)
	return it.index.Min(it.ranges[x], o, depth)
}

// Seek is Leap restricted to values greater than or equal to c. A result
// equal to c tells c is present.
func (it *Iterator) Seek(v triples.Var, c triples.ID) triples.ID {
	it.checkUsable()
	x, ok := it.free(v)
	if !ok {
		return triples.None
	}
	return it.seek(x, c)
}

func (it *Iterator) seek(x triples.Axis, c triples.ID) triples.ID {
	ctx := it.contextOf(x)
	it.trace(seekNames[x][ctx])
	o, depth := it.view(x, ctx)
	return it.index.Seek(it.ranges[x], o, depth, c)
}

// InLastLevel reports whether exactly two positions are bound, so the
// range of the third lists final candidates directly.
func (it *Iterator) InLastLevel() bool {
	return it.Bound() == 2
}

// SeekAll returns, in ascending order, every value the unbound position
// referring to v takes. It panics unless the iterator is in its last level.
func (it *Iterator) SeekAll(v triples.Var) []triples.ID {
	it.checkUsable()
	if !it.InLastLevel() {
		panic("ring: seek all outside last level")
	}
	x, ok := it.free(v)
	if !ok {
		return nil
	}
	r := it.ranges[x]
	return it.index.Enumerate(r, r.Order, 2)
}
