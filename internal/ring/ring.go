package ring

import (
	"sort"

	"github.com/wangTheTiger/new-ring/internal/errors"
	"github.com/wangTheTiger/new-ring/internal/triples"
)

type columns [triples.NumAxes][]triples.ID

// Ring keeps every triple sorted under each of the six orders, stored
// column wise. It is immutable once built, and safe for concurrent readers.
type Ring struct {
	n    int
	cols [triples.NumOrders]columns
}

// New builds a ring over ts. Duplicated triples are stored once. Triples
// holding triples.None are rejected with ErrReservedID.
func New(ts []triples.Triple) (*Ring, error) {
	for _, t := range ts {
		if !t.Valid() {
			return nil, errors.ErrReservedID
		}
	}
	rows := make([]triples.Triple, len(ts))
	copy(rows, ts)
	r := &Ring{}
	for o := triples.Order(0); o < triples.NumOrders; o++ {
		order := o
		sort.Slice(rows, func(i, j int) bool {
			return triples.Compare(order, rows[i], rows[j]) < 0
		})
		if o == 0 {
			rows = dedup(rows)
			r.n = len(rows)
		}
		var cols columns
		for c := range cols {
			cols[c] = make([]triples.ID, len(rows))
		}
		for i, t := range rows {
			ids := t.Permute(order)
			for c, id := range ids {
				cols[c][i] = id
			}
		}
		r.cols[o] = cols
	}
	return r, nil
}

func dedup(sorted []triples.Triple) []triples.Triple {
	if len(sorted) == 0 {
		return sorted
	}
	n := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[n-1] {
			sorted[n] = sorted[i]
			n++
		}
	}
	return sorted[:n]
}

// Len returns the number of distinct triples.
func (r *Ring) Len() int {
	return r.n
}

// Triples returns all triples in SPO order.
func (r *Ring) Triples() []triples.Triple {
	cols := &r.cols[triples.SPO]
	ts := make([]triples.Triple, r.n)
	for i := range ts {
		ts[i] = triples.Triple{S: cols[0][i], P: cols[1][i], O: cols[2][i]}
	}
	return ts
}

// Contains reports whether t is stored.
func (r *Ring) Contains(t triples.Triple) bool {
	rg := r.Open(triples.SPO)
	rg = r.Narrow(rg, triples.SPO, 0, t.S)
	rg = r.Narrow(rg, triples.SPO, 1, t.P)
	rg = r.Narrow(rg, triples.SPO, 2, t.O)
	return !rg.Empty()
}

// Open returns the range covering every row of order o.
func (r *Ring) Open(o triples.Order) Range {
	return Range{Order: o, Start: 0, Limit: r.n}
}

// column returns the rows of rg in column depth of order o. The values are
// sorted as long as rg fixes every column before depth.
func (r *Ring) column(rg Range, o triples.Order, depth int) []triples.ID {
	if rg.Empty() {
		return nil
	}
	return r.cols[o][depth][rg.Start:rg.Limit]
}

// Narrow returns the rows of rg whose column depth in order o equals v.
// rg must be a block of o whose first depth columns are fixed.
func (r *Ring) Narrow(rg Range, o triples.Order, depth int, v triples.ID) Range {
	col := r.column(rg, o, depth)
	lo := sort.Search(len(col), func(i int) bool { return col[i] >= v })
	hi := lo + sort.Search(len(col)-lo, func(i int) bool { return col[lo+i] > v })
	return Range{Order: o, Start: rg.Start + lo, Limit: rg.Start + hi}
}

// Min returns the smallest value of column depth within rg, or None.
func (r *Ring) Min(rg Range, o triples.Order, depth int) triples.ID {
	col := r.column(rg, o, depth)
	if len(col) == 0 {
		return triples.None
	}
	return col[0]
}

// Seek returns the smallest value of column depth within rg that is
// greater than or equal to c, or None.
func (r *Ring) Seek(rg Range, o triples.Order, depth int, c triples.ID) triples.ID {
	col := r.column(rg, o, depth)
	i := sort.Search(len(col), func(i int) bool { return col[i] >= c })
	if i == len(col) {
		return triples.None
	}
	return col[i]
}

// Enumerate returns the distinct values of column depth within rg in
// ascending order.
func (r *Ring) Enumerate(rg Range, o triples.Order, depth int) []triples.ID {
	col := r.column(rg, o, depth)
	var values []triples.ID
	for i, v := range col {
		if i == 0 || v != col[i-1] {
			values = append(values, v)
		}
	}
	return values
}
