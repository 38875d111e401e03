package join

import (
	"context"

	"github.com/wangTheTiger/new-ring/internal/ltj"
	"github.com/wangTheTiger/new-ring/internal/options"
	"github.com/wangTheTiger/new-ring/internal/triples"
)

// level holds the iterators mentioning the variable bound at one depth
// of the join, with the number of positions it takes in each.
type level struct {
	v     triples.Var
	iters []*ltj.Iterator
	occur []int
}

type evaluator struct {
	ctx    context.Context
	levels []level
	tuple  []triples.ID
	trail  []*ltj.Iterator
	emit   func([]triples.ID) bool
	count  int
	err    error
}

// Evaluate runs the leapfrog triejoin of q over idx, calling emit with
// every result tuple in ascending lexicographic order of q.Order. The
// tuple is reused between calls. Evaluation stops early, without error,
// when emit returns false.
func Evaluate(ctx context.Context, idx ltj.Index, q *Query, opts *options.Options, emit func([]triples.ID) bool) error {
	if err := q.Validate(); err != nil {
		return err
	}
	log := opts.Logger
	iters := make([]*ltj.Iterator, len(q.Patterns))
	for i := range q.Patterns {
		it := ltj.New(&q.Patterns[i], idx, opts.TraceLogger())
		if it.Empty() {
			log.Debugf("ring: pattern %d %s has no match", i, q.Patterns[i])
			return nil
		}
		iters[i] = it
	}
	e := &evaluator{
		ctx:    ctx,
		levels: make([]level, len(q.Order)),
		tuple:  make([]triples.ID, len(q.Order)),
		emit:   emit,
	}
	for d, v := range q.Order {
		l := &e.levels[d]
		l.v = v
		for i, it := range iters {
			if n := q.Patterns[i].Occurrences(v); n != 0 {
				l.iters = append(l.iters, it)
				l.occur = append(l.occur, n)
			}
		}
	}
	log.Debugf("ring: join of %d patterns over %v", len(q.Patterns), q.Order)
	e.search(0)
	log.Debugf("ring: join emitted %d tuples", e.count)
	return e.err
}

// Count returns the number of result tuples of q.
func Count(ctx context.Context, idx ltj.Index, q *Query, opts *options.Options) (int, error) {
	n := 0
	err := Evaluate(ctx, idx, q, opts, func([]triples.ID) bool {
		n++
		return true
	})
	return n, err
}

// search enumerates bindings from depth d on. It returns false once
// evaluation must stop.
func (e *evaluator) search(d int) bool {
	if d == len(e.levels) {
		e.count++
		return e.emit(e.tuple)
	}
	if err := e.ctx.Err(); err != nil {
		e.err = err
		return false
	}
	l := &e.levels[d]
	if len(l.iters) == 1 && l.occur[0] == 1 && l.iters[0].InLastLevel() {
		for _, x := range l.iters[0].SeekAll(l.v) {
			if !e.descend(d, x) {
				return false
			}
		}
		return true
	}
	for c := e.first(l); c != triples.None; c = e.next(l, c+1) {
		if !e.descend(d, c) {
			return false
		}
	}
	return true
}

// first returns the smallest value all iterators of l agree on.
func (e *evaluator) first(l *level) triples.ID {
	c := triples.ID(0)
	for _, it := range l.iters {
		x := it.Leap(l.v)
		if x == triples.None {
			return triples.None
		}
		if x > c {
			c = x
		}
	}
	return e.next(l, c)
}

// next leapfrogs the iterators of l from c until they all land on the
// same value, returning it, or triples.None once one of them runs out.
func (e *evaluator) next(l *level, c triples.ID) triples.ID {
	n := len(l.iters)
	for p, agreed := 0, 0; agreed < n; p = (p + 1) % n {
		x := l.iters[p].Seek(l.v, c)
		switch {
		case x == triples.None:
			return triples.None
		case x == c:
			agreed++
		default:
			c, agreed = x, 1
		}
	}
	return c
}

// descend binds the variable of depth d to x in every iterator of the
// level, recurses, and unbinds in reverse. Positions repeating the
// variable within one pattern are bound one after another, and x is
// skipped if one of them doesn't hold it.
func (e *evaluator) descend(d int, x triples.ID) bool {
	l := &e.levels[d]
	mark := len(e.trail)
	ok := true
bind:
	for i, it := range l.iters {
		for j := 0; j < l.occur[i]; j++ {
			if j > 0 && it.Seek(l.v, x) != x {
				ok = false
				break bind
			}
			it.Down(l.v, x)
			e.trail = append(e.trail, it)
		}
	}
	more := true
	if ok {
		e.tuple[d] = x
		more = e.search(d + 1)
	}
	for i := len(e.trail) - 1; i >= mark; i-- {
		e.trail[i].Up(l.v)
	}
	e.trail = e.trail[:mark]
	return more
}
