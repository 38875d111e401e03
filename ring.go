package ring

import (
	"context"

	"github.com/wangTheTiger/new-ring/internal/join"
	"github.com/wangTheTiger/new-ring/internal/ltj"
	"github.com/wangTheTiger/new-ring/internal/options"
	index "github.com/wangTheTiger/new-ring/internal/ring"
)

// Ring is an immutable index of triples in all six column orders. A Ring
// is safe for concurrent use by multiple goroutines; the iterators it
// creates are not.
type Ring struct {
	index   *index.Ring
	options *options.Options
}

// New builds a ring over ts. Duplicate triples are stored once. It fails
// with ErrReservedID if a triple holds None.
func New(ts []Triple, opts *Options) (*Ring, error) {
	iopts := convertOptions(opts)
	idx, err := index.New(ts)
	if err != nil {
		iopts.Logger.Errorf("ring: build failed: %s", err)
		return nil, err
	}
	iopts.Logger.Infof("ring: indexed %d triples of %d given", idx.Len(), len(ts))
	return &Ring{index: idx, options: iopts}, nil
}

// Len returns the number of distinct triples.
func (r *Ring) Len() int {
	return r.index.Len()
}

// Triples returns the stored triples in subject, predicate, object order.
func (r *Ring) Triples() []Triple {
	return r.index.Triples()
}

// Contains reports whether t is stored.
func (r *Ring) Contains(t Triple) bool {
	return r.index.Contains(t)
}

// NewIterator returns a trie view of p over r. p must not change while
// the iterator is in use. If the constants of p have no match, the
// returned iterator reports Empty and must not be navigated.
func (r *Ring) NewIterator(p *Pattern) (Iterator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return ltj.New(p, r.index, r.options.TraceLogger()), nil
}

// Evaluate calls emit with every result tuple of q, in ascending order of
// the values bound to q.Order. The tuple passed to emit is only valid
// during the call. Evaluation stops when emit returns false or ctx is
// done.
func (r *Ring) Evaluate(ctx context.Context, q *Query, emit func(tuple []ID) bool) error {
	return join.Evaluate(ctx, r.index, q, r.options, emit)
}

// Count returns the number of result tuples of q.
func (r *Ring) Count(ctx context.Context, q *Query) (int, error) {
	return join.Count(ctx, r.index, q, r.options)
}

// EvaluateAll evaluates queries concurrently, returning the result tuples
// of each query at its index.
func (r *Ring) EvaluateAll(ctx context.Context, queries []*Query) ([][][]ID, error) {
	return join.EvaluateAll(ctx, r.index, queries, r.options)
}

