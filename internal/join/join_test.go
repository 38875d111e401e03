package join_test

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"github.com/wangTheTiger/new-ring/internal/errors"
	"github.com/wangTheTiger/new-ring/internal/join"
	"github.com/wangTheTiger/new-ring/internal/options"
	"github.com/wangTheTiger/new-ring/internal/ring"
	"github.com/wangTheTiger/new-ring/internal/triples"
	"gopkg.in/yaml.v3"
)

type scenarioFile struct {
	Triples [][]uint64      `yaml:"triples"`
	Queries []scenarioQuery `yaml:"queries"`
}

type scenarioQuery struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
	Order    []string `yaml:"order"`
}

func loadScenarios(t *testing.T) ([]triples.Triple, []scenarioQuery) {
	f, err := os.Open("testdata/scenarios.yaml")
	require.NoError(t, err)
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var sf scenarioFile
	require.NoError(t, dec.Decode(&sf))
	ts := make([]triples.Triple, len(sf.Triples))
	for i, row := range sf.Triples {
		require.Len(t, row, 3, "triple=%d", i)
		ts[i] = triples.Triple{S: triples.ID(row[0]), P: triples.ID(row[1]), O: triples.ID(row[2])}
	}
	return ts, sf.Queries
}

// parseQuery builds a query from patterns written as "?a 10 ?b". Variables
// are numbered by their place in the order, unordered ones after that.
func parseQuery(t *testing.T, sq scenarioQuery) *join.Query {
	vars := make(map[string]triples.Var)
	q := &join.Query{}
	for _, name := range sq.Order {
		v := triples.Var(len(vars))
		vars[name] = v
		q.Order = append(q.Order, v)
	}
	for _, s := range sq.Patterns {
		fields := strings.Fields(s)
		require.Len(t, fields, 3, "pattern=%q", s)
		var terms [3]triples.Term
		for i, field := range fields {
			if name, ok := strings.CutPrefix(field, "?"); ok {
				v, ok := vars[name]
				if !ok {
					v = triples.Var(len(vars))
					vars[name] = v
				}
				terms[i] = triples.Variable(v)
				continue
			}
			id, err := strconv.ParseUint(field, 10, 64)
			require.NoError(t, err)
			terms[i] = triples.Const(triples.ID(id))
		}
		q.Patterns = append(q.Patterns, triples.NewPattern(terms[0], terms[1], terms[2]))
	}
	return q
}

func defaultOptions() *options.Options {
	opts := options.DefaultOptions
	return &opts
}

func collect(t *testing.T, idx *ring.Ring, q *join.Query) [][]triples.ID {
	return evaluate(t, idx, q, defaultOptions())
}

func evaluate(t *testing.T, idx *ring.Ring, q *join.Query, opts *options.Options) [][]triples.ID {
	var got [][]triples.ID
	err := join.Evaluate(context.Background(), idx, q, opts, func(tuple []triples.ID) bool {
		got = append(got, slices.Clone(tuple))
		return true
	})
	require.NoError(t, err)
	return got
}

// bruteForce joins q by trying every triple for every pattern.
func bruteForce(ts []triples.Triple, q *join.Query) [][]triples.ID {
	var out [][]triples.ID
	binding := make(map[triples.Var]triples.ID)
	var match func(i int)
	match = func(i int) {
		if i == len(q.Patterns) {
			tuple := make([]triples.ID, len(q.Order))
			for j, v := range q.Order {
				tuple[j] = binding[v]
			}
			out = append(out, tuple)
			return
		}
		p := &q.Patterns[i]
		for _, tr := range ts {
			var set []triples.Var
			ok := true
			for _, a := range triples.Axes {
				term, val := p.Term(a), tr.Get(a)
				if !term.IsVariable() {
					ok = term.ID() == val
				} else if b, has := binding[term.Var()]; has {
					ok = b == val
				} else {
					binding[term.Var()] = val
					set = append(set, term.Var())
				}
				if !ok {
					break
				}
			}
			if ok {
				match(i + 1)
			}
			for _, v := range set {
				delete(binding, v)
			}
		}
	}
	match(0)
	slices.SortFunc(out, slices.Compare[[]triples.ID])
	return slices.CompactFunc(out, slices.Equal[[]triples.ID])
}

func TestScenarios(t *testing.T) {
	ts, queries := loadScenarios(t)
	idx, err := ring.New(ts)
	require.NoError(t, err)

	var buf bytes.Buffer
	for _, sq := range queries {
		q := parseQuery(t, sq)
		got := collect(t, idx, q)
		want := bruteForce(ts, q)
		if len(want) == 0 {
			require.Empty(t, got, "query=%s", sq.Name)
		} else {
			require.Equal(t, want, got, "query=%s", sq.Name)
		}
		fmt.Fprintln(&buf, sq.Name)
		for _, tuple := range got {
			fmt.Fprintf(&buf, "  %v\n", tuple)
		}
	}
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "scenarios", buf.Bytes())
}

func randomQuery(rnd *rand.Rand, domain int) *join.Query {
	q := &join.Query{}
	mentioned := make(map[triples.Var]bool)
	for i := 0; i < 1+rnd.Intn(3); i++ {
		var terms [3]triples.Term
		for j := range terms {
			if rnd.Intn(10) < 3 {
				terms[j] = triples.Const(triples.ID(rnd.Intn(domain)))
				continue
			}
			v := triples.Var(rnd.Intn(4))
			mentioned[v] = true
			terms[j] = triples.Variable(v)
		}
		q.Patterns = append(q.Patterns, triples.NewPattern(terms[0], terms[1], terms[2]))
	}
	for v := range mentioned {
		q.Order = append(q.Order, v)
	}
	slices.Sort(q.Order)
	rnd.Shuffle(len(q.Order), func(i, j int) {
		q.Order[i], q.Order[j] = q.Order[j], q.Order[i]
	})
	return q
}

func TestEvaluateMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	const domain = 5
	ts := make([]triples.Triple, 60)
	for i := range ts {
		ts[i] = triples.Triple{
			S: triples.ID(rnd.Intn(domain)),
			P: triples.ID(rnd.Intn(3)),
			O: triples.ID(rnd.Intn(domain)),
		}
	}
	idx, err := ring.New(ts)
	require.NoError(t, err)

	for i := 0; i < 300; i++ {
		q := randomQuery(rnd, domain)
		got := collect(t, idx, q)
		want := bruteForce(ts, q)
		if len(want) == 0 {
			require.Empty(t, got, "test=%d", i)
			continue
		}
		require.Equal(t, want, got, "test=%d", i)

		n, err := join.Count(context.Background(), idx, q, defaultOptions())
		require.NoError(t, err)
		require.Equal(t, len(want), n, "test=%d", i)
	}
}

func TestEvaluateAll(t *testing.T) {
	ts, queries := loadScenarios(t)
	idx, err := ring.New(ts)
	require.NoError(t, err)

	qs := make([]*join.Query, len(queries))
	for i, sq := range queries {
		qs[i] = parseQuery(t, sq)
	}
	opts := defaultOptions()
	opts.Parallelism = 2
	results, err := join.EvaluateAll(context.Background(), idx, qs, opts)
	require.NoError(t, err)
	require.Len(t, results, len(qs))
	for i, q := range qs {
		want := collect(t, idx, q)
		require.Equal(t, want, results[i], "query=%s", queries[i].Name)
	}
}

func TestEvaluateAllDefaultsParallelism(t *testing.T) {
	ts, queries := loadScenarios(t)
	idx, err := ring.New(ts)
	require.NoError(t, err)

	qs := make([]*join.Query, len(queries))
	for i, sq := range queries {
		qs[i] = parseQuery(t, sq)
	}
	for _, parallelism := range []int{0, -3} {
		opts := defaultOptions()
		opts.Parallelism = parallelism

		done := make(chan struct{})
		var results [][][]triples.ID
		go func() {
			defer close(done)
			results, err = join.EvaluateAll(context.Background(), idx, qs, opts)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("parallelism=%d: EvaluateAll did not return", parallelism)
		}
		require.NoError(t, err, "parallelism=%d", parallelism)
		require.Len(t, results, len(qs), "parallelism=%d", parallelism)
	}
}

func TestEvaluateAllFailsOnInvalidQuery(t *testing.T) {
	idx, err := ring.New([]triples.Triple{{S: 1, P: 2, O: 3}})
	require.NoError(t, err)
	qs := []*join.Query{
		{Patterns: []triples.Pattern{triples.NewPattern(triples.Variable(0), triples.Const(2), triples.Const(3))}, Order: []triples.Var{0}},
		{},
	}
	_, err = join.EvaluateAll(context.Background(), idx, qs, defaultOptions())
	require.ErrorIs(t, err, errors.ErrEmptyQuery)
}

func TestEvaluateStopsWhenEmitReturnsFalse(t *testing.T) {
	ts, queries := loadScenarios(t)
	idx, err := ring.New(ts)
	require.NoError(t, err)
	q := parseQuery(t, queries[0])

	calls := 0
	err = join.Evaluate(context.Background(), idx, q, defaultOptions(), func([]triples.ID) bool {
		calls++
		return false
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestEvaluateCanceled(t *testing.T) {
	ts, queries := loadScenarios(t)
	idx, err := ring.New(ts)
	require.NoError(t, err)
	q := parseQuery(t, queries[0])

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = join.Evaluate(ctx, idx, q, defaultOptions(), func([]triples.ID) bool {
		t.Fatal("emit after cancel")
		return true
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateTrace(t *testing.T) {
	idx, err := ring.New([]triples.Triple{{S: 1, P: 2, O: 3}})
	require.NoError(t, err)
	q := &join.Query{
		Patterns: []triples.Pattern{triples.NewPattern(triples.Variable(0), triples.Const(2), triples.Const(3))},
		Order:    []triples.Var{0},
	}

	var lines []string
	opts := defaultOptions()
	opts.Logger = recorder(func(line string) { lines = append(lines, line) })
	opts.Trace = true
	require.Equal(t, [][]triples.ID{{1}}, evaluate(t, idx, q, opts))
	require.Contains(t, lines, "ring: down_PO_S")
	require.Contains(t, lines, "ring: up_PO_S")

	lines = nil
	opts.Trace = false
	require.Equal(t, [][]triples.ID{{1}}, evaluate(t, idx, q, opts))
	require.NotContains(t, lines, "ring: down_PO_S")
	require.Contains(t, lines, "ring: join emitted 1 tuples")
}

type recorder func(string)

func (r recorder) Debugf(format string, args ...interface{}) { r(fmt.Sprintf(format, args...)) }
func (r recorder) Infof(format string, args ...interface{})  { r(fmt.Sprintf(format, args...)) }
func (r recorder) Warnf(format string, args ...interface{})  { r(fmt.Sprintf(format, args...)) }
func (r recorder) Errorf(format string, args ...interface{}) { r(fmt.Sprintf(format, args...)) }

func TestValidate(t *testing.T) {
	x, y := triples.Variable(0), triples.Variable(1)
	c := triples.Const(7)
	tests := []struct {
		q       join.Query
		err     error
		pattern bool
	}{
		{join.Query{}, errors.ErrEmptyQuery, false},
		{join.Query{Patterns: []triples.Pattern{triples.NewPattern(x, c, y)}, Order: []triples.Var{0}}, errors.ErrUnorderedVariable, false},
		{join.Query{Patterns: []triples.Pattern{triples.NewPattern(x, c, c)}, Order: []triples.Var{0, 1}}, errors.ErrUnknownVariable, false},
		{join.Query{Patterns: []triples.Pattern{triples.NewPattern(x, c, c)}, Order: []triples.Var{0, 0}}, errors.ErrDuplicateVariable, false},
		{join.Query{Patterns: []triples.Pattern{triples.NewPattern(x, c, c), triples.NewPattern(x, triples.Const(triples.None), c)}, Order: []triples.Var{0}}, errors.ErrReservedID, true},
		{join.Query{Patterns: []triples.Pattern{triples.NewPattern(x, c, y), triples.NewPattern(y, c, x)}, Order: []triples.Var{1, 0}}, nil, false},
		{join.Query{Patterns: []triples.Pattern{triples.NewPattern(c, c, c)}}, nil, false},
	}
	for i, test := range tests {
		err := test.q.Validate()
		if test.err == nil {
			require.NoError(t, err, "test=%d", i)
			continue
		}
		require.ErrorIs(t, err, test.err, "test=%d", i)
		require.Equal(t, test.pattern, errors.IsPattern(err), "test=%d", i)
	}

	err := tests[4].q.Validate()
	require.EqualError(t, err, "ring: pattern 1 P: ring: reserved identifier")
}
