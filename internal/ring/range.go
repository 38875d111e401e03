package ring

import (
	"fmt"

	"github.com/wangTheTiger/new-ring/internal/triples"
)

// Range is the row span [Start, Limit) inside one sorted order. Order
// records the order the span was narrowed in.
//
// A block of rows sharing the value of the first column sits at the same
// row positions in both orders starting with that column, so such a range
// is valid under either order.
type Range struct {
	Order triples.Order
	Start int
	Limit int
}

// Empty reports whether r holds no rows.
func (r Range) Empty() bool {
	return r.Start >= r.Limit
}

// Len returns the number of rows in r.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Limit - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("%s[%d,%d)", r.Order, r.Start, r.Limit)
}
