package joiner

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

type Kind int

const (
	Inner Kind = iota
	Left
)

func (k Kind) String() string {
	switch k {
	case Inner:
		return "inner"
	case Left:
		return "left"
	}
	return "unknown"
}

// Joined pairs a left row with one matching right row. Right is nil when a
// left join found no match.
type Joined[L, R any] struct {
	Left  L
	Right *R
}

// TableCache holds the right side of a join indexed by its key.
type TableCache[K comparable, R any] struct {
	rows map[K][]R
}

func NewTableCache[K comparable, R any](rows []R, key func(R) K) *TableCache[K, R] {
	tc := &TableCache[K, R]{rows: make(map[K][]R, len(rows))}
	for _, row := range rows {
		k := key(row)
		tc.rows[k] = append(tc.rows[k], row)
	}
	return tc
}

func (tc *TableCache[K, R]) Lookup(k K) []R {
	return tc.rows[k]
}

func (tc *TableCache[K, R]) Len() int {
	return len(tc.rows)
}

// HashJoin emits one Joined per matching (left, right) pair, preserving the
// order of left. With kind Left, unmatched left rows are kept with a nil
// Right; with Inner they are dropped.
func HashJoin[L, R any, K comparable](
	left []L,
	right []R,
	leftKey func(L) K,
	rightKey func(R) K,
	kind Kind,
) []Joined[L, R] {
	cache := NewTableCache(right, rightKey)
	joinedRows := make([]Joined[L, R], 0, len(left))

	for _, leftRow := range left {
		matches := cache.Lookup(leftKey(leftRow))
		if len(matches) == 0 {
			if kind == Left {
				joinedRows = append(joinedRows, Joined[L, R]{Left: leftRow})
			}
			continue
		}
		for i := range matches {
			joinedRows = append(joinedRows, Joined[L, R]{Left: leftRow, Right: &matches[i]})
		}
	}

	log.Debugf("%s join: %d left rows, %d right rows, %d joined", kind, len(left), len(right), len(joinedRows))
	return joinedRows
}
