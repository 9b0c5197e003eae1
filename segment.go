package elemental

import (
	"cmp"
	"iter"
)

// Match is one outcome of a segmentation pass over an input sequence.
//
// A matched entry carries the dictionary value for the token found at
// input[Start:End]. An unmatched entry has a nil Value and carries the input
// steps which could not be matched, in original order.
type Match[S cmp.Ordered, V any] struct {
	Value     *V  // dictionary value, nil for unmatched runs
	Unmatched []S // steps of an unmatched run
	Start     int // offset of the first step
	End       int // offset after the last step
}

// Matched is true if m holds a dictionary token.
func (m Match[S, V]) Matched() bool {
	return m.Value != nil
}

// Len is the number of input steps covered by m.
func (m Match[S, V]) Len() int {
	return m.End - m.Start
}

// Segment splits input into dictionary tokens, greedily taking the best match
// of t at the front of the remaining input. Steps which cannot be matched are
// reported as unmatched runs, where adjacent failures are folded into a
// single run.
//
// The sequence is produced lazily; consumers may stop early. Concatenating
// input[Start:End] of all entries reproduces input.
func Segment[S cmp.Ordered, V any](t *Trie[S, V], input []S) iter.Seq[Match[S, V]] {
	return Fold(Scan(t, input))
}

// Scan is the raw form of Segment: every failing step is reported as an
// unmatched run of its own.
//
// At each position Scan asks t for the best match of the remaining input. On
// a hit the cursor advances by the length of the matched key, on a miss it
// advances by a single step. Positions once passed are never re-examined.
func Scan[S cmp.Ordered, V any](t *Trie[S, V], input []S) iter.Seq[Match[S, V]] {
	return func(yield func(Match[S, V]) bool) {
		pos := 0
		for pos < len(input) {
			var m Match[S, V]
			if n := t.descend(input[pos:]); n.value != nil {
				assert(n.depth > 0, "matched key must not be empty")
				m = Match[S, V]{Value: n.value, Start: pos, End: pos + n.depth}
			} else {
				m = Match[S, V]{Unmatched: input[pos : pos+1], Start: pos, End: pos + 1}
			}
			tracer().Debugf("segment: steps [%d,%d) matched=%v", m.Start, m.End, m.Matched())
			if !yield(m) {
				return
			}
			pos = m.End
		}
	}
}

// Fold merges every maximal run of adjacent unmatched entries of seq into a
// single unmatched entry. Matched entries are passed through unchanged.
// Fold neither reorders nor drops steps.
func Fold[S cmp.Ordered, V any](seq iter.Seq[Match[S, V]]) iter.Seq[Match[S, V]] {
	return func(yield func(Match[S, V]) bool) {
		var run Match[S, V]
		pending := false
		for m := range seq {
			if !m.Matched() {
				if !pending {
					run = Match[S, V]{Start: m.Start}
					pending = true
				}
				run.Unmatched = append(run.Unmatched, m.Unmatched...)
				run.End = m.End
				continue
			}
			if pending {
				pending = false
				if !yield(run) {
					return
				}
			}
			if !yield(m) {
				return
			}
		}
		if pending {
			yield(run)
		}
	}
}
