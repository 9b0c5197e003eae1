package elemental

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Trie maps sequences of steps to values. Steps are ordered, comparable units,
// typically runes. Keys sharing a prefix share the nodes of that prefix.
//
// A Trie is not synchronized. Build it completely before sharing it with
// concurrent readers.
type Trie[S cmp.Ordered, V any] struct {
	root *trieNode[S, V]
	keys int
}

// trieNode exclusively owns its children. value is nil unless some key
// terminates at this node.
type trieNode[S cmp.Ordered, V any] struct {
	value    *V
	depth    int
	children map[S]*trieNode[S, V]
}

// New creates an empty trie.
func New[S cmp.Ordered, V any]() *Trie[S, V] {
	return &Trie[S, V]{root: &trieNode[S, V]{}}
}

// Insert stores value for key steps, overwriting a previous value for the same
// key. Inserting an empty key does nothing.
func (t *Trie[S, V]) Insert(steps []S, value V) {
	if len(steps) == 0 {
		return
	}
	n := t.root
	for _, s := range steps {
		child := n.children[s]
		if child == nil {
			if n.children == nil {
				n.children = make(map[S]*trieNode[S, V])
			}
			child = &trieNode[S, V]{depth: n.depth + 1}
			n.children[s] = child
		}
		n = child
	}
	if n.value == nil {
		t.keys++
	}
	n.value = &value
}

// ExactMatch returns the value stored for exactly the key steps, or nil.
// A key which is only a prefix of stored keys yields nil.
//
// The returned pointer refers to the value held by the trie.
func (t *Trie[S, V]) ExactMatch(steps []S) *V {
	n := t.root
	for _, s := range steps {
		if n = n.children[s]; n == nil {
			return nil
		}
	}
	return n.value
}

// BestMatch descends the trie along steps as far as there are matching
// children and returns the value at the node reached, or nil.
//
// BestMatch does not fall back to a shorter key: with keys "c" and "clx",
// BestMatch("cl") walks to node "cl", which holds no value, and returns nil
// even though "c" is a key.
func (t *Trie[S, V]) BestMatch(steps []S) *V {
	return t.descend(steps).value
}

// descend walks from the root as far as steps lead and returns the final node.
// The depth of that node is the length of the key spelled by the path to it.
func (t *Trie[S, V]) descend(steps []S) *trieNode[S, V] {
	n := t.root
	for _, s := range steps {
		child := n.children[s]
		if child == nil {
			break
		}
		n = child
	}
	return n
}

// Len returns the number of keys stored.
func (t *Trie[S, V]) Len() int {
	return t.keys
}

// All iterates over all stored keys and their values, in natural order of the
// steps. The key slice passed to yield is only valid during the call.
func (t *Trie[S, V]) All() iter.Seq2[[]S, *V] {
	return func(yield func([]S, *V) bool) {
		path := make([]S, 0, 8)
		t.root.walk(path, yield)
	}
}

func (n *trieNode[S, V]) walk(path []S, yield func([]S, *V) bool) bool {
	if n.value != nil && !yield(path, n.value) {
		return false
	}
	for _, s := range n.sortedSteps() {
		if !n.children[s].walk(append(path, s), yield) {
			return false
		}
	}
	return true
}

func (n *trieNode[S, V]) sortedSteps() []S {
	return slices.Sorted(maps.Keys(n.children))
}

// Dump writes an indented tree of the trie to w, for debugging.
func (t *Trie[S, V]) Dump(w io.Writer) error {
	return t.root.dump(w, 0)
}

func (n *trieNode[S, V]) dump(w io.Writer, level int) error {
	for _, s := range n.sortedSteps() {
		child := n.children[s]
		line := fmt.Sprintf("%s%v", strings.Repeat("  ", level), stepString(s))
		if child.value != nil {
			line = fmt.Sprintf("%s = %v", line, *child.value)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := child.dump(w, level+1); err != nil {
			return err
		}
	}
	return nil
}

func stepString[S cmp.Ordered](s S) string {
	if r, ok := any(s).(rune); ok {
		return string(r)
	}
	return fmt.Sprint(s)
}

// --- Statistics ------------------------------------------------------------

// Stats reports the shape of a trie.
type Stats struct {
	Nodes int // nodes, excluding the root
	Keys  int // nodes holding a value
	Depth int // length of the longest key
}

// Density is the share of nodes which terminate a key.
func (s Stats) Density() float64 {
	if s.Nodes == 0 {
		return 0
	}
	return float64(s.Keys) / float64(s.Nodes)
}

// Stats counts nodes and keys of the trie.
func (t *Trie[S, V]) Stats() Stats {
	var stats Stats
	var count func(n *trieNode[S, V])
	count = func(n *trieNode[S, V]) {
		for _, child := range n.children {
			stats.Nodes++
			if child.value != nil {
				stats.Keys++
			}
			stats.Depth = max(stats.Depth, child.depth)
			count(child)
		}
	}
	count(t.root)
	return stats
}
