package elemental

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"
)

// EntryReader yields dictionary entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader[V any] interface {
	Next() (key string, value V, err error)
}

// Dictionary is a loaded token dictionary over runes.
//
// Keys are stored case-folded, and words are folded the same way before
// lookup. Pieces of a decomposition keep the casing of the word.
type Dictionary[V any] struct {
	trie       *Trie[rune, V]
	Identifier string // Identifies the dictionary
}

// Piece is one segment of a decomposed word.
type Piece[V any] struct {
	Text  string // the segment of the word, in its original casing
	Value *V     // dictionary value, nil if Text could not be matched
	Start int    // rune offset of Text within the word
	End   int    // rune offset after Text
}

// Matched is true if p is a dictionary token.
func (p Piece[V]) Matched() bool {
	return p.Value != nil
}

// NewDictionary creates an empty dictionary.
func NewDictionary[V any](name string) *Dictionary[V] {
	return &Dictionary[V]{
		trie:       New[rune, V](),
		Identifier: fmt.Sprintf("dictionary: %s", name),
	}
}

// LoadEntries builds a dictionary from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package elements to parse concrete formats and feed this API.
func LoadEntries[V any](name string, reader EntryReader[V]) (dict *Dictionary[V], err error) {
	dict = NewDictionary[V](name)
	var key string
	var value V
	for {
		key, value, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", dict.Identifier, err)
		}
		if key == "" {
			tracer().Debugf("skipping entry with empty key")
			continue // simply skip entries without key
		}
		dict.Add(key, value)
	}
	stats := dict.Stats()
	tracer().Infof("%s: trie stats keys=%d nodes=%d depth=%d density=%.2f",
		dict.Identifier, stats.Keys, stats.Nodes, stats.Depth, stats.Density())
	return dict, nil
}

// Add registers one dictionary entry, replacing an entry with the same key.
// The zero Dictionary is ready to use; a nil *Dictionary is not.
func (dict *Dictionary[V]) Add(key string, value V) {
	if dict.trie == nil {
		dict.trie = New[rune, V]()
	}
	dict.trie.Insert(foldRunes(key), value)
}

// Lookup returns the value stored for key, or nil.
func (dict *Dictionary[V]) Lookup(key string) *V {
	if dict == nil || dict.trie == nil {
		return nil
	}
	return dict.trie.ExactMatch(foldRunes(key))
}

// Trie exposes the underlying trie, keyed by case-folded runes.
// A nil dictionary answers with a fresh, empty trie.
func (dict *Dictionary[V]) Trie() *Trie[rune, V] {
	if dict == nil || dict.trie == nil {
		return New[rune, V]()
	}
	return dict.trie
}

// Len returns the number of entries.
func (dict *Dictionary[V]) Len() int {
	if dict == nil || dict.trie == nil {
		return 0
	}
	return dict.trie.Len()
}

// Stats reports the shape of the underlying trie.
func (dict *Dictionary[V]) Stats() Stats {
	if dict == nil || dict.trie == nil {
		return Stats{}
	}
	return dict.trie.Stats()
}

// Decompose splits word into dictionary tokens and unmatched runs.
// A nil dictionary behaves like an empty one: a non-empty word comes back as
// a single unmatched piece.
//
// Texts of the pieces are slices of word, so joining them reproduces word
// byte for byte, even if word is not valid UTF-8. An invalid byte counts as
// one rune and never matches.
//
// Example, with the element table:
//
//	"Bacon" => (Ba)(co)(n)
func (dict *Dictionary[V]) Decompose(word string) iter.Seq[Piece[V]] {
	return func(yield func(Piece[V]) bool) {
		offsets := runeOffsets(word)
		for m := range Segment(dict.Trie(), foldRunes(word)) {
			p := Piece[V]{
				Text:  word[offsets[m.Start]:offsets[m.End]],
				Value: m.Value,
				Start: m.Start,
				End:   m.End,
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Pieces collects the decomposition of word.
func (dict *Dictionary[V]) Pieces(word string) []Piece[V] {
	var pp []Piece[V]
	for p := range dict.Decompose(word) {
		pp = append(pp, p)
	}
	return pp
}

// Split returns the texts of the decomposition of word.
//
// Example:
//
//	"bacon" => [ "ba", "co", "n" ].
func (dict *Dictionary[V]) Split(word string) []string {
	var ss []string
	for p := range dict.Decompose(word) {
		ss = append(ss, p.Text)
	}
	return ss
}

// SplitString returns word with a hyphen between all pieces.
// Example:
//
//	"bacon" => "ba-co-n".
func (dict *Dictionary[V]) SplitString(word string) string {
	return strings.Join(dict.Split(word), "-")
}

// Possible reports whether word can be spelled completely with dictionary
// tokens. It stops at the first unmatched run.
func (dict *Dictionary[V]) Possible(word string) bool {
	for p := range dict.Decompose(word) {
		if !p.Matched() {
			return false
		}
	}
	return true
}

// runeOffsets returns the byte offset of every rune of s, followed by len(s).
// Invalid bytes are counted the way []rune(s) counts them.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

// foldRunes converts s to runes, lower-cased one by one. Folding rune by rune
// keeps offsets aligned with the runes of s.
func foldRunes(s string) []rune {
	rr := []rune(s)
	for i, r := range rr {
		rr[i] = unicode.ToLower(r)
	}
	return rr
}
