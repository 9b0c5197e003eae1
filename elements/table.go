package elements

import (
	"slices"
	"strings"

	"github.com/derekparker/trie"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Table indexes element records by name and by symbol, for lookups which
// are not segmentation: "which element is called Iron", "which symbols start
// with 'c'".
//
// Names and symbols are indexed lower-cased. Items of both indexes are
// positions into the list of elements.
type Table struct {
	elements []Element
	names    *trie.Trie
	symbols  *patricia.Trie
}

// NewTable indexes elems. Later records replace earlier ones with the same
// name or symbol.
func NewTable(elems []Element) *Table {
	t := &Table{
		elements: slices.Clone(elems),
		names:    trie.New(),
		symbols:  patricia.NewTrie(),
	}
	for i, e := range t.elements {
		if name := strings.ToLower(e.Name); name != "" {
			t.names.Add(name, i)
		}
		t.symbols.Set(patricia.Prefix(strings.ToLower(e.Symbol)), i)
	}
	return t
}

// Len returns the number of elements in the table.
func (t *Table) Len() int {
	return len(t.elements)
}

// Elements returns all elements in table order.
func (t *Table) Elements() []Element {
	return slices.Clone(t.elements)
}

// BySymbol finds an element by its exact symbol, ignoring case.
func (t *Table) BySymbol(symbol string) (*Element, bool) {
	item := t.symbols.Get(patricia.Prefix(strings.ToLower(symbol)))
	if item == nil {
		return nil, false
	}
	return &t.elements[item.(int)], true
}

// ByName finds an element by its exact name, ignoring case.
func (t *Table) ByName(name string) (*Element, bool) {
	node, ok := t.names.Find(strings.ToLower(name))
	if !ok {
		return nil, false
	}
	return &t.elements[node.Meta().(int)], true
}

// SymbolsWithPrefix returns the elements whose symbol starts with prefix,
// ordered by atomic number.
func (t *Table) SymbolsWithPrefix(prefix string) []*Element {
	var found []*Element
	_ = t.symbols.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)),
		func(_ patricia.Prefix, item patricia.Item) error {
			found = append(found, &t.elements[item.(int)])
			return nil
		})
	return sortByNumber(found)
}

// NamesWithPrefix returns the elements whose name starts with prefix,
// ordered by atomic number.
func (t *Table) NamesWithPrefix(prefix string) []*Element {
	return t.resolveNames(t.names.PrefixSearch(strings.ToLower(prefix)))
}

// FuzzyNames returns the elements whose name contains the letters of query
// in order, e.g. "tgn" finds Tungsten.
func (t *Table) FuzzyNames(query string) []*Element {
	return t.resolveNames(t.names.FuzzySearch(strings.ToLower(query)))
}

// Search combines symbol and name lookups for query: an exact symbol match,
// symbols starting with query, and names starting with query.
func (t *Table) Search(query string) []*Element {
	if query == "" {
		return nil
	}
	var found []*Element
	if e, ok := t.BySymbol(query); ok {
		found = append(found, e)
	}
	found = append(found, t.SymbolsWithPrefix(query)...)
	found = append(found, t.NamesWithPrefix(query)...)
	return sortByNumber(found)
}

func (t *Table) resolveNames(keys []string) []*Element {
	found := make([]*Element, 0, len(keys))
	for _, k := range keys {
		if node, ok := t.names.Find(k); ok {
			found = append(found, &t.elements[node.Meta().(int)])
		}
	}
	return sortByNumber(found)
}

// sortByNumber orders elements by atomic number and removes duplicates.
func sortByNumber(elems []*Element) []*Element {
	seen := make(map[*Element]bool, len(elems))
	unique := elems[:0]
	for _, e := range elems {
		if !seen[e] {
			seen[e] = true
			unique = append(unique, e)
		}
	}
	slices.SortStableFunc(unique, func(a, b *Element) int {
		return a.Number() - b.Number()
	})
	return unique
}
