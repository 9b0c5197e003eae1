package elements

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/npillmayer/elemental"
)

//go:embed elements.csv
var elementsCSV []byte

// Dictionary is a dictionary of element symbols.
type Dictionary = elemental.Dictionary[Element]

// Piece is one segment of a word decomposed into element symbols.
type Piece = elemental.Piece[Element]

// Load parses CSV element data and returns a ready-to-use dictionary, keyed
// by element symbol.
func Load(name string, reader io.Reader) (*Dictionary, error) {
	return elemental.LoadEntries[Element](name, NewReader(reader))
}

// Default returns a dictionary of all elements of the embedded table.
func Default() (*Dictionary, error) {
	return Load("elements.csv", bytes.NewReader(elementsCSV))
}

// Catalog bundles a symbol dictionary with a lookup table over the same
// element data.
type Catalog struct {
	Dict  *Dictionary
	Table *Table
}

// LoadCatalog loads both the dictionary and the lookup table from CSV data.
//
// Example usage:
//
//	f, _ := os.Open("path/to/elements.csv")
//	defer f.Close()
//
//	catalog, err := elements.LoadCatalog("my-elements", f)
//
// This will load the CSV data temporarily into memory.
func LoadCatalog(name string, reader io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	dict, err := Load(name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	elems, err := ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Catalog{Dict: dict, Table: NewTable(elems)}, nil
}

// DefaultCatalog loads the embedded element table.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog("elements.csv", bytes.NewReader(elementsCSV))
}
