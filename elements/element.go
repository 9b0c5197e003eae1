/*
Package elements provides the periodic table as a dictionary for package
elemental.

The table is read from CSV with a header line and one element per row:

	Element,Symbol,NumberofNeutrons,NumberofProtons,NumberofElectrons
	Hydrogen,H,0,1,1
	Helium,He,2,2,2

A table of all 118 elements is embedded and available through Default and
DefaultCatalog. Element symbols are the dictionary keys, matched
case-insensitively.
*/
package elements

import "fmt"

// Element is one record of the periodic table.
type Element struct {
	Name      string `json:"name" msgpack:"name"`
	Symbol    string `json:"short" msgpack:"short"`
	Neutrons  uint16 `json:"neutrons" msgpack:"neutrons"`
	Protons   uint16 `json:"protons" msgpack:"protons"`
	Electrons uint16 `json:"electrons" msgpack:"electrons"`
}

// Number is the atomic number of e.
func (e Element) Number() int {
	return int(e.Protons)
}

// MassNumber is the number of nucleons of e.
func (e Element) MassNumber() int {
	return int(e.Protons) + int(e.Neutrons)
}

func (e Element) String() string {
	return fmt.Sprintf("%s(%s)", e.Symbol, e.Name)
}
