package elements

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const columns = 5 // Element,Symbol,NumberofNeutrons,NumberofProtons,NumberofElectrons

// ParseError reports a malformed row of an element table.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("element table, line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader streams elements from CSV data.
type Reader struct {
	csv    *csv.Reader
	header bool // header line has been consumed
}

// NewReader creates a Reader for CSV data. The first record is taken as the
// header line and is skipped.
func NewReader(reader io.Reader) *Reader {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1 // checked per row, to report our own errors
	r.TrimLeadingSpace = true
	r.ReuseRecord = true
	return &Reader{csv: r}
}

// Next returns the next element, keyed by its symbol.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, Element, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return "", Element{}, &ParseError{Line: perr.Line, Err: perr.Err}
			}
			return "", Element{}, err
		}
		if !r.header {
			r.header = true
			continue
		}
		line, _ := r.csv.FieldPos(0)
		elem, err := decodeRecord(record)
		if err != nil {
			return "", Element{}, &ParseError{Line: line, Err: err}
		}
		return elem.Symbol, elem, nil
	}
}

func decodeRecord(record []string) (elem Element, err error) {
	if len(record) != columns {
		return elem, fmt.Errorf("expected %d fields, have %d", columns, len(record))
	}
	elem.Name = strings.TrimSpace(record[0])
	elem.Symbol = strings.TrimSpace(record[1])
	if elem.Symbol == "" {
		return elem, errors.New("empty symbol")
	}
	counts := []*uint16{&elem.Neutrons, &elem.Protons, &elem.Electrons}
	for i, c := range counts {
		field := strings.TrimSpace(record[2+i])
		n, err := strconv.ParseUint(field, 10, 16)
		if err != nil {
			return elem, fmt.Errorf("field %d: %w", 3+i, err)
		}
		*c = uint16(n)
	}
	return elem, nil
}

// ReadAll reads all elements from CSV data.
func ReadAll(reader io.Reader) ([]Element, error) {
	r := NewReader(reader)
	var elems []Element
	for {
		_, elem, err := r.Next()
		if err == io.EOF {
			return elems, nil
		}
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}
