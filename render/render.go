// Package render writes decompositions of words into element symbols, for
// humans (plain or colored text) or for programs (JSON, MessagePack).
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/elemental/elements"
)

// Format selects an output representation.
type Format string

const (
	Text    Format = "text"
	Color   Format = "color"
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, Color, JSON, MsgPack:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, color, json or msgpack)", s)
}

// Renderer writes the decomposition of one word.
type Renderer interface {
	Render(w io.Writer, word string, pieces []elements.Piece) error
}

// Options tune the text renderers.
type Options struct {
	Banner bool // print a NOT POSSIBLE banner above words with unmatched runs
}

// New creates a renderer for format f.
func New(f Format, opts Options) (Renderer, error) {
	switch f {
	case Text:
		return &textRenderer{opts: opts, styles: plainStyles()}, nil
	case Color:
		return &textRenderer{opts: opts, colored: true}, nil
	case JSON:
		return jsonRenderer{}, nil
	case MsgPack:
		return msgpackRenderer{}, nil
	}
	return nil, fmt.Errorf("no renderer for format %q", f)
}

// Possible is true if no piece is unmatched.
func Possible(pieces []elements.Piece) bool {
	for _, p := range pieces {
		if !p.Matched() {
			return false
		}
	}
	return true
}

// Outcome is the serialized form of one piece: either Ok with the element or
// Err with the unmatched text.
type Outcome struct {
	Ok  *elements.Element `json:"Ok,omitempty" msgpack:"Ok,omitempty"`
	Err *string           `json:"Err,omitempty" msgpack:"Err,omitempty"`
}

// Outcomes converts pieces to their serialized form.
func Outcomes(pieces []elements.Piece) []Outcome {
	out := make([]Outcome, 0, len(pieces))
	for _, p := range pieces {
		if p.Matched() {
			out = append(out, Outcome{Ok: p.Value})
			continue
		}
		text := p.Text
		out = append(out, Outcome{Err: &text})
	}
	return out
}
