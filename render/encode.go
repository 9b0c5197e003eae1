package render

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/npillmayer/elemental/elements"
)

// jsonRenderer writes one JSON array per word and line:
//
//	[{"Ok":{"name":"Barium","short":"Ba",…}},{"Err":"jq"}]
type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, _ string, pieces []elements.Piece) error {
	return json.NewEncoder(w).Encode(Outcomes(pieces))
}

// msgpackRenderer writes one MessagePack array per word, with the same shape
// as the JSON output.
type msgpackRenderer struct{}

func (msgpackRenderer) Render(w io.Writer, _ string, pieces []elements.Piece) error {
	return msgpack.NewEncoder(w).Encode(Outcomes(pieces))
}
