package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/npillmayer/elemental/elements"
)

func decompose(t *testing.T, word string) []elements.Piece {
	t.Helper()
	dict, err := elements.Default()
	require.NoError(t, err)
	return dict.Pieces(word)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "Color", " json ", "MSGPACK"} {
		_, err := ParseFormat(name)
		require.NoError(t, err, name)
	}
	_, err := ParseFormat("yaml")
	require.Error(t, err)
}

func TestTextRenderer(t *testing.T) {
	r, err := New(Text, Options{Banner: true})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "bacon", decompose(t, "bacon")))
	want := "bacon => Ba Co N\n" +
		"  Ba   Barium         p=56  n=81  e=56\n" +
		"  Co   Cobalt         p=27  n=32  e=27\n" +
		"  N    Nitrogen       p=7   n=7   e=7\n"
	require.Equal(t, want, buf.String())
}

func TestTextRendererBanner(t *testing.T) {
	r, err := New(Text, Options{Banner: true})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "jquery", decompose(t, "jquery")))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "NOT POSSIBLE\n=============\nresults:\n"), out)
	require.Contains(t, out, "jquery => [jq] U Er Y\n")
	require.Contains(t, out, "  jq   (no element)\n")

	r, err = New(Text, Options{Banner: false})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, r.Render(&buf, "jquery", decompose(t, "jquery")))
	require.NotContains(t, buf.String(), "NOT POSSIBLE")
}

func TestColorRendererKeepsContent(t *testing.T) {
	r, err := New(Color, Options{Banner: true})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "hello", decompose(t, "hello")))
	out := buf.String()
	for _, frag := range []string{"NOT POSSIBLE", "hello", "He", "[ll]", "Helium", "Oxygen"} {
		require.Contains(t, out, frag)
	}
}

func TestJSONRenderer(t *testing.T) {
	r, err := New(JSON, Options{})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "Hex", decompose(t, "Hex")))
	want := `[{"Ok":{"name":"Helium","short":"He","neutrons":2,"protons":2,"electrons":2}},{"Err":"x"}]` + "\n"
	require.Equal(t, want, buf.String())

	var decoded []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
}

func TestMsgPackRenderer(t *testing.T) {
	r, err := New(MsgPack, Options{})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "oxo", decompose(t, "oxo")))

	var decoded []Outcome
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	require.Equal(t, "Oxygen", decoded[0].Ok.Name)
	require.Nil(t, decoded[0].Err)
	require.NotNil(t, decoded[1].Err)
	require.Equal(t, "x", *decoded[1].Err)
	require.Equal(t, "O", decoded[2].Ok.Symbol)
}

func TestOutcomesEmpty(t *testing.T) {
	require.Empty(t, Outcomes(nil))
	require.True(t, Possible(nil))
}
