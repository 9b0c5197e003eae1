package elemental

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type entry struct {
	key   string
	value int
}

type sliceEntryReader struct {
	entries []entry
	index   int
	err     error // returned after entries are exhausted, instead of io.EOF
}

func (r *sliceEntryReader) Next() (string, int, error) {
	if r.index >= len(r.entries) {
		if r.err != nil {
			return "", 0, r.err
		}
		return "", 0, io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e.key, e.value, nil
}

func loadTestDictionary(t *testing.T) *Dictionary[int] {
	t.Helper()
	dict, err := LoadEntries("test", &sliceEntryReader{
		entries: []entry{
			{key: "H", value: 1},
			{key: "He", value: 2},
			{key: "B", value: 5},
			{key: "C", value: 6},
			{key: "N", value: 7},
			{key: "O", value: 8},
			{key: "Ba", value: 56},
			{key: "Co", value: 27},
			{key: "", value: 0},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return dict
}

func TestEntryReaderAPI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elemental")
	defer teardown()
	//
	dict := loadTestDictionary(t)
	if dict.Identifier != "dictionary: test" {
		t.Fatalf("unexpected identifier %q", dict.Identifier)
	}
	if dict.Len() != 8 {
		t.Fatalf("expected 8 entries (empty key skipped), have %d", dict.Len())
	}
	if v := dict.Lookup("HE"); v == nil || *v != 2 {
		t.Fatalf("lookup of HE should be case-insensitive and yield 2, is %v", v)
	}
	if v := dict.Lookup("hel"); v != nil {
		t.Fatalf("lookup of hel should fail, is %d", *v)
	}
}

func TestLoadEntriesReadError(t *testing.T) {
	broken := errors.New("broken stream")
	_, err := LoadEntries("broken", &sliceEntryReader{
		entries: []entry{{key: "h", value: 1}},
		err:     broken,
	})
	if !errors.Is(err, broken) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestSplitString(t *testing.T) {
	dict := loadTestDictionary(t)
	tests := []struct {
		word string
		want string
	}{
		{word: "bacon", want: "ba-co-n"},
		{word: "Bacon", want: "Ba-co-n"},
		{word: "BACON", want: "BA-CO-N"},
		{word: "hhe", want: "h-he"},
		{word: "xhxy", want: "x-h-xy"},
		{word: "", want: ""},
	}
	for _, tt := range tests {
		if got := dict.SplitString(tt.word); got != tt.want {
			t.Fatalf("split of %q: got %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestDecomposeKeepsCasing(t *testing.T) {
	dict := loadTestDictionary(t)
	pieces := dict.Pieces("xHeÄo")
	texts := make([]string, 0, len(pieces))
	for _, p := range pieces {
		texts = append(texts, p.Text)
	}
	if want := []string{"x", "He", "Ä", "o"}; !slices.Equal(texts, want) {
		t.Fatalf("pieces mismatch: got %v, want %v", texts, want)
	}
	if pieces[1].Value == nil || *pieces[1].Value != 2 {
		t.Fatalf("He should carry value 2")
	}
	if pieces[2].Matched() || pieces[2].Start != 3 || pieces[2].End != 4 {
		t.Fatalf("Ä should be unmatched at rune offset [3,4), is %+v", pieces[2])
	}
}

func TestPossible(t *testing.T) {
	dict := loadTestDictionary(t)
	if !dict.Possible("bacon") {
		t.Fatalf("bacon should be possible")
	}
	if dict.Possible("bacony") {
		t.Fatalf("bacony should not be possible")
	}
	if !dict.Possible("") {
		t.Fatalf("the empty word is trivially possible")
	}
}

func TestNilDictionary(t *testing.T) {
	var dict *Dictionary[int]
	if dict.Len() != 0 || dict.Lookup("h") != nil {
		t.Fatalf("nil dictionary should be empty")
	}
	if dict.Trie() == nil || dict.Trie().Len() != 0 {
		t.Fatalf("nil dictionary should have an empty trie")
	}
	pp := dict.Pieces("xyz")
	if len(pp) != 1 || pp[0].Matched() || pp[0].Text != "xyz" || pp[0].Start != 0 || pp[0].End != 3 {
		t.Fatalf("nil dictionary should return the word as one unmatched run, got %+v", pp)
	}
	if dict.Possible("xyz") {
		t.Fatalf("nothing is possible with a nil dictionary")
	}
	if !dict.Possible("") || len(dict.Pieces("")) != 0 {
		t.Fatalf("the empty word has no pieces")
	}
}

func TestZeroDictionary(t *testing.T) {
	var dict Dictionary[int]
	if got := dict.SplitString("he"); got != "he" {
		t.Fatalf("empty dictionary should not split, got %q", got)
	}
	dict.Add("He", 2)
	if v := dict.Lookup("he"); v == nil || *v != 2 || dict.Len() != 1 {
		t.Fatalf("zero dictionary should accept entries")
	}
}

func TestDecomposeInvalidUTF8(t *testing.T) {
	dict := loadTestDictionary(t)
	words := []string{"h\xffh", "\xffbacon\xfe", "he\xc3", "\xe2\x82"}
	for _, word := range words {
		var b strings.Builder
		end := 0
		for p := range dict.Decompose(word) {
			if p.Start != end {
				t.Fatalf("%q: gap at rune %d", word, p.Start)
			}
			b.WriteString(p.Text)
			end = p.End
		}
		if b.String() != word {
			t.Fatalf("round trip of %q yields %q", word, b.String())
		}
	}
	if got := dict.Split("h\xffh"); !slices.Equal(got, []string{"h", "\xff", "h"}) {
		t.Fatalf("invalid byte should be its own unmatched piece, got %q", got)
	}
}
