/*
Package elemental spells words with the tokens of a fixed dictionary.

The motivating dictionary is the periodic table: "bacon" spells as Ba-Co-N,
"xenon" as Xe-No-N. The matching core is dictionary-agnostic, though. It
consists of a generic prefix trie and a greedy segmentation engine which
repeatedly takes the best match from the front of the remaining input.

Best match means: descend the trie as far as the input allows, then take
whatever value sits at the node reached. There is no backtracking to a
shorter key along the path, and positions already consumed are never
revisited. Symbols which cannot be matched are reported as unmatched runs,
with adjacent failures folded into one run.

Dictionaries are loaded from a streaming, format-agnostic EntryReader.
Concrete formats live in adapter packages, like package elements for the
CSV element table.

A trie must be built completely before it is shared between goroutines.
After that, any number of lookups and segmentations may run concurrently.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package elemental

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'elemental'
func tracer() tracing.Trace {
	return tracing.Select("elemental")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
