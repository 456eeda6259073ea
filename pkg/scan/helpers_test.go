package scan_test

import (
	"github.com/shapestone/shape-scan/pkg/compare"
	"github.com/shapestone/shape-scan/pkg/scan"
	"github.com/shapestone/shape-scan/pkg/tokenize"
	"github.com/shapestone/shape-scan/pkg/whitespace"
)

type wordCursor = scan.Cursor[tokenize.WordsAndInts, whitespace.Ignore, compare.CaseInsensitive]

// cur mirrors the configuration most grammars use: words and integers,
// whitespace ignored, case-insensitive literals.
func cur(s string) wordCursor {
	return scan.New(s, tokenize.WordsAndInts{}, whitespace.Ignore{}, compare.CaseInsensitive{})
}

// tokens pops every token reachable from c.
func tokens[T scan.Tokenizer, W scan.Whitespace, C scan.Comparator](c scan.Cursor[T, W, C]) []string {
	var out []string
	for {
		tok, next, ok := c.PopToken()
		if !ok {
			return out
		}
		out = append(out, tok)
		c = next
	}
}
