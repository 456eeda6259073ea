// Package scan provides a composable lexical scanning runtime.
//
// A Cursor walks an input string using three pluggable policies:
//
//   - a Tokenizer, deciding how long the next word token is (see package tokenize),
//   - a Whitespace policy, deciding which whitespace is skipped and which
//     becomes an explicit token (see package whitespace),
//   - a Comparator, deciding when a token matches an expected literal
//     (see package compare).
//
// Cursors are immutable values. Every operation returns a new cursor, so a
// speculative parse can be abandoned by simply keeping the cursor from before
// the attempt. Copying a cursor is O(1) and never affects another copy.
//
// # Decoding values
//
// Decoders consume a prefix of the remaining input and return the decoded
// value together with the successor cursor:
//
//	cur := scan.New("-42 rest", tokenize.WordsAndInts{}, whitespace.Ignore{}, compare.Exact{})
//	n, cur, err := scan.Int[int32](cur)
//	if err != nil {
//	    // err is a *scan.Error: "at offset 0: expected a 32-bit integer, got ..."
//	}
//	word, cur, err := scan.Str(cur) // "rest"
//
// # Errors
//
// Every failure is a *Error tagged with the byte offset of the cursor that
// detected it. A combinator choosing between failed alternatives can use
// Merge, which prefers I/O failures and then the error that got furthest.
//
// # Thread Safety
//
// Cursors and policies hold no mutable state and are safe for concurrent use.
// The optional trace logger is a *slog.Logger, which is also safe for
// concurrent use.
package scan
