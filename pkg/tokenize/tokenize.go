// Package tokenize provides the tokenizer policies used by scan cursors.
//
// A tokenizer decides how long the next "word" token is. It returns false when
// it has no opinion, in which case the cursor falls back to a single code
// point token. Implementations may rely on that fallback.
//
// The same tokenizer is used for both the scanned input and the literals a
// pattern expects, so both sides are split identically.
package tokenize

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/shapestone/shape-scan/internal/runes"
)

// Unicode property tables missing from the standard library, derived from the
// definitions in UAX #31 and UAX #44.
var (
	// Alphabetic = L + Nl + Other_Alphabetic.
	alphabetic = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_Alphabetic)

	// ID_Start and ID_Continue before the pattern exclusions are applied.
	idStart    = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	idContinue = rangetable.Merge(idStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
)

func isAlphabetic(r rune) bool {
	return unicode.Is(alphabetic, r)
}

func isPattern(r rune) bool {
	return unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

// IsXIDStart reports whether r may start an identifier.
//
// The NFKC-closure adjustments that distinguish XID_Start from ID_Start affect
// a handful of compatibility characters and are not applied.
func IsXIDStart(r rune) bool {
	return unicode.Is(idStart, r) && !isPattern(r)
}

// IsXIDContinue reports whether r may continue an identifier.
func IsXIDContinue(r rune) bool {
	return unicode.Is(idContinue, r) && !isPattern(r)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return -1
}

// WordsAndInts splits input into words and integers. A word is a run of one or
// more alphabetic code points; an integer is a run of one or more decimal
// digits.
type WordsAndInts struct{}

// TokenLen implements the tokenizer contract.
func (WordsAndInts) TokenLen(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	switch r := firstRune(s); {
	case isAlphabetic(r):
		return runes.LenWhile(s, isAlphabetic)
	case unicode.IsDigit(r):
		return runes.LenWhile(s, unicode.IsDigit)
	default:
		return 0, false
	}
}

func (WordsAndInts) String() string { return "WordsAndInts" }

// IdentsAndInts splits input into identifiers and integers. An identifier is
// an underscore or XID_Start code point followed by zero or more XID_Continue
// code points; an integer is a run of one or more decimal digits.
type IdentsAndInts struct{}

// TokenLen implements the tokenizer contract.
func (IdentsAndInts) TokenLen(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	switch r := firstRune(s); {
	case r == '_' || IsXIDStart(r):
		return runes.LenWhile(s, IsXIDContinue)
	case unicode.IsDigit(r):
		return runes.LenWhile(s, unicode.IsDigit)
	default:
		return 0, false
	}
}

func (IdentsAndInts) String() string { return "IdentsAndInts" }

// SpaceDelimited splits input on whitespace: a token is a run of one or more
// code points that are not White_Space.
type SpaceDelimited struct{}

// TokenLen implements the tokenizer contract.
func (SpaceDelimited) TokenLen(s string) (int, bool) {
	return runes.LenWhile(s, func(r rune) bool { return !unicode.IsSpace(r) })
}

func (SpaceDelimited) String() string { return "SpaceDelimited" }

// Explicit treats the entire remaining input as one token, unless it is empty.
//
// This is rarely what a runtime scan wants. It is useful for literals written
// in a pattern, which should be matched verbatim.
type Explicit struct{}

// TokenLen implements the tokenizer contract.
func (Explicit) TokenLen(s string) (int, bool) {
	return len(s), s != ""
}

func (Explicit) String() string { return "Explicit" }
