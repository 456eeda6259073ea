// Package runes provides the scan-while primitive shared by the tokenizer,
// whitespace and scan packages.
//
// Every helper is a pure function of its input. Lengths are byte lengths and
// always land on code point boundaries.
package runes

import (
	"iter"
	"unicode/utf8"
)

// Indexed yields the byte offset and code point of each rune in s.
// Invalid UTF-8 yields utf8.RuneError with a width of one byte, as range does.
func Indexed(s string) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range s {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Span returns the byte offset at which pred first fails over seq, or end if
// it never fails. ok reports whether at least one code point was accepted.
func Span(seq iter.Seq2[int, rune], end int, pred func(rune) bool) (n int, ok bool) {
	for i, r := range seq {
		if !pred(r) {
			return i, i > 0
		}
	}
	return end, end > 0
}

// LenWhile returns the byte length of the longest prefix of s whose code
// points all satisfy pred. ok is false if that prefix is empty.
func LenWhile(s string, pred func(rune) bool) (int, bool) {
	return Span(Indexed(s), len(s), pred)
}

// FirstLen returns the byte length of the first code point of s, or 0 if s is
// empty.
func FirstLen(s string) int {
	if s == "" {
		return 0
	}
	_, n := utf8.DecodeRuneInString(s)
	return n
}
