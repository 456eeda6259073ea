package scan

import (
	"strings"
	"unicode/utf8"
)

// Bool decodes the literal "true" or "false". Matching uses the active
// comparator, so case sensitivity follows the cursor's policy.
func Bool[T Tokenizer, W Whitespace, C Comparator](c Cursor[T, W, C]) (bool, Cursor[T, W, C], error) {
	if next, err := c.ExpectTok("true"); err == nil {
		return true, next, nil
	}
	if next, err := c.ExpectTok("false"); err == nil {
		return false, next, nil
	}
	return false, c, c.Expected("`true` or `false`")
}

// Char decodes the first code point of the remaining input. Whitespace is not
// skipped.
func Char[T Tokenizer, W Whitespace, C Comparator](c Cursor[T, W, C]) (rune, Cursor[T, W, C], error) {
	tail := c.Tail()
	if tail == "" {
		return 0, c, c.Expected("a character")
	}
	r, n := utf8.DecodeRuneInString(tail)
	return r, c.Advance(n), nil
}

// Str decodes the next token. The result shares memory with the input.
func Str[T Tokenizer, W Whitespace, C Comparator](c Cursor[T, W, C]) (string, Cursor[T, W, C], error) {
	tok, next, ok := c.PopToken()
	if !ok {
		return "", c, c.Expected("any token")
	}
	return tok, next, nil
}

// String decodes the next token into a fresh copy that does not keep the
// input alive.
func String[T Tokenizer, W Whitespace, C Comparator](c Cursor[T, W, C]) (string, Cursor[T, W, C], error) {
	tok, next, err := Str(c)
	if err != nil {
		return "", c, err
	}
	return strings.Clone(tok), next, nil
}

// Unit always succeeds and consumes nothing.
func Unit[T Tokenizer, W Whitespace, C Comparator](c Cursor[T, W, C]) (struct{}, Cursor[T, W, C], error) {
	return struct{}{}, c, nil
}
