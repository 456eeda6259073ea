package scan

// Tokenizer decides the length of the token at the start of s. It returns
// false when it has no token to offer; the cursor then falls back to a single
// code point, or to end of input.
type Tokenizer interface {
	TokenLen(s string) (n int, ok bool)
}

// Whitespace decides how much leading whitespace is skippable (StripLen) and
// whether the whitespace at the start of s is an explicit token (TokenLen).
// The token text may be a slice of s or a canonical spelling such as "\n".
type Whitespace interface {
	StripLen(s string) int
	TokenLen(s string) (n int, tok string, ok bool)
}

// Comparator decides whether two strings are equal. It must be an
// equivalence relation.
type Comparator interface {
	Equal(a, b string) bool
}
