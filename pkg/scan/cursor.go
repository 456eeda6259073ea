package scan

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-scan/internal/runes"
)

// Cursor tracks scanning progress through an input string and gives access to
// the active tokenizer, whitespace policy and string comparator.
//
// A Cursor is an immutable value: every method returns a new cursor and
// leaves the receiver untouched.
type Cursor[T Tokenizer, W Whitespace, C Comparator] struct {
	input  string
	offset int
	tok    T
	ws     W
	cmp    C
	trace  *slog.Logger
}

// New creates a cursor at the start of input.
func New[T Tokenizer, W Whitespace, C Comparator](input string, tok T, ws W, cmp C) Cursor[T, W, C] {
	return NewWithOptions(input, tok, ws, cmp, DefaultOptions())
}

// NewWithOptions creates a cursor at the start of input with custom options.
func NewWithOptions[T Tokenizer, W Whitespace, C Comparator](input string, tok T, ws W, cmp C, opts Options) Cursor[T, W, C] {
	return Cursor[T, W, C]{
		input: input,
		tok:   tok,
		ws:    ws,
		cmp:   cmp,
		trace: opts.Trace,
	}
}

// Input returns the complete input, consumed or not.
func (c Cursor[T, W, C]) Input() string {
	return c.input
}

// Offset returns the number of bytes consumed, relative to the start of input.
func (c Cursor[T, W, C]) Offset() int {
	return c.offset
}

// Tokenizer returns the active tokenizer. Pattern layers use it to split
// expected literals the same way the input is split.
func (c Cursor[T, W, C]) Tokenizer() T {
	return c.tok
}

// Position returns the cursor's offset as a shape-core AST position.
func (c Cursor[T, W, C]) Position() ast.Position {
	return Locate(c.input, c.offset)
}

// PopWS returns a successor with all skippable leading whitespace removed.
// It always succeeds.
func (c Cursor[T, W, C]) PopWS() Cursor[T, W, C] {
	n := c.ws.StripLen(c.Tail())
	if n > 0 {
		c.debug("pop whitespace", slog.Int("len", n))
	}
	return c.Advance(n)
}

// PopToken pops the next token, returning it with the successor cursor.
//
// Skippable whitespace is removed first, which lets a whitespace policy keep
// the code points it wants surfaced. Then the whitespace policy may claim an
// explicit token, then the tokenizer, and finally a single code point is
// taken. At end of input ok is false.
func (c Cursor[T, W, C]) PopToken() (tok string, next Cursor[T, W, C], ok bool) {
	cur := c.PopWS()
	tail := cur.Tail()

	if n, s, ok := c.ws.TokenLen(tail); ok {
		c.debug("pop token", slog.String("source", "whitespace"), slog.String("token", s))
		return s, cur.Advance(n), true
	}

	// An empty tail does not rule out a token: a tokenizer may turn end of
	// input into one.
	if n, ok := c.tok.TokenLen(tail); ok {
		s := cur.SliceTo(n)
		c.debug("pop token", slog.String("source", "tokenizer"), slog.String("token", s))
		return s, cur.Advance(n), true
	}

	if cur.IsEmpty() {
		c.debug("pop token", slog.String("source", "end"))
		return "", cur, false
	}

	n := runes.FirstLen(tail)
	s := cur.SliceTo(n)
	c.debug("pop token", slog.String("source", "code point"), slog.String("token", s))
	return s, cur.Advance(n), true
}

// ExpectTok returns the successor cursor if the next token equals lit under
// the active comparator. On failure the receiver is returned with an error
// naming lit and the token found.
func (c Cursor[T, W, C]) ExpectTok(lit string) (Cursor[T, W, C], error) {
	tok, next, ok := c.PopToken()
	if ok && c.cmp.Equal(lit, tok) {
		c.debug("expect token", slog.String("token", lit), slog.Bool("match", true))
		return next, nil
	}
	c.debug("expect token", slog.String("token", lit), slog.Bool("match", false))
	return c, c.ExpectedTok(lit)
}

// ExpectEOF returns nil if no tokens remain.
//
// Depending on the tokenizer this is not necessarily the same as IsEmpty.
func (c Cursor[T, W, C]) ExpectEOF() error {
	if _, _, ok := c.PopToken(); ok {
		return c.ExpectedEOF()
	}
	return nil
}

// Advance returns a successor n bytes further along, clamped to the end of
// input. A negative n is treated as zero.
func (c Cursor[T, W, C]) Advance(n int) Cursor[T, W, C] {
	if rest := len(c.input) - c.offset; n > rest {
		n = rest
	}
	if n > 0 {
		c.offset += n
	}
	return c
}

// SliceTo returns the next n bytes of input, clamped to the end of input.
func (c Cursor[T, W, C]) SliceTo(n int) string {
	tail := c.Tail()
	if n > len(tail) {
		n = len(tail)
	}
	if n < 0 {
		n = 0
	}
	return tail[:n]
}

// SliceBetween returns the input between c (inclusive) and to (exclusive).
// Both cursors must come from the same input; if to is behind c the result is
// empty.
func (c Cursor[T, W, C]) SliceBetween(to Cursor[T, W, C]) string {
	end := min(to.offset, len(c.input))
	if end < c.offset {
		return ""
	}
	return c.input[c.offset:end]
}

// Tail returns the unconsumed remainder of the input.
func (c Cursor[T, W, C]) Tail() string {
	return c.input[c.offset:]
}

// IsEmpty reports whether the cursor is at the end of the input.
//
// This is a byte test. Depending on the tokenizer it is not necessarily the
// same as "no tokens remain"; see ExpectEOF.
func (c Cursor[T, W, C]) IsEmpty() bool {
	return c.offset == len(c.input)
}

// Equal compares two strings with the active comparator.
func (c Cursor[T, W, C]) Equal(a, b string) bool {
	return c.cmp.Equal(a, b)
}

// Expected returns a mismatch at the cursor's offset explaining that desc was
// expected, and naming the next token found instead.
func (c Cursor[T, W, C]) Expected(desc string) *Error {
	if tok, _, ok := c.PopToken(); ok {
		return c.mismatchf("expected %s, got `%s`", desc, escape(tok))
	}
	return c.mismatchf("expected %s, got end of input", desc)
}

// ExpectedTok returns a mismatch explaining that the token tok was expected.
func (c Cursor[T, W, C]) ExpectedTok(tok string) *Error {
	return c.ExpectedOneOf(tok)
}

// ExpectedEOF returns a mismatch explaining that end of input was expected.
func (c Cursor[T, W, C]) ExpectedEOF() *Error {
	return c.ExpectedOneOf()
}

// ExpectedOneOf returns a mismatch explaining that one of toks was expected.
// With a single token it is ExpectedTok; with none it is ExpectedEOF.
func (c Cursor[T, W, C]) ExpectedOneOf(toks ...string) *Error {
	want := strings.Join(lo.Map(toks, func(t string, _ int) string {
		return "`" + escape(t) + "`"
	}), ", ")

	got, _, ok := c.PopToken()
	switch {
	case len(toks) > 0 && ok:
		return c.mismatchf("expected %s, got `%s`", want, escape(got))
	case len(toks) > 0:
		return c.mismatchf("expected %s, got end of input", want)
	case ok:
		return c.mismatchf("expected end of input, got `%s`", escape(got))
	default:
		return c.mismatchf("expected end of input")
	}
}

// ExpectedMinRepeats returns a mismatch explaining that a repeated pattern
// matched got times where at least atLeast were required.
func (c Cursor[T, W, C]) ExpectedMinRepeats(atLeast, got int) *Error {
	return c.mismatchf("expected at least %d repeats, got %d", atLeast, got)
}

// String renders the cursor for debugging.
func (c Cursor[T, W, C]) String() string {
	return fmt.Sprintf("Cursor[%v, %v, %v]{offset: %d}", c.tok, c.ws, c.cmp, c.offset)
}

func (c Cursor[T, W, C]) mismatchf(format string, args ...any) *Error {
	return Mismatch(fmt.Sprintf(format, args...), c.offset)
}

func (c Cursor[T, W, C]) debug(msg string, attrs ...slog.Attr) {
	if c.trace == nil {
		return
	}
	ctx := context.Background()
	if !c.trace.Enabled(ctx, slog.LevelDebug) {
		return
	}
	c.trace.LogAttrs(ctx, slog.LevelDebug, msg, append([]slog.Attr{slog.Int("offset", c.offset)}, attrs...)...)
}

// escape renders s with Go escapes for control and invalid characters,
// without surrounding quotes.
func escape(s string) string {
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}
