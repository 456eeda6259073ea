package tokenize

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// fallback is the subset of the tokenizer contract a Matchers value defers
// to when none of its matchers fire.
type fallback interface {
	TokenLen(s string) (int, bool)
}

// Matchers adapts Shape tokenizer matchers into a tokenizer policy, so token
// definitions written for shape-core (StringMatcherFunc, CharMatcherFunc or a
// custom Matcher) can drive a scan cursor.
//
// Matchers are tried in order of specificity, as in a shape-core tokenizer:
// the first one returning a token wins. A matcher must return a token whose
// value is the matched source text; tokens that are not a prefix of the
// residual input are ignored.
//
// Every call hands the matchers a fresh shape-core stream, which copies the
// text it is given. Without a window that text is the whole remaining input,
// so a full scan is quadratic. Literals sets the window for you; custom
// matchers should use WithWindow whenever their tokens have a bounded length.
//
// Unlike the other policies, a Matchers value holds a slice and is therefore
// not comparable.
type Matchers struct {
	name     string
	matchers []tokenizer.Matcher
	window   int
	next     fallback
}

// NewMatchers creates a tokenizer policy from shape-core matchers.
// The name identifies the policy in cursor debug output.
func NewMatchers(name string, matchers ...tokenizer.Matcher) Matchers {
	return Matchers{
		name:     name,
		matchers: slices.Clone(matchers),
	}
}

// Literals creates a tokenizer policy matching a fixed set of literal
// strings, such as operators or punctuation. Longer literals are tried first
// so that "==" wins over "=" (as CRLF is matched before LF).
func Literals(kind string, literals ...string) Matchers {
	sorted := slices.Clone(literals)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	matchers := make([]tokenizer.Matcher, 0, len(sorted))
	for _, lit := range sorted {
		if lit == "" {
			continue
		}
		matchers = append(matchers, tokenizer.StringMatcherFunc(kind, lit))
	}
	m := NewMatchers(kind, matchers...)
	if len(sorted) > 0 {
		m.window = max(1, len(sorted[0]))
	}
	return m
}

// WithWindow returns a copy of m whose matchers see at most the next n bytes
// of input, extended to the end of a code point. A token longer than the
// window is cut short or missed, so n must cover the longest token the
// matchers produce. n <= 0 removes the window.
func (m Matchers) WithWindow(n int) Matchers {
	m.window = max(0, n)
	return m
}

// Or returns a copy of m that defers to next when none of its matchers fire.
func (m Matchers) Or(next fallback) Matchers {
	m.next = next
	return m
}

// TokenLen implements the tokenizer contract.
func (m Matchers) TokenLen(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	if len(m.matchers) > 0 {
		stream := tokenizer.NewStream(m.clip(s))
		for _, match := range m.matchers {
			tok := match(stream.Clone())
			if tok == nil {
				continue
			}
			value := tok.ValueString()
			if value == "" || !strings.HasPrefix(s, value) {
				continue
			}
			return len(value), true
		}
	}

	if m.next != nil {
		return m.next.TokenLen(s)
	}
	return 0, false
}

// clip cuts s to the window, never inside a code point.
func (m Matchers) clip(s string) string {
	if m.window <= 0 || len(s) <= m.window {
		return s
	}
	n := m.window
	for n < len(s) && !utf8.RuneStart(s[n]) {
		n++
	}
	return s[:n]
}

func (m Matchers) String() string {
	if m.next != nil {
		return fmt.Sprintf("Matchers(%s)|%v", m.name, m.next)
	}
	return fmt.Sprintf("Matchers(%s)", m.name)
}
