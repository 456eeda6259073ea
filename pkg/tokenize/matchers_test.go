package tokenize

import (
	"strings"
	"testing"
	"unicode"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// hexMatcher matches "0x" followed by one or more hex digits, in the style of
// a shape-core custom matcher.
func hexMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for _, want := range "0x" {
			r, ok := stream.NextChar()
			if !ok || r != want {
				return nil
			}
			value = append(value, r)
		}
		for {
			r, ok := stream.PeekChar()
			if !ok || !unicode.Is(unicode.ASCII_Hex_Digit, r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 2 {
			return nil
		}
		return tokenizer.NewToken("Hex", value)
	}
}

func TestLiterals(t *testing.T) {
	ops := Literals("Op", "=", "==", "!=", "<", "<=")

	runTokenLenCases(t, ops, []tokenLenCase{
		{"", 0, false},
		{"=", 1, true},
		{"==", 2, true},
		{"===", 2, true},
		{"<=x", 2, true},
		{"<x", 1, true},
		{"!x", 0, false},
		{"abc", 0, false},
	})
}

func TestLiterals_IgnoresEmpty(t *testing.T) {
	runTokenLenCases(t, Literals("Op", "", "+"), []tokenLenCase{
		{"x", 0, false},
		{"+", 1, true},
	})
}

func TestMatchers_Custom(t *testing.T) {
	m := NewMatchers("Number", hexMatcher())

	runTokenLenCases(t, m, []tokenLenCase{
		{"0xff rest", 4, true},
		{"0x", 0, false},
		{"0xg", 0, false},
		{"12", 0, false},
	})
}

func TestMatchers_Or(t *testing.T) {
	m := NewMatchers("Number", hexMatcher(), tokenizer.CharMatcherFunc("Arrow", '→')).Or(WordsAndInts{})

	runTokenLenCases(t, m, []tokenLenCase{
		{"0x1f+", 4, true},
		{"→x", 3, true},
		{"123abc", 3, true},
		{"abc123", 3, true},
		{"+", 0, false},
	})
}

func TestMatchers_Empty(t *testing.T) {
	runTokenLenCases(t, NewMatchers("none"), []tokenLenCase{
		{"", 0, false},
		{"abc", 0, false},
	})
}

// countingMatcher never matches; it adds the number of code points the
// stream offers to *seen.
func countingMatcher(seen *int) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		for {
			if _, ok := stream.NextChar(); !ok {
				return nil
			}
			*seen++
		}
	}
}

func TestMatchers_WithWindow(t *testing.T) {
	tests := []struct {
		name   string
		window int
		input  string
		want   int
	}{
		{"no window", 0, "abcdefgh", 8},
		{"window", 4, "abcdefgh", 4},
		{"window past end", 20, "abc", 3},
		{"negative", -1, "abcdefgh", 8},
		{"extends to code point end", 2, "日本語", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := 0
			m := NewMatchers("count", countingMatcher(&seen)).WithWindow(tt.window)
			if _, ok := m.TokenLen(tt.input); ok {
				t.Fatalf("TokenLen(%q) matched", tt.input)
			}
			if seen != tt.want {
				t.Errorf("matcher saw %d code points, want %d", seen, tt.want)
			}
		})
	}
}

func TestMatchers_WithWindow_CutsLongTokens(t *testing.T) {
	runTokenLenCases(t, NewMatchers("Number", hexMatcher()).WithWindow(3), []tokenLenCase{
		{"0xff", 3, true},
		{"0x1", 3, true},
	})
}

func TestLiterals_Window(t *testing.T) {
	ops := Literals("Op", "=", "==", "→")
	if ops.window != len("→") {
		t.Errorf("window = %d, want %d", ops.window, len("→"))
	}

	long := "==" + strings.Repeat("x", 4096)
	runTokenLenCases(t, ops, []tokenLenCase{
		{long, 2, true},
		{"→" + long, 3, true},
	})
}

// TestLiterals_ScanIsLinear pops every token of a long input and checks the
// matchers never see more than a bounded amount of text per token.
func TestLiterals_ScanIsLinear(t *testing.T) {
	seen := 0
	m := NewMatchers("Op", countingMatcher(&seen), tokenizer.StringMatcherFunc("Op", "+")).
		WithWindow(2).
		Or(IdentsAndInts{})

	input := strings.Repeat("a+", 5000)
	pops := 0
	for tail := input; tail != ""; pops++ {
		n, ok := m.TokenLen(tail)
		if !ok {
			t.Fatalf("no token at %q", tail[:min(len(tail), 10)])
		}
		tail = tail[n:]
	}

	if pops != len(input) {
		t.Fatalf("popped %d tokens, want %d", pops, len(input))
	}
	if seen > 2*pops {
		t.Errorf("matchers saw %d code points over %d tokens", seen, pops)
	}
}
