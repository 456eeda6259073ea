package scan

import (
	"fmt"
	"reflect"
	"strconv"
)

// Signed is the set of integer types Int can decode.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of integer types Uint can decode.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floating is the set of floating point types Float can decode.
type Floating interface {
	~float32 | ~float64
}

// Int decodes a decimal integer with an optional leading '-' from the current
// offset; whitespace is not skipped. Conversion is done by strconv.ParseInt
// at the width of I, and an out of range value is reported as a mismatch
// like any other.
func Int[I Signed, T Tokenizer, W Whitespace, C Comparator](c Cursor[T, W, C]) (I, Cursor[T, W, C], error) {
	bits, desc := describeInt[I]("integer")

	n, ok := IntLen(c.Tail())
	if !ok {
		return 0, c, c.Expected(desc)
	}
	s := c.SliceTo(n)
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, c, c.mismatchf("expected %s, got `%s`", desc, escape(s))
	}
	return I(v), c.Advance(n), nil
}

// Uint decodes an unsigned decimal integer from the current offset. A sign is
// never accepted.
func Uint[U Unsigned, T Tokenizer, W Whitespace, C Comparator](c Cursor[T, W, C]) (U, Cursor[T, W, C], error) {
	bits, desc := describeInt[U]("unsigned integer")

	n, ok := UintLen(c.Tail())
	if !ok {
		return 0, c, c.Expected(desc)
	}
	s := c.SliceTo(n)
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, c, c.mismatchf("expected %s, got `%s`", desc, escape(s))
	}
	return U(v), c.Advance(n), nil
}

// Float decodes a decimal real number from the current offset, using
// strconv.ParseFloat at the width of F. See FloatLen for the accepted syntax.
func Float[F Floating, T Tokenizer, W Whitespace, C Comparator](c Cursor[T, W, C]) (F, Cursor[T, W, C], error) {
	const desc = "a real number"
	bits := reflect.TypeFor[F]().Bits()

	n, ok := FloatLen(c.Tail())
	if !ok {
		return 0, c, c.Expected(desc)
	}
	s := c.SliceTo(n)
	v, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, c, c.mismatchf("expected %s, got `%s`", desc, escape(s))
	}
	return F(v), c.Advance(n), nil
}

// describeInt returns the bit width of N and a description such as
// "an integer" for int or "a 32-bit integer" for int32.
func describeInt[N Signed | Unsigned](noun string) (int, string) {
	t := reflect.TypeFor[N]()
	switch t.Kind() {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return t.Bits(), article(noun) + " " + noun
	}
	sized := fmt.Sprintf("%d-bit %s", t.Bits(), noun)
	return t.Bits(), article(sized) + " " + sized
}

// article picks "a" or "an" for s. Only the starts of the descriptions built
// by describeInt are handled; '8' is there for "an 8-bit".
func article(s string) string {
	switch s[0] {
	case 'a', 'e', 'i', 'o', 'u', '8':
		return "an"
	}
	return "a"
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// UintLen returns the length of the run of ASCII decimal digits at the start
// of s. Underscores and other bases are not supported.
func UintLen(s string) (int, bool) {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n, n > 0
}

// IntLen returns the length of an optional '-' followed by one or more ASCII
// decimal digits at the start of s.
func IntLen(s string) (int, bool) {
	sign := 0
	if len(s) > 0 && s[0] == '-' {
		sign = 1
	}
	n, ok := UintLen(s[sign:])
	if !ok {
		return 0, false
	}
	return sign + n, true
}

type floatState int

const (
	floatStart floatState = iota
	floatWhole
	floatSuffix
	floatExponentStart
	floatExponent
)

// FloatLen returns the length of the longest real number literal at the start
// of s: an optional '-', one or more digits, an optional '.' with one or more
// digits, and an optional exponent ('e' or 'E', an optional sign, one or more
// digits).
//
// A trailing part that never completes is left unconsumed rather than
// rejected: "1e" and "1.x" both scan as "1". Range is not validated here.
func FloatLen(s string) (int, bool) {
	state := floatStart
	end := 0 // end of the longest complete literal so far

	for i := 0; i < len(s); i++ {
		c := s[i]
		// A '.' or exponent marker may only follow a digit.
		afterDigit := end == i && end > 0

		switch state {
		case floatStart:
			switch {
			case isDigit(c):
				end = i + 1
			case c != '-':
				return 0, false
			}
			state = floatWhole

		case floatWhole:
			switch {
			case isDigit(c):
				end = i + 1
			case c == '.' && afterDigit:
				state = floatSuffix
			case (c == 'e' || c == 'E') && afterDigit:
				state = floatExponentStart
			default:
				return end, end > 0
			}

		case floatSuffix:
			switch {
			case isDigit(c):
				end = i + 1
			case (c == 'e' || c == 'E') && afterDigit:
				state = floatExponentStart
			default:
				return end, end > 0
			}

		case floatExponentStart:
			switch {
			case isDigit(c):
				end = i + 1
				state = floatExponent
			case c == '+' || c == '-':
				state = floatExponent
			default:
				return end, end > 0
			}

		case floatExponent:
			if !isDigit(c) {
				return end, end > 0
			}
			end = i + 1
		}
	}

	return end, end > 0
}
