package scan_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-scan/pkg/compare"
	"github.com/shapestone/shape-scan/pkg/scan"
	"github.com/shapestone/shape-scan/pkg/tokenize"
	"github.com/shapestone/shape-scan/pkg/whitespace"
)

func TestBool(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"", false, true},
		{"true", true, false},
		{"false", false, false},
		{"  TRUE rest", true, false},
		{"yes", false, true},
		{"no", false, true},
		{"on", false, true},
		{"off", false, true},
		{"1", false, true},
		{"0", false, true},
		{"truest", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := cur(tt.input)
			got, next, err := scan.Bool(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, scan.ErrMismatch)
				assert.Equal(t, c.Offset(), next.Offset())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBool_ErrorMessage(t *testing.T) {
	_, _, err := scan.Bool(cur("maybe"))
	require.Error(t, err)
	assert.Equal(t, "at offset 0: expected `true` or `false`, got `maybe`", err.Error())
}

func TestBool_ExactComparator(t *testing.T) {
	c := scan.New("TRUE", tokenize.WordsAndInts{}, whitespace.Ignore{}, compare.Exact{})
	_, _, err := scan.Bool(c)
	assert.Error(t, err)
}

func TestChar(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantOff int
		wantErr bool
	}{
		{"", 0, 0, true},
		{"x", 'x', 1, false},
		{"xy", 'x', 1, false},
		{"日本語", '日', 3, false},
		{" x", ' ', 1, false},
		{"\xff", '\uFFFD', 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, next, err := scan.Char(cur(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "at offset 0: expected a character, got end of input", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOff, next.Offset())
		})
	}
}

func TestStr(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", "", true},
		{"   ", "", true},
		{"a", "a", false},
		{"a b", "a", false},
		{"abc", "abc", false},
		{"ab-c", "ab", false},
		{"-c", "-", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, _, err := scan.Str(cur(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "at offset 0: expected any token, got end of input", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStr_SharesInput(t *testing.T) {
	input := "hello world"
	got, _, err := scan.Str(cur(input))
	require.NoError(t, err)
	assert.True(t, unsafe.StringData(input) == unsafe.StringData(got))
}

func TestString_Owned(t *testing.T) {
	input := "hello world"
	got, next, err := scan.String(cur(input))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, 5, next.Offset())
	assert.False(t, unsafe.StringData(input) == unsafe.StringData(got))

	_, _, err = scan.String(cur(""))
	assert.Error(t, err)
}

func TestUnit(t *testing.T) {
	for _, input := range []string{"", "abc", "  "} {
		c := cur(input).Advance(1)
		got, next, err := scan.Unit(c)
		require.NoError(t, err)
		assert.Equal(t, struct{}{}, got)
		assert.Equal(t, c, next)
	}
}
