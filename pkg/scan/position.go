package scan

import (
	"github.com/shapestone/shape-core/pkg/ast"
)

// Locate converts a byte offset into input to a shape-core AST position with
// 1-based line and column numbers. Columns count code points. A line ends at
// "\r\n", "\r" or "\n", the same terminators the whitespace policies know.
// Offsets outside the input are clamped.
func Locate(input string, offset int) ast.Position {
	offset = max(0, min(offset, len(input)))

	line, column := 1, 1
	afterCR := false
	for _, r := range input[:offset] {
		switch {
		case r == '\n' && afterCR:
			// second half of "\r\n"
		case r == '\n' || r == '\r':
			line++
			column = 1
		default:
			column++
		}
		afterCR = r == '\r'
	}

	return ast.NewPosition(offset, line, column)
}
