// Package writer serializes workbook models into OOXML spreadsheet packages.
package writer

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnName returns the letters for a zero-based column index
// (0 -> "A", 25 -> "Z", 26 -> "AA"). Letters form a base-26 numeral
// system without a zero digit.
func ColumnName(col int) string {
	if col < 0 {
		return ""
	}
	// 14 letters cover every int64 index.
	var buf [14]byte
	i := len(buf)
	n := uint64(col) + 1
	for n > 0 {
		modulo := (n - 1) % 26
		i--
		buf[i] = byte('A' + modulo)
		n = (n - modulo) / 26
	}
	return string(buf[i:])
}

// ColumnNumber parses column letters into a 1-based column number.
func ColumnNumber(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("invalid column name %q", name)
	}
	n := 0
	for _, r := range strings.ToUpper(name) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column name %q", name)
		}
		n = n*26 + int(r-'A') + 1
		if n > 1<<31 {
			return 0, fmt.Errorf("column name %q out of range", name)
		}
	}
	return n, nil
}

// CellRef renders the A1 address for a 1-based row and zero-based column.
func CellRef(row, col int) string {
	return ColumnName(col) + strconv.Itoa(row)
}
