package game

import (
	"fmt"
	"strings"
)

// Cell notation:
// - Columns: a-c (left to right)
// - Rows: 1-3 (top to bottom)
// - Example: a1 is cell 0, b2 is cell 4, c3 is cell 8

// CellName converts a cell index to notation. Out of range cells return "-".
func CellName(cell int) string {
	if cell < 0 || cell >= Cells {
		return "-"
	}
	col := 'a' + rune(cell%Size)
	row := cell/Size + 1
	return fmt.Sprintf("%c%d", col, row)
}

// ParseCell converts notation like "b2" (or a bare index "4") to a cell index.
func ParseCell(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if len(s) == 1 && s[0] >= '0' && s[0] <= '8' {
		return int(s[0] - '0'), nil
	}
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid cell: %q", s)
	}

	col := int(s[0] - 'a')
	if col < 0 || col >= Size {
		return 0, fmt.Errorf("invalid column in cell: %q", s)
	}
	row := int(s[1] - '1')
	if row < 0 || row >= Size {
		return 0, fmt.Errorf("invalid row in cell: %q", s)
	}
	return row*Size + col, nil
}

// ParseMoves parses a comma or space separated list of cells.
func ParseMoves(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	cells := make([]int, 0, len(fields))
	for i, f := range fields {
		cell, err := ParseCell(f)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}
