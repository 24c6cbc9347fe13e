// Package game holds the tic-tac-toe rules and the session history for termtac.
package game

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O", or "" for an empty cell.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return ""
}

// Opponent returns the other mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

// Size is the width and height of the board.
const Size = 3

// Cells is the number of cells on the board.
const Cells = Size * Size

// Board is a 3x3 grid stored row-major: cell = row*3 + col.
type Board [Cells]Mark

// Full returns true if no cell is empty.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of non-empty cells.
func (b Board) Count() int {
	n := 0
	for _, m := range b {
		if m != Empty {
			n++
		}
	}
	return n
}

// Set returns a copy of the board with cell set to m.
func (b Board) Set(cell int, m Mark) Board {
	b[cell] = m
	return b
}

// At returns the mark at the given column and row.
func (b Board) At(col, row int) Mark {
	return b[row*Size+col]
}
