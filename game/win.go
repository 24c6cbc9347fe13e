package game

// Line is a triple of cell indices.
type Line [3]int

// Lines are checked in this order: rows top to bottom, columns left to right, then diagonals.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Detect returns the first line whose cells hold the same non-empty mark.
// ok is false if there is none.
func Detect(b Board) (line Line, ok bool) {
	for _, l := range Lines {
		m := b[l[0]]
		if m != Empty && m == b[l[1]] && m == b[l[2]] {
			return l, true
		}
	}
	return Line{}, false
}

// Winner returns the mark owning the detected line, or Empty.
func Winner(b Board) Mark {
	line, ok := Detect(b)
	if !ok {
		return Empty
	}
	return b[line[0]]
}

// Contains reports whether cell is part of the line.
func (l Line) Contains(cell int) bool {
	return l[0] == cell || l[1] == cell || l[2] == cell
}
