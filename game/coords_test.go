package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellName(t *testing.T) {
	tests := []struct {
		cell int
		want string
	}{
		{0, "a1"},
		{2, "c1"},
		{4, "b2"},
		{6, "a3"},
		{8, "c3"},
		{-1, "-"},
		{9, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CellName(tt.cell), "CellName(%d)", tt.cell)
	}
}

func TestParseCell(t *testing.T) {
	for c := 0; c < Cells; c++ {
		got, err := ParseCell(CellName(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCell(" B2 ")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = ParseCell("7")
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	for _, bad := range []string{"", "9", "d1", "a4", "a0", "b22", "zz"} {
		_, err := ParseCell(bad)
		assert.Error(t, err, "ParseCell(%q)", bad)
	}
}

func TestParseMoves(t *testing.T) {
	cells, err := ParseMoves("a1, b1 a2,c1  a3")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 6}, cells)

	cells, err = ParseMoves("")
	require.NoError(t, err)
	assert.Empty(t, cells)

	_, err = ParseMoves("a1,x9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "move 2")
}
