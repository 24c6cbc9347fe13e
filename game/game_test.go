package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playAll applies moves and fails if any is refused.
func playAll(t *testing.T, g *Game, cells ...int) {
	t.Helper()
	for i, c := range cells {
		require.Truef(t, g.Play(c), "move %d (cell %d) was refused", i+1, c)
	}
}

func TestNewGame(t *testing.T) {
	g := New()

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.Position())
	assert.Equal(t, Board{}, g.Current())
	assert.Equal(t, X, g.Turn())
	assert.Equal(t, Status{State: InProgress, Next: X}, g.Status())
}

func TestPlayFirstMove(t *testing.T) {
	g := New()

	require.True(t, g.Play(0))

	assert.Equal(t, X, g.Current()[0])
	assert.Equal(t, 1, g.Position())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, Board{}, g.BoardAt(0), "earlier snapshot must not change")
	_, won := Detect(g.Current())
	assert.False(t, won)
	assert.Equal(t, O, g.Turn())
}

func TestPlayOccupiedIsIgnored(t *testing.T) {
	g := New()
	playAll(t, g, 4)
	before := g.History()

	assert.False(t, g.Play(4))
	assert.Equal(t, before, g.History())
	assert.Equal(t, 1, g.Position())
}

func TestPlayOutOfRangeIsIgnored(t *testing.T) {
	g := New()
	for _, c := range []int{-1, 9, 100} {
		assert.False(t, g.Play(c), "cell %d", c)
	}
	assert.Equal(t, 1, g.Len())
}

func TestWinEndsGame(t *testing.T) {
	g := New()
	playAll(t, g, 0, 1, 3, 2, 6)

	st := g.Status()
	assert.Equal(t, Won, st.State)
	assert.Equal(t, X, st.Winner)
	assert.Equal(t, Line{0, 3, 6}, st.Line)
	assert.Equal(t, "Winner: X", st.String())

	before := g.History()
	assert.False(t, g.Play(4), "play after a win must be a no-op")
	assert.Equal(t, before, g.History())
	assert.Equal(t, 5, g.Position())
}

func TestDraw(t *testing.T) {
	g := New()
	playAll(t, g, 0, 1, 2, 4, 3, 5, 7, 6, 8)

	want := Board{X, O, X, X, O, O, O, X, X}
	require.Equal(t, want, g.Current())

	_, won := Detect(g.Current())
	assert.False(t, won)
	assert.Equal(t, Draw, g.Status().State)
	assert.Equal(t, "Draw", g.Status().String())
}

func TestJumpToAndBranch(t *testing.T) {
	g := New()
	playAll(t, g, 0, 1)
	b0 := g.BoardAt(0)

	require.True(t, g.JumpTo(0))
	assert.Equal(t, 3, g.Len(), "jump must not alter history")
	assert.Equal(t, X, g.Turn())

	require.True(t, g.Play(5))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1, g.Position())
	assert.Equal(t, b0, g.BoardAt(0))
	assert.Equal(t, Board{}.Set(5, X), g.BoardAt(1))
}

func TestBranchTruncatesToKPlusTwo(t *testing.T) {
	for k := 0; k < 6; k++ {
		g := New()
		playAll(t, g, 0, 1, 2, 4, 3, 5, 7)

		require.True(t, g.JumpTo(k))
		cell := -1
		for c, m := range g.Current() {
			if m == Empty {
				cell = c
				break
			}
		}
		require.True(t, g.Play(cell))
		assert.Equal(t, k+2, g.Len(), "k=%d", k)
		assert.Equal(t, k+1, g.Position(), "k=%d", k)
	}
}

func TestJumpToOutOfRange(t *testing.T) {
	g := New()
	playAll(t, g, 0)

	assert.False(t, g.JumpTo(-1))
	assert.False(t, g.JumpTo(2))
	assert.Equal(t, 1, g.Position())
}

func TestJumpOutOfTerminalState(t *testing.T) {
	g := New()
	playAll(t, g, 0, 1, 3, 2, 6)

	require.True(t, g.JumpTo(4))
	assert.Equal(t, InProgress, g.Status().State)
	assert.Equal(t, X, g.Status().Next)

	// a different move from the same position replaces the old ending
	require.True(t, g.Play(7))
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, InProgress, g.Status().State)
}

func TestTurnParity(t *testing.T) {
	g := New()
	playAll(t, g, 4, 0, 8, 2, 1, 7, 3, 5, 6)

	for p := 0; p < g.Len(); p++ {
		require.True(t, g.JumpTo(p))
		want := X
		if p%2 == 1 {
			want = O
		}
		assert.Equal(t, want, g.Turn(), "position %d", p)
		if p > 0 {
			_, mark, ok := g.MoveAt(p)
			require.True(t, ok)
			assert.Equal(t, TurnAt(p-1), mark, "mark placed by move %d", p)
		}
	}
}

func TestMoveAt(t *testing.T) {
	g := New()
	playAll(t, g, 4, 0)

	_, _, ok := g.MoveAt(0)
	assert.False(t, ok)

	cell, mark, ok := g.MoveAt(1)
	require.True(t, ok)
	assert.Equal(t, 4, cell)
	assert.Equal(t, X, mark)

	cell, mark, ok = g.MoveAt(2)
	require.True(t, ok)
	assert.Equal(t, 0, cell)
	assert.Equal(t, O, mark)

	_, _, ok = g.MoveAt(3)
	assert.False(t, ok)
}

func TestOnChange(t *testing.T) {
	g := New()
	calls := 0
	g.OnChange(func(*Game) { calls++ })

	g.Play(0)
	g.Play(0) // ignored
	g.JumpTo(0)
	g.JumpTo(0) // same position
	g.JumpTo(5) // out of range
	assert.Equal(t, 2, calls)

	g.Reset()
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.Position())
}

func TestHistoryIsCopy(t *testing.T) {
	g := New()
	playAll(t, g, 0)

	h := g.History()
	h[1][0] = O
	assert.Equal(t, X, g.Current()[0])
}
