package game

// Game tracks every board snapshot of a session and the one currently viewed.
// History index 0 is the empty board; index i is the board after move i.
type Game struct {
	history  []Board
	position int

	listeners []func(*Game)
}

// New creates a game with a single empty board.
func New() *Game {
	return &Game{history: []Board{{}}}
}

// OnChange registers a callback run after every state change.
func (g *Game) OnChange(fn func(*Game)) {
	g.listeners = append(g.listeners, fn)
}

func (g *Game) notify() {
	for _, fn := range g.listeners {
		fn(g)
	}
}

// Current returns the board at the current position.
func (g *Game) Current() Board {
	return g.history[g.position]
}

// Position returns the index of the viewed board.
func (g *Game) Position() int {
	return g.position
}

// Len returns the number of snapshots in the history.
func (g *Game) Len() int {
	return len(g.history)
}

// BoardAt returns snapshot i. It panics if i is out of range.
func (g *Game) BoardAt(i int) Board {
	return g.history[i]
}

// History returns a copy of all snapshots.
func (g *Game) History() []Board {
	return append([]Board(nil), g.history...)
}

// Turn returns the mark to play at the current position: X on even, O on odd.
func (g *Game) Turn() Mark {
	return TurnAt(g.position)
}

// TurnAt returns the mark to play after p moves.
func TurnAt(p int) Mark {
	if p%2 == 0 {
		return X
	}
	return O
}

// Status derives the status of the viewed board.
func (g *Game) Status() Status {
	return StatusOf(g.Current(), g.Turn())
}

// Play puts the current turn's mark on cell. Moves on an occupied cell,
// out of range, or after the viewed board is decided are ignored and
// return false. Any snapshots after the current position are discarded.
func (g *Game) Play(cell int) bool {
	if cell < 0 || cell >= Cells {
		return false
	}
	cur := g.Current()
	if cur[cell] != Empty {
		return false
	}
	if _, won := Detect(cur); won {
		return false
	}

	next := cur.Set(cell, g.Turn())
	g.history = append(g.history[:g.position+1], next)
	g.position = len(g.history) - 1
	g.notify()
	return true
}

// JumpTo views snapshot position without altering the history.
// Returns false if position is out of range.
func (g *Game) JumpTo(position int) bool {
	if position < 0 || position >= len(g.history) {
		return false
	}
	if position != g.position {
		g.position = position
		g.notify()
	}
	return true
}

// MoveAt returns the cell and mark placed by move i (i >= 1).
func (g *Game) MoveAt(i int) (cell int, mark Mark, ok bool) {
	if i <= 0 || i >= len(g.history) {
		return -1, Empty, false
	}
	prev, cur := g.history[i-1], g.history[i]
	for c := range cur {
		if prev[c] != cur[c] {
			return c, cur[c], true
		}
	}
	return -1, Empty, false
}

// Reset drops the whole history and starts from an empty board.
func (g *Game) Reset() {
	g.history = []Board{{}}
	g.position = 0
	g.notify()
}
