// Package ui provides custom controls for tview to play tic-tac-toe in the terminal.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termtac/config"
	"termtac/game"
)

// Board drawing geometry: each cell is 3 columns wide, separated by one
// column of grid line; rows are separated by one line.
const (
	boardLeft   = 4
	boardTop    = 1
	cellWidth   = 3
	cellStride  = cellWidth + 1
	rowStride   = 2
	boardWidth  = boardLeft + game.Size*cellStride - 1
	boardHeight = boardTop + game.Size*rowStride - 1
)

type BoardUI struct {
	Box    *tview.Box
	game   *game.Game
	cfg    *config.Config
	log    *zap.SugaredLogger
	selX   int
	selY   int
	styles boardStyles
}

type boardStyles struct {
	grid   tcell.Style
	x      tcell.Style
	o      tcell.Style
	cursor tcell.Color
	win    tcell.Color
	last   tcell.Color
}

// NewBoard creates the board control for g.
func NewBoard(g *game.Game, c *config.Config, log *zap.SugaredLogger) *BoardUI {
	b := &BoardUI{
		Box:  tview.NewBox(),
		game: g,
		log:  log,
		selX: -1,
		selY: -1,
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(b.draw)
	return b
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = boardStyles{
		grid:   tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.GridColor)),
		x:      tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.XColor)).Bold(true),
		o:      tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.OColor)).Bold(true),
		cursor: tcell.PaletteColor(c.Theme.Colors.CursorColorBG),
		win:    tcell.PaletteColor(c.Theme.Colors.WinColorBG),
		last:   tcell.PaletteColor(c.Theme.Colors.LastPlayedFG),
	}
	b.cfg = c
}

// SelectedCell returns the cell under the cursor, or -1 if there is no cursor.
func (b *BoardUI) SelectedCell() int {
	if b.selX == -1 && b.selY == -1 {
		return -1
	}
	return b.selY*game.Size + b.selX
}

// MoveSelection moves the cursor. The first call places it on the
// center cell instead of moving it.
func (b *BoardUI) MoveSelection(h, v int) {
	if b.SelectedCell() == -1 {
		b.selX, b.selY = game.Size/2, game.Size/2
		return
	}
	if b.selX+h < 0 || b.selX+h >= game.Size {
		return
	}
	if b.selY+v < 0 || b.selY+v >= game.Size {
		return
	}
	b.selX += h
	b.selY += v
}

func (b *BoardUI) ResetSelection() {
	b.selX = -1
	b.selY = -1
}

// PlayCell plays the current turn on cell. Refused moves are only logged.
func (b *BoardUI) PlayCell(cell int) bool {
	pos, turn, length := b.game.Position(), b.game.Turn(), b.game.Len()
	if !b.game.Play(cell) {
		b.log.Debugw("move ignored",
			"cell", game.CellName(cell),
			"position", pos,
			"status", b.game.Status().String())
		return false
	}
	b.log.Debugw("move played",
		"cell", game.CellName(cell),
		"mark", turn.String(),
		"position", b.game.Position(),
		"discarded", length-1-pos)
	return true
}

// PlaySelected plays on the cell under the cursor.
func (b *BoardUI) PlaySelected() bool {
	cell := b.SelectedCell()
	if cell == -1 {
		return false
	}
	return b.PlayCell(cell)
}

// HandleKey processes cursor and play keys. It returns nil for handled
// events so they do not reach other controls.
func (b *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveSelection(0, -1)
	case tcell.KeyDown:
		b.MoveSelection(0, 1)
	case tcell.KeyLeft:
		b.MoveSelection(-1, 0)
	case tcell.KeyRight:
		b.MoveSelection(1, 0)
	case tcell.KeyEnter:
		b.PlaySelected()
	case tcell.KeyRune:
		r := event.Rune()
		switch {
		case r == 'h':
			b.MoveSelection(-1, 0)
		case r == 'j':
			b.MoveSelection(0, 1)
		case r == 'k':
			b.MoveSelection(0, -1)
		case r == 'l':
			b.MoveSelection(1, 0)
		case r == ' ':
			b.PlaySelected()
		case r >= '1' && r <= '9':
			cell := int(r - '1')
			b.selX, b.selY = cell%game.Size, cell/game.Size
			b.PlayCell(cell)
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	board := b.game.Current()
	st := b.game.Status()
	lastCell, _, hasLast := b.game.MoveAt(b.game.Position())

	drawCoordinates(screen, x, y, b.styles.grid)

	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			cell := row*game.Size + col
			style := tcell.StyleDefault
			r := b.cfg.Theme.Symbols.Empty
			switch board[cell] {
			case game.X:
				r = b.cfg.Theme.Symbols.X
				style = b.styles.x
			case game.O:
				r = b.cfg.Theme.Symbols.O
				style = b.styles.o
			}
			if hasLast && cell == lastCell && b.cfg.Theme.HighlightLastPlayed {
				style = style.Foreground(b.styles.last)
			}
			if st.State == game.Won && st.Line.Contains(cell) {
				style = style.Background(b.styles.win)
			}

			selected := cell == b.SelectedCell()
			if selected && b.cfg.Theme.DrawCursorBackground {
				style = style.Background(b.styles.cursor)
			}
			left, top := x+boardLeft+col*cellStride, y+boardTop+row*rowStride
			drawCell(screen, style, r, left, top, selected && !b.cfg.Theme.DrawCursorBackground)
		}
	}
	drawGrid(screen, x, y, b.styles.grid, b.cfg.Theme.UseGridLines)

	return x, y, boardWidth, boardHeight
}

// drawCell draws a mark centered in a cell, or in brackets when it carries the cursor.
func drawCell(s tcell.Screen, style tcell.Style, r rune, l, t int, brackets bool) {
	left, right := ' ', ' '
	if brackets {
		left, right = '[', ']'
	}
	s.SetContent(l, t, left, nil, style)
	s.SetContent(l+1, t, r, nil, style)
	s.SetContent(l+2, t, right, nil, style)
}

// drawGrid draws the separators between cells.
func drawGrid(s tcell.Screen, x, y int, style tcell.Style, lines bool) {
	vert, horiz, cross := '│', '─', '┼'
	if !lines {
		vert, horiz, cross = ' ', ' ', ' '
	}
	for row := 0; row < game.Size; row++ {
		top := y + boardTop + row*rowStride
		for col := 0; col < game.Size-1; col++ {
			s.SetContent(x+boardLeft+col*cellStride+cellWidth, top, vert, nil, style)
		}
		if row == game.Size-1 {
			continue
		}
		for i := 0; i < game.Size*cellStride-1; i++ {
			r := horiz
			if i%cellStride == cellWidth {
				r = cross
			}
			s.SetContent(x+boardLeft+i, top+1, r, nil, style)
		}
	}
}

// drawCoordinates draws column letters above and row numbers left of the board.
func drawCoordinates(s tcell.Screen, x, y int, style tcell.Style) {
	for col := 0; col < game.Size; col++ {
		s.SetContent(x+boardLeft+col*cellStride+1, y, rune('a'+col), nil, style)
	}
	for row := 0; row < game.Size; row++ {
		s.SetContent(x+1, y+boardTop+row*rowStride, rune('1'+row), nil, style)
	}
}
