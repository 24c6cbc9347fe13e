package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termtac/config"
	"termtac/game"
)

// GameView ties the board, the move list and the status bar to one game.
type GameView struct {
	app       *tview.Application
	game      *game.Game
	log       *zap.SugaredLogger
	Board     *BoardUI
	Moves     *MoveListUI
	hint      *tview.TextView
	frame     *tview.Flex
	focusMode bool

	// OnSettings is called when the settings screen is requested.
	OnSettings func()
}

// NewGameView builds the game screen and subscribes it to changes of g.
func NewGameView(app *tview.Application, g *game.Game, cfg *config.Config, log *zap.SugaredLogger) *GameView {
	v := &GameView{
		app:   app,
		game:  g,
		log:   log,
		Board: NewBoard(g, cfg, log),
		Moves: NewMoveList(g, cfg.Ascending(), cfg.MoveList.ShowCoords),
		hint:  tview.NewTextView(),
		frame: tview.NewFlex(),
	}

	v.hint.SetBorder(true)
	v.hint.SetBorderPadding(0, 0, 1, 1)
	v.hint.SetTitle(" Status ")
	v.hint.SetTitleAlign(tview.AlignLeft)
	v.hint.SetTextColor(MenuColors.Hint)
	v.hint.SetBorderColor(MenuColors.Border)

	v.Board.Box.SetInputCapture(v.Board.HandleKey)

	g.OnChange(func(*game.Game) {
		v.refresh()
	})

	v.RebuildNormalLayout()
	v.refresh()
	return v
}

// Frame returns the root layout of the game screen.
func (v *GameView) Frame() *tview.Flex {
	return v.frame
}

// HandleKey processes keys that work regardless of which control has focus.
func (v *GameView) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		if v.focusMode {
			return nil
		}
		if v.Board.Box.HasFocus() {
			v.app.SetFocus(v.Moves.List())
		} else {
			v.app.SetFocus(v.Board.Box)
		}
		return nil
	case tcell.KeyEscape:
		v.Board.ResetSelection()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if v.Board.SelectedCell() != -1 {
				v.Board.ResetSelection()
			} else {
				v.app.Stop()
			}
			return nil
		case 'n':
			v.log.Debugw("new game", "discarded_moves", v.game.Len()-1)
			v.Board.ResetSelection()
			v.game.Reset()
			return nil
		case 's':
			v.Moves.ToggleOrder()
			return nil
		case 'f':
			v.ToggleFocusMode()
			return nil
		case 'o':
			if v.OnSettings != nil {
				v.OnSettings()
			}
			return nil
		}
	}
	return event
}

// ApplyConfig redraws the board and move list with new display settings.
func (v *GameView) ApplyConfig(cfg *config.Config) {
	v.Board.SetConfig(cfg)
	v.Moves.SetOptions(cfg.Ascending(), cfg.MoveList.ShowCoords)
	v.refreshHint()
}

// ToggleFocusMode switches between the full layout and the board alone.
func (v *GameView) ToggleFocusMode() bool {
	v.SetFocusMode(!v.focusMode)
	return v.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (v *GameView) SetFocusMode(enabled bool) {
	v.focusMode = enabled
	if enabled {
		v.BuildFocusLayout()
	} else {
		v.RebuildNormalLayout()
	}
	v.app.SetFocus(v.Board.Box)
	v.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (v *GameView) IsFocusMode() bool {
	return v.focusMode
}

func (v *GameView) refresh() {
	v.Moves.Refresh()
	v.refreshHint()
}

func (v *GameView) refreshHint() {
	if v.focusMode {
		v.hint.SetText(fmt.Sprintf("  %s   f to toggle", v.game.Status()))
		return
	}

	st := v.game.Status()
	statusLine := fmt.Sprintf("  %s\n", st)
	if st.Over() && v.game.Position() == v.game.Len()-1 {
		statusLine = fmt.Sprintf("  %s · n new game\n", st)
	}
	controlsLine := "  hjkl/↑↓←→ move  ⏎ play  tab list  s sort  n new  o settings  f focus  q quit"

	v.hint.SetText(statusLine + controlsLine)
}

// RebuildNormalLayout lays out the board and move list side by side above the status bar.
func (v *GameView) RebuildNormalLayout() {
	v.frame.Clear()

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(v.Board.Box, 0, 1, true)
	boardRow.AddItem(v.Moves.List(), 34, 0, false)

	v.frame.SetDirection(tview.FlexRow)
	v.frame.AddItem(boardRow, 0, 1, true)
	v.frame.AddItem(v.hint, 4, 0, false)
}

// BuildFocusLayout centers the board alone with a one line hint.
func (v *GameView) BuildFocusLayout() {
	v.frame.Clear()

	v.frame.SetDirection(tview.FlexRow)
	v.frame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(v.Board.Box, boardWidth+1, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	v.frame.AddItem(centerRow, boardHeight+1, 0, true)
	v.frame.AddItem(nil, 0, 1, false)
	v.frame.AddItem(v.hint, 3, 0, false)
}
