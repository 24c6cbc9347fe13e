package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtac/game"
)

// MoveEntry is one line of the move list.
type MoveEntry struct {
	Position int
	Label    string
	Current  bool
}

// MoveEntries lists every history position of g, first move first when
// ascending is set and last move first otherwise.
func MoveEntries(g *game.Game, ascending, showCoords bool) []MoveEntry {
	entries := make([]MoveEntry, g.Len())
	for i := range entries {
		var label string
		current := i == g.Position()
		switch {
		case current:
			label = fmt.Sprintf("You are at move #%d", i)
		case i == 0:
			label = "go to game start"
		default:
			label = fmt.Sprintf("go to move #%d", i)
		}
		if showCoords {
			if cell, mark, ok := g.MoveAt(i); ok {
				label += fmt.Sprintf(" (%s %s)", mark, game.CellName(cell))
			}
		}

		idx := i
		if !ascending {
			idx = len(entries) - 1 - i
		}
		entries[idx] = MoveEntry{Position: i, Label: label, Current: current}
	}
	return entries
}

// SortLabel is the caption of the order toggle.
func SortLabel(ascending bool) string {
	if ascending {
		return "change to descending"
	}
	return "change to ascending"
}

// MoveListUI shows the history of the game and jumps to a position on selection.
type MoveListUI struct {
	list       *tview.List
	game       *game.Game
	entries    []MoveEntry
	ascending  bool
	showCoords bool
}

// NewMoveList creates the move list for g.
func NewMoveList(g *game.Game, ascending, showCoords bool) *MoveListUI {
	m := &MoveListUI{
		list:       tview.NewList(),
		game:       g,
		ascending:  ascending,
		showCoords: showCoords,
	}

	m.list.SetBorder(true)
	m.list.SetTitleAlign(tview.AlignLeft)
	m.list.ShowSecondaryText(false)
	m.list.SetHighlightFullLine(true)
	m.list.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	m.list.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	m.Refresh()
	return m
}

// List returns the underlying tview component.
func (m *MoveListUI) List() *tview.List {
	return m.list
}

// Ascending reports the current display order.
func (m *MoveListUI) Ascending() bool {
	return m.ascending
}

// ToggleOrder flips between ascending and descending order.
func (m *MoveListUI) ToggleOrder() {
	m.ascending = !m.ascending
	m.Refresh()
}

// SetOptions changes order and coordinate display and redraws the list.
func (m *MoveListUI) SetOptions(ascending, showCoords bool) {
	m.ascending = ascending
	m.showCoords = showCoords
	m.Refresh()
}

// Entries returns the entries as currently displayed.
func (m *MoveListUI) Entries() []MoveEntry {
	return m.entries
}

// Refresh rebuilds the list from the game history.
func (m *MoveListUI) Refresh() {
	m.entries = MoveEntries(m.game, m.ascending, m.showCoords)
	m.list.Clear()
	m.list.SetTitle(fmt.Sprintf(" Moves · s: %s ", SortLabel(m.ascending)))

	for i, e := range m.entries {
		pos := e.Position
		text := "  " + tview.Escape(e.Label)
		if e.Current {
			text = "[::b]> " + tview.Escape(e.Label) + "[::-]"
		}
		m.list.AddItem(text, "", 0, func() {
			m.game.JumpTo(pos)
		})
		if e.Current {
			m.list.SetCurrentItem(i)
		}
	}
}
