package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the palette shared by the list and status controls.
var MenuColors = struct {
	Border      tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(60),  // Muted blue-gray
	Label:       tcell.PaletteColor(250), // Light gray
	Hint:        tcell.PaletteColor(245), // Dim gray
	ButtonFocus: tcell.PaletteColor(109), // Brighter blue
	ButtonText:  tcell.PaletteColor(255), // White
}
