package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtac/config"
)

const (
	labelOrder  = "Move Order"
	labelCoords = "Show Coordinates"
	labelGrid   = "Grid Lines"
	labelCursor = "Cursor Background"
)

// SettingsUI provides a form for the display preferences stored in the config file.
type SettingsUI struct {
	form     *tview.Form
	flex     *tview.Flex
	cfg      *config.Config
	onSave   func(*config.Config)
	onCancel func()
}

// NewSettings creates the settings form. onSave receives an edited copy of cfg.
func NewSettings(cfg *config.Config, onSave func(*config.Config), onCancel func()) *SettingsUI {
	s := &SettingsUI{
		cfg:      cfg,
		onSave:   onSave,
		onCancel: onCancel,
	}

	form := tview.NewForm()
	form.AddDropDown(labelOrder, []string{"Ascending", "Descending"}, 0, nil)
	form.AddCheckbox(labelCoords, false, nil)
	form.AddCheckbox(labelGrid, false, nil)
	form.AddCheckbox(labelCursor, false, nil)

	form.AddButton("Save", s.Submit)
	form.AddButton("Cancel", func() {
		if s.onCancel != nil {
			s.onCancel()
		}
	})
	form.SetCancelFunc(func() {
		if s.onCancel != nil {
			s.onCancel()
		}
	})

	form.SetBorder(true)
	form.SetTitle(" Settings ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonFocus)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Enter: confirm  |  Esc: back").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	s.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)
	s.form = form

	s.Reset()
	return s
}

// Form returns the flex container with form and help text.
func (s *SettingsUI) Form() *tview.Flex {
	return s.flex
}

// Reset loads the form fields from the config.
func (s *SettingsUI) Reset() {
	order := 0
	if !s.cfg.Ascending() {
		order = 1
	}
	s.dropDown(labelOrder).SetCurrentOption(order)
	s.checkbox(labelCoords).SetChecked(s.cfg.MoveList.ShowCoords)
	s.checkbox(labelGrid).SetChecked(s.cfg.Theme.UseGridLines)
	s.checkbox(labelCursor).SetChecked(s.cfg.Theme.DrawCursorBackground)
}

// Values returns a copy of the config with the form fields applied.
func (s *SettingsUI) Values() config.Config {
	c := *s.cfg
	c.MoveList.Order = config.OrderAscending
	if idx, _ := s.dropDown(labelOrder).GetCurrentOption(); idx == 1 {
		c.MoveList.Order = config.OrderDescending
	}
	c.MoveList.ShowCoords = s.checkbox(labelCoords).IsChecked()
	c.Theme.UseGridLines = s.checkbox(labelGrid).IsChecked()
	c.Theme.DrawCursorBackground = s.checkbox(labelCursor).IsChecked()
	return c
}

// Submit hands the edited config to onSave.
func (s *SettingsUI) Submit() {
	c := s.Values()
	if s.onSave != nil {
		s.onSave(&c)
	}
}

func (s *SettingsUI) dropDown(label string) *tview.DropDown {
	return s.form.GetFormItemByLabel(label).(*tview.DropDown)
}

func (s *SettingsUI) checkbox(label string) *tview.Checkbox {
	return s.form.GetFormItemByLabel(label).(*tview.Checkbox)
}
