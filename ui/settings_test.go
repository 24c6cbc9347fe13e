package ui

import (
	"testing"

	"termtac/config"
)

func TestSettingsReflectConfig(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.MoveList.Order = config.OrderDescending
	cfg.Theme.UseGridLines = false

	s := NewSettings(&cfg, nil, nil)
	got := s.Values()
	if got != cfg {
		t.Fatalf("untouched form should reproduce the config:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestSettingsSubmit(t *testing.T) {
	cfg := config.DefaultConfig
	var saved *config.Config
	s := NewSettings(&cfg, func(c *config.Config) { saved = c }, nil)

	s.dropDown(labelOrder).SetCurrentOption(1)
	s.checkbox(labelCoords).SetChecked(false)
	s.Submit()

	if saved == nil {
		t.Fatal("onSave was not called")
	}
	if saved.MoveList.Order != config.OrderDescending {
		t.Errorf("order = %q, want %q", saved.MoveList.Order, config.OrderDescending)
	}
	if saved.MoveList.ShowCoords {
		t.Error("show coords should be off")
	}
	if err := saved.Validate(); err != nil {
		t.Errorf("saved config should validate: %v", err)
	}
	if cfg.MoveList.Order != config.OrderAscending {
		t.Error("the shared config must not change before onSave applies it")
	}

	s.Reset()
	if s.Values().MoveList.Order != config.OrderAscending {
		t.Error("Reset should reload fields from the config")
	}
}

func TestGameViewApplyConfig(t *testing.T) {
	v, g := newTestView(t, config.DefaultConfig)
	playMoves(t, g, 4)

	cfg := config.DefaultConfig
	cfg.MoveList.Order = config.OrderDescending
	cfg.MoveList.ShowCoords = false
	v.ApplyConfig(&cfg)

	if v.Moves.Ascending() {
		t.Error("move list should be descending")
	}
	if e := v.Moves.Entries()[0]; e.Position != 1 || e.Label != "You are at move #1" {
		t.Errorf("first entry = %+v", e)
	}
}
