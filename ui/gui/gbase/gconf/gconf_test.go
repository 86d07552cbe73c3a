package gconf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMissingFileYieldsDefaults(t *testing.T) {
	w, err := NewGUIConfigWorkerFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("NewGUIConfigWorkerFrom: %v", err)
	}
	c := w.Config
	if c.Theme != "light" || c.Lang != "en" || c.HumanColor != "black" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Selector != "minimax" || c.Level != 3 || c.AssetsDir != "assets" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestInvalidValuesAreClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clickchess.json")
	raw := `{"theme":"pink","language":"xx","human_color":"green","selector":"stockfish","level":99,"assets_dir":"","window_h":10,"window_w":10}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := NewGUIConfigWorkerFrom(path)
	if err != nil {
		t.Fatalf("NewGUIConfigWorkerFrom: %v", err)
	}
	c := w.Config
	if c.Theme != "light" || c.Lang != "en" || c.HumanColor != "black" || c.Selector != "minimax" {
		t.Fatalf("clamp failed: %+v", c)
	}
	if c.Level != 3 || c.AssetsDir != "assets" || c.WindowW != 1000 || c.WindowH != 700 {
		t.Fatalf("clamp failed: %+v", c)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clickchess.json")
	w, err := NewGUIConfigWorkerFrom(path)
	if err != nil {
		t.Fatalf("NewGUIConfigWorkerFrom: %v", err)
	}
	w.Config.Theme = "dark"
	w.Config.HumanColor = "white"
	w.Config.Level = 5
	if err := w.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	w2, err := NewGUIConfigWorkerFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if w2.Config.Theme != "dark" || w2.Config.HumanColor != "white" || w2.Config.Level != 5 {
		t.Fatalf("round trip lost values: %+v", w2.Config)
	}
}
