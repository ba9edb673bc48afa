package trace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vinser/tilestep/internal/charutil"
)

const script = `
ticks: 12
turns:
  - tick: 1
    dir: down
  - tick: 6
    dir: Left
  - tick: 6
    dir: up
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(script))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Ticks != 12 {
		t.Errorf("Ticks = %d, want 12", s.Ticks)
	}
	turns := s.TurnMap()
	want := map[int]charutil.Direction{1: charutil.Down, 6: charutil.Up}
	if len(turns) != len(want) {
		t.Fatalf("TurnMap() = %v, want %v", turns, want)
	}
	for tick, d := range want {
		if turns[tick] != d {
			t.Errorf("turn at %d = %v, want %v", tick, turns[tick], d)
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad yaml", "ticks: [1"},
		{"negative ticks", "ticks: -1"},
		{"negative tick", "turns:\n  - tick: -2\n    dir: up\n"},
		{"bad direction", "turns:\n  - tick: 2\n    dir: north\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.in)); err == nil {
				t.Errorf("ParseScript(%q) succeeded", tt.in)
			}
		})
	}

	_, err := ParseScript([]byte("turns:\n  - tick: 2\n    dir: north\n"))
	if !errors.Is(err, charutil.ErrInvalidDirection) {
		t.Errorf("error = %v, want ErrInvalidDirection", err)
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turns.yaml")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(s.Turns) != 3 {
		t.Errorf("got %d turns, want 3", len(s.Turns))
	}
	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadScript on a missing file succeeded")
	}
}

func TestConfigure(t *testing.T) {
	s, err := ParseScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	base := Config{Ticks: 60, Tick: 16 * time.Millisecond}
	tests := []struct {
		name     string
		ticksSet bool
		want     int
	}{
		{"script ticks", false, 12},
		{"explicit ticks win", true, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := s.Configure(base, tt.ticksSet)
			if cfg.Ticks != tt.want {
				t.Errorf("Ticks = %d, want %d", cfg.Ticks, tt.want)
			}
			if cfg.Tick != base.Tick {
				t.Errorf("Tick = %v, want %v", cfg.Tick, base.Tick)
			}
			if cfg.Turns[1] != charutil.Down || len(cfg.Turns) != 2 {
				t.Errorf("Turns = %v", cfg.Turns)
			}
		})
	}

	empty := &Script{}
	if cfg := empty.Configure(base, false); cfg.Ticks != 60 {
		t.Errorf("a script without ticks changed Ticks to %d", cfg.Ticks)
	}
}
