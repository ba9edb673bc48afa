package state

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vinser/tilestep/internal/flags"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := configDir
	configDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { configDir = prev })
	return dir
}

func TestLoadWithoutFile(t *testing.T) {
	useTempConfigDir(t)
	s := Load()
	if s.TileSize != flags.DefaultTileSize || s.Speed != flags.DefaultSpeed || s.Tick != flags.DefaultTick {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestSaveLoad(t *testing.T) {
	useTempConfigDir(t)
	s := New()
	s.MazePath = "maze.txt"
	s.Seed = 99
	s.TileSize = 12
	s.Speed = 60
	s.Direction = "up"
	s.Tick = 40 * time.Millisecond
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := Load()
	if got.MazePath != "maze.txt" || got.Seed != 99 || got.TileSize != 12 || got.Speed != 60 || got.Direction != "up" || got.Tick != 40*time.Millisecond {
		t.Errorf("Load() = %+v, want the saved values", got)
	}
	if got.SavedAt.IsZero() {
		t.Errorf("SavedAt not set")
	}
}

func TestLoadCorrupted(t *testing.T) {
	dir := useTempConfigDir(t)
	if err := New().Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	path := filepath.Join(dir, appName, "state.dat")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data[len(data)-1] ^= 0xff
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	if s := Load(); s.TileSize != flags.DefaultTileSize || s.MazePath != "" {
		t.Errorf("corrupted file should give defaults, got %+v", s)
	}
}

func TestReset(t *testing.T) {
	dir := useTempConfigDir(t)
	if err := New().Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, appName, "state.dat")); !os.IsNotExist(err) {
		t.Errorf("state file still present after Reset: %v", err)
	}
	if err := Reset(); err != nil {
		t.Errorf("second Reset should be a no-op, got %v", err)
	}
}

func TestApply(t *testing.T) {
	f, err := flags.ParseArgs("tilestep", []string{"-t", "16", "-d", "down", "-s", "5"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	s := New()
	s.MazePath = "old.txt"
	s.Speed = 33
	s.Apply(f)
	if s.TileSize != 16 || s.Direction != "down" || s.Seed != 5 {
		t.Errorf("flags not applied: %+v", s)
	}
	if s.MazePath != "" {
		t.Errorf("a seed on the command line should switch to a generated maze, MazePath = %q", s.MazePath)
	}
	if s.Speed != 33 {
		t.Errorf("speed was not given and should be kept, got %v", s.Speed)
	}
}

func TestApplyZeroSeedPicksNewSeed(t *testing.T) {
	f, err := flags.ParseArgs("tilestep", []string{"-s", "0"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	s := New()
	s.Seed = 42
	s.MazePath = "old.txt"
	s.Apply(f)
	if s.Seed == 0 || s.Seed == 42 {
		t.Errorf("-seed 0 should pick a fresh seed, got %d", s.Seed)
	}
	if s.MazePath != "" {
		t.Errorf("MazePath = %q, want generated maze", s.MazePath)
	}

	none, err := flags.ParseArgs("tilestep", nil, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	s.Seed = 42
	s.Apply(none)
	if s.Seed != 42 {
		t.Errorf("without -seed the saved seed should be kept, got %d", s.Seed)
	}
}

func TestEncryptDecrypt(t *testing.T) {
	plain := []byte("tile")
	enc, err := encrypt(plain)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(enc, plain) {
		t.Errorf("ciphertext contains the plain text")
	}
	dec, err := decrypt(enc)
	if err != nil || !bytes.Equal(dec, plain) {
		t.Errorf("decrypt = %q, %v; want %q", dec, err, plain)
	}
	if _, err := decrypt([]byte{1, 2}); err == nil {
		t.Errorf("short ciphertext should fail")
	}
}
