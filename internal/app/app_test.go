package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/tilestep/internal/charutil"
	"github.com/vinser/tilestep/internal/dweller"
	"github.com/vinser/tilestep/internal/floor"
	"github.com/vinser/tilestep/internal/model/about"
	"github.com/vinser/tilestep/internal/model/play"
)

func newTestApp() Model {
	f := floor.FromLayout(charutil.Layout{
		[]rune("XXXXX"),
		[]rune("X   X"),
		[]rune("XXXXX"),
	}, "corridor.txt")
	w := dweller.NewWalker(f.Layout, 8, f.Start(), charutil.Right, 250)
	return Model{
		status: statusPlay,
		floor:  f,
		play:   play.New(f, w, 16*time.Millisecond),
	}
}

func TestHelpPageOpensAndCloses(t *testing.T) {
	m := newTestApp()

	next, _ := m.Update(play.ShowHelpMsg{})
	m = next.(Model)
	if m.status != statusAbout {
		t.Fatalf("status = %v, want about", m.status)
	}
	if m.View() == "" {
		t.Error("help page rendered empty")
	}

	next, _ = m.Update(about.CloseAboutMsg{})
	m = next.(Model)
	if m.status != statusPlay {
		t.Errorf("status = %v, want play", m.status)
	}
}

func TestTicksReachPlayBehindHelp(t *testing.T) {
	m := newTestApp()
	next, _ := m.Update(play.ShowHelpMsg{})
	m = next.(Model)

	before := m.play.Walker().Pos()
	next, _ = m.Update(play.TickMsg(time.Now()))
	m = next.(Model)
	if m.play.Walker().Pos() == before {
		t.Error("tick while help is open did not advance the walker")
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestApp()
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.termWidth != 120 || m.termHeight != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.termWidth, m.termHeight)
	}
	if cmd == nil {
		t.Error("resize should request a repaint")
	}
}

func TestQuitWithoutState(t *testing.T) {
	m := newTestApp()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should return tea.Quit")
	}
}
