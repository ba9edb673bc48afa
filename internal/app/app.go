package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/tilestep/internal/dweller"
	"github.com/vinser/tilestep/internal/floor"
	"github.com/vinser/tilestep/internal/model/about"
	"github.com/vinser/tilestep/internal/model/play"
	"github.com/vinser/tilestep/internal/render"
	"github.com/vinser/tilestep/internal/state"
)

type status uint

const (
	statusPlay status = iota
	statusAbout
)

// aboutHeight is the viewport height of the help page before any resize.
const aboutHeight = 20

type Model struct {
	status status
	state  *state.State
	floor  *floor.Floor
	// models
	play  play.Model
	about about.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

func New(st *state.State, f *floor.Floor, w *dweller.Walker) Model {
	return Model{
		status: statusPlay,
		state:  st,
		floor:  f,
		play:   play.New(f, w, st.Tick),
	}
}

func (m Model) Init() tea.Cmd {
	return m.play.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q": // quit all app models
			m.saveState()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		// The play model keeps the size for its page even while help is shown
		m.play, cmd = m.play.Update(play.WindowSizeMsg{
			Width:  msg.Width,
			Height: msg.Height,
		})
		cmds = append(cmds, cmd)
		if m.status == statusAbout {
			m.about.SetSize(msg.Width, msg.Height)
		}
		// Force a full repaint
		cmds = append(cmds, tea.ClearScreen)
		return m, tea.Batch(cmds...)
	}

	switch m.status {
	case statusPlay:
		switch msg.(type) {
		case play.ShowHelpMsg:
			m.status = statusAbout
			m.about = about.New(m.floor.Width()*render.CellWidth, aboutHeight)
			m.about.SetSize(m.termWidth, m.termHeight)
		default:
			m.play, cmd = m.play.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusAbout:
		switch msg.(type) {
		case about.CloseAboutMsg:
			m.status = statusPlay
		case play.TickMsg, play.FrameMsg:
			// Keep the simulation clock running behind the help page
			m.play, cmd = m.play.Update(msg)
		default:
			m.about, cmd = m.about.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) saveState() {
	if m.state == nil {
		return
	}
	if err := m.state.Save(); err != nil {
		log.Printf("save state: %v", err)
	}
}

func (m Model) View() string {
	switch m.status {
	case statusPlay:
		return m.play.View()
	case statusAbout:
		return m.about.View()
	}
	return ""
}
