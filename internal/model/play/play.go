package play

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/tilestep/internal/charutil"
	"github.com/vinser/tilestep/internal/dweller"
	"github.com/vinser/tilestep/internal/floor"
	"github.com/vinser/tilestep/internal/render"
	"github.com/vinser/tilestep/internal/style"
)

// framesPerTick is how many frames are drawn per simulation tick.
const framesPerTick = 4

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Step  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Step, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Pause, k.Step, k.Help, k.Quit}}
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "w", "W"), key.WithHelp("↑/w", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "s", "S"), key.WithHelp("↓/s", "down")),
	Left:  key.NewBinding(key.WithKeys("left", "a", "A"), key.WithHelp("←/a", "left")),
	Right: key.NewBinding(key.WithKeys("right", "d", "D"), key.WithHelp("→/d", "right")),
	Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	Step:  key.NewBinding(key.WithKeys("."), key.WithHelp(".", "step")),
	Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// TickMsg advances the simulation by one tick.
type TickMsg time.Time

// FrameMsg redraws between ticks.
type FrameMsg time.Time

// ShowHelpMsg asks the app to open the help page.
type ShowHelpMsg struct{}

func showHelpCmd() tea.Cmd {
	return func() tea.Msg {
		return ShowHelpMsg{}
	}
}

// WindowSizeMsg is a message sent when the terminal is resized.
type WindowSizeMsg struct {
	Width  int
	Height int
}

type Model struct {
	floor    *floor.Floor
	walker   *dweller.Walker
	tick     time.Duration
	lastTick time.Time
	step     dweller.Step
	draw     charutil.PixelPosition
	ticks    int
	paused   bool
	help     help.Model
	width    int
	height   int
}

// New returns a new play model.
func New(f *floor.Floor, w *dweller.Walker, tick time.Duration) Model {
	return Model{
		floor:    f,
		walker:   w,
		tick:     tick,
		lastTick: time.Now(),
		step: dweller.Step{
			OldPosition: w.Pos(),
			Position:    w.Pos(),
			OldGrid:     w.Grid(),
			Grid:        w.Grid(),
			Direction:   w.Dir(),
			Visibility:  charutil.Visible,
		},
		draw: w.Pos(),
		help: help.New(),
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.tick/framesPerTick, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.frameCmd())
}

// Walker returns the walker driven by the model.
func (m Model) Walker() *dweller.Walker {
	return m.walker
}

// Paused reports whether the simulation is stopped.
func (m Model) Paused() bool {
	return m.paused
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Help):
			return m, showHelpCmd()
		case key.Matches(msg, keys.Pause):
			// The tick and frame loops keep running while paused.
			m.paused = !m.paused
			if !m.paused {
				m.lastTick = time.Now()
			}
			return m, nil
		case key.Matches(msg, keys.Step):
			if m.paused {
				m.advance(time.Now())
				m.draw = m.walker.Pos()
			}
			return m, nil
		}
		m.walker.HandleInput(msg.String())
		return m, nil
	case TickMsg:
		if !m.paused {
			m.advance(time.Time(msg))
		}
		return m, m.tickCmd()
	case FrameMsg:
		if m.paused {
			return m, m.frameCmd()
		}
		m.draw = m.walker.DrawPosition(m.interp(time.Time(msg)))
		return m, m.frameCmd()
	}
	return m, nil
}

// advance runs one simulation tick.
func (m *Model) advance(now time.Time) {
	m.step = m.walker.Update(float64(m.tick) / float64(time.Millisecond))
	m.lastTick = now
	m.ticks++
	m.draw = m.walker.OldPos()
	if m.step.Crossed {
		log.Printf("tick %d: tile %v -> %v", m.ticks, m.step.OldGrid, m.step.Grid)
	}
	if m.step.Blocked {
		log.Printf("tick %d: blocked at %v heading %v", m.ticks, m.step.Grid, m.step.Direction)
	}
	if m.step.Visibility == charutil.Hidden {
		log.Printf("tick %d: jump %v -> %v hidden", m.ticks, m.step.OldPosition, m.step.Position)
	}
}

// interp returns how far now is between the last tick and the next one.
func (m Model) interp(now time.Time) float64 {
	if m.tick <= 0 {
		return 1
	}
	f := float64(now.Sub(m.lastTick)) / float64(m.tick)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func (m Model) View() string {
	drawGrid := charutil.DetermineGridPosition(m.draw, m.walker.TileSize())
	maze := render.Maze(m.floor.Layout, render.Walker{
		Grid:      drawGrid,
		Direction: m.walker.Dir(),
		Visible:   m.step.Visibility == charutil.Visible,
		Blocked:   m.step.Blocked,
	})

	var sb strings.Builder
	sb.WriteString(m.header())
	sb.WriteString("\n")
	sb.WriteString(maze)
	sb.WriteString("\n")
	sb.WriteString(m.status(drawGrid))

	title := "Generated maze"
	if m.floor.Source != "" {
		title = m.floor.Source
	} else {
		title = fmt.Sprintf("%s #%d (seed %d)", title, m.floor.Index, m.floor.Seed)
	}
	width := m.floor.Width() * render.CellWidth
	if w := lipgloss.Width(sb.String()); w > width {
		width = w
	}
	height := lipgloss.Height(sb.String()) + 3
	return render.Page(title, sb.String(), m.help.View(keys), width, height, m.width, m.height)
}

func (m Model) header() string {
	state := "running"
	if m.paused {
		state = "paused"
	}
	return field("tick", fmt.Sprintf("%d", m.ticks)) + "  " +
		field("dir", m.walker.Dir().String()) + "  " +
		field("next", m.walker.Desired().String()) + "  " +
		style.Label.Render(state)
}

func (m Model) status(drawGrid charutil.GridPosition) string {
	pos := m.walker.Pos()
	grid := m.walker.Grid()
	wall := charutil.CheckForWallCollision(grid, m.floor.Layout, m.walker.Dir())
	wallText := style.Value.Render("no")
	if wall {
		wallText = style.Alert.Render("yes")
	}
	lines := []string{
		field("pixel", fmt.Sprintf("top %.2f left %.2f", pos.Top, pos.Left)),
		field("grid", fmt.Sprintf("x %.3f y %.3f", grid.X, grid.Y)),
		field("draw", fmt.Sprintf("top %.2f left %.2f (x %.3f y %.3f)", m.draw.Top, m.draw.Left, drawGrid.X, drawGrid.Y)),
		style.Label.Render("wall ahead: ") + wallText + "  " + field("sprite", string(m.step.Visibility)),
	}
	return strings.Join(lines, "\n")
}

func field(label, value string) string {
	return style.Label.Render(label+": ") + style.Value.Render(value)
}
