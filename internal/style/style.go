package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Maze
	Wall    = lipgloss.NewStyle().Foreground(lipgloss.Color("21"))             // Blue
	Path    = lipgloss.NewStyle()                                              // Default
	Tunnel  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))            // Grey
	Marker  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))              // Bright red
	Walker  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")) // Bright yellow
	Blocked = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204")) // Pinkish-reddish purple

	// Status lines
	Label = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))           // Grey
	Value = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Alert = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // Bright red

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
