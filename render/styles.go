package render

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorWall     = lipgloss.Color("#5C6370")
	ColorTrap     = lipgloss.Color("#D19A66")
	ColorEndpoint = lipgloss.Color("#2CD7C7")
	ColorVisited  = lipgloss.Color("#3E6D9C")
	ColorFrontier = lipgloss.Color("#E5C07B")
	ColorPath     = lipgloss.Color("#98C379")
	ColorCurrent  = lipgloss.Color("#E06C75")
	ColorMuted    = lipgloss.Color("#2C4A54")
	ColorError    = lipgloss.Color("#E74C3C")
)

// Styles is the set of lipgloss styles a Renderer draws with.
type Styles struct {
	Wall     lipgloss.Style
	Trap     lipgloss.Style
	Endpoint lipgloss.Style
	Visited  lipgloss.Style
	Frontier lipgloss.Style
	Path     lipgloss.Style
	Current  lipgloss.Style
	Empty    lipgloss.Style

	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Wall:     lipgloss.NewStyle().Foreground(ColorWall),
		Trap:     lipgloss.NewStyle().Foreground(ColorTrap),
		Endpoint: lipgloss.NewStyle().Foreground(ColorEndpoint).Bold(true),
		Visited:  lipgloss.NewStyle().Foreground(ColorVisited),
		Frontier: lipgloss.NewStyle().Foreground(ColorFrontier),
		Path:     lipgloss.NewStyle().Foreground(ColorPath).Bold(true),
		Current:  lipgloss.NewStyle().Foreground(ColorCurrent).Bold(true),
		Empty:    lipgloss.NewStyle().Foreground(ColorMuted),

		Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorEndpoint),
		Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
		Success: lipgloss.NewStyle().Foreground(ColorPath),
		Failure: lipgloss.NewStyle().Foreground(ColorError),
	}
}

// PlainStyles returns styles that add no escape sequences.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Wall: s, Trap: s, Endpoint: s, Visited: s, Frontier: s,
		Path: s, Current: s, Empty: s,
		Title: s, Muted: s, Success: s, Failure: s,
	}
}
