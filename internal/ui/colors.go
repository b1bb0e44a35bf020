package ui

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes so the dashboard follows the
// user's terminal theme.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorAccent    lipgloss.Color = "5" // Magenta
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Column styles used by the dashboard tables.
var (
	KeyStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	NameStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError)
	BorderStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TitleStyle  = lipgloss.NewStyle().Italic(true)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
)
