package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Tanay2920003/sitelink/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Info      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// List rows
	Row = lipgloss.NewStyle()

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowOpen = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	GroupHeader = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	DirtyMark = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true).
			SetString("●")

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Overlays (confirmation gate, git reminder)
	Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Warning).
		Padding(1, 2)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ToastSuccess = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(Black).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Background(Error).
			Foreground(White).
			Padding(0, 1)

	// Diff
	DiffRemoved = lipgloss.NewStyle().
			Foreground(Error)

	DiffAdded = lipgloss.NewStyle().
			Foreground(Secondary)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// DifficultyColor returns the badge color for a playlist level
func DifficultyColor(d domain.Difficulty) lipgloss.Color {
	switch d {
	case domain.DifficultyBeginner:
		return Secondary
	case domain.DifficultyIntermediate:
		return Warning
	case domain.DifficultyAdvanced:
		return Error
	default:
		return Muted
	}
}

// Difficulty renders a playlist level as a colored badge
func Difficulty(d domain.Difficulty) string {
	if d == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(DifficultyColor(d)).Render("[" + string(d) + "]")
}
