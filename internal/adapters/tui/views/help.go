package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanay2920003/sitelink/internal/adapters/tui/styles"
	"github.com/Tanay2920003/sitelink/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	back tea.Msg
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{back: SwitchToBrowserMsg{}}
}

// SetReturn sets the view to go back to when help closes
func (m *HelpModel) SetReturn(msg tea.Msg) {
	m.back = msg
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, send(m.back)
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("sitelink Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Files"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / ← / →", "Previous/next page"))
	b.WriteString(helpLine("enter", "Open file"))
	b.WriteString(helpLine("/", "Filter by name or file name"))
	b.WriteString(helpLine("n", "Create a new category"))
	b.WriteString(helpLine("s", "Search the directory"))
	b.WriteString(helpLine("tab", "Back to the open file"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editor"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter", "Edit selected playlist"))
	b.WriteString(helpLine("e", "Edit name, slug, description, icon"))
	b.WriteString(helpLine("a / d", "Add / delete playlist"))
	b.WriteString(helpLine("ctrl+s", "Save (validated first)"))
	b.WriteString(helpLine("u", "Revert to the saved file"))
	b.WriteString(helpLine("v", "Show changes"))
	b.WriteString(helpLine("r", "Raw JSON (c copies)"))
	b.WriteString(helpLine("o", "Open in $EDITOR"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Search"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter", "Copy the playlist URL"))
	b.WriteString(helpLine("ctrl+o", "Open the playlist in the browser"))
	b.WriteString(helpLine("ctrl+f", "Include featured platforms"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Playlist fields"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  title, creator, url, language are required"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  difficulty : beginner | intermediate | advanced"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  year       : " + yearRange()))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return b.String()
}

func yearRange() string {
	return strconv.Itoa(domain.MinYear) + " to next year"
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
