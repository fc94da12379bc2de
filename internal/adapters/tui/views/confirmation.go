package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanay2920003/sitelink/internal/adapters/tui/styles"
	"github.com/Tanay2920003/sitelink/internal/application/session"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "discard"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "keep editing"),
	),
}

// ConfirmationModel is the unsaved changes gate shown when another file is
// opened while the working copy has edits
type ConfirmationModel struct {
	ViewState
	sess *session.Session
	Keys ConfirmKeyMap
	from string
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel(sess *session.Session) *ConfirmationModel {
	return &ConfirmationModel{
		sess: sess,
		Keys: DefaultConfirmKeys,
	}
}

// SetSource records the file whose edits are at stake
func (m *ConfirmationModel) SetSource(filename string) {
	m.from = filename
}

// Init initializes the gate
func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

// Update resolves the gate through the session
func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Cancel):
		m.sess.CancelNavigation()
		return m, send(SwitchToEditorMsg{})

	case key.Matches(keyMsg, m.Keys.Confirm):
		target := m.sess.Pending()
		return m, func() tea.Msg {
			err := m.sess.ConfirmNavigation(background())
			return FileOpenedMsg{Filename: target, Err: err}
		}
	}
	return m, nil
}

// View renders the gate
func (m *ConfirmationModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Unsaved changes"))
	b.WriteString("\n")
	b.WriteString(RenderLabelValue("Editing", m.from))
	b.WriteString("\n")
	b.WriteString(RenderLabelValue("Opening", m.sess.Pending()))
	b.WriteString("\n\n")
	b.WriteString(RenderConfirmPrompt("Discard your changes?"))

	return styles.Modal.Render(b.String())
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to discard, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to keep editing"))
	return b.String()
}

// RenderReminder renders the git reminder shown after a save
func RenderReminder() string {
	var b strings.Builder
	b.WriteString(styles.Success.Render(session.MsgSaved))
	b.WriteString("\n\n")
	b.WriteString(session.ReminderText)
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("  git add data && git commit -m \"Update resources\" && git push"))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render("any key"))
	b.WriteString(styles.HelpDesc.Render(" to dismiss"))
	return styles.Modal.Render(b.String())
}
