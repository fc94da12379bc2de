package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanay2920003/sitelink/internal/adapters/tui/styles"
	"github.com/Tanay2920003/sitelink/internal/application/session"
	"github.com/Tanay2920003/sitelink/internal/domain"
)

// InspectKeyMap defines key bindings for the diff and raw JSON views
type InspectKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Copy  key.Binding
	Close key.Binding
}

var InspectKeys = InspectKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "close"),
	),
}

// DiffModel summarises the unsaved changes of the working copy
type DiffModel struct {
	ViewState
	sess *session.Session
}

// NewDiffModel creates a new diff view
func NewDiffModel(sess *session.Session) *DiffModel {
	return &DiffModel{sess: sess}
}

// Init initializes the diff view
func (m *DiffModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the diff view
func (m *DiffModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, InspectKeys.Close) {
		return m, send(SwitchToEditorMsg{})
	}
	return m, nil
}

// View renders the diff view
func (m *DiffModel) View() string {
	return NewViewBuilder().
		Title("Changes").
		Raw(RenderDiff(m.sess.Diff())).
		BlankLine().BlankLine().
		Help(InspectKeys.Close).
		StringUnwrapped()
}

// RenderDiff renders changed metadata fields and the playlist count
func RenderDiff(d domain.Diff) string {
	if d.Empty() {
		return styles.MutedText.Render("No metadata or playlist count changes")
	}

	var b strings.Builder
	for _, c := range d.Changes {
		b.WriteString(styles.InputLabel.Render(c.Field))
		b.WriteString("\n")
		b.WriteString(styles.DiffRemoved.Render("  - " + c.Before))
		b.WriteString("\n")
		b.WriteString(styles.DiffAdded.Render("  + " + c.After))
		b.WriteString("\n")
	}

	b.WriteString(styles.InputLabel.Render("playlists"))
	b.WriteString(fmt.Sprintf("\n  %d → %d", d.PlaylistsBefore, d.PlaylistsAfter))
	switch delta := d.PlaylistDelta(); {
	case delta > 0:
		b.WriteString(styles.DiffAdded.Render(fmt.Sprintf(" (+%d)", delta)))
	case delta < 0:
		b.WriteString(styles.DiffRemoved.Render(fmt.Sprintf(" (%d)", delta)))
	}
	return b.String()
}

// RawModel shows the working copy as it would be written
type RawModel struct {
	ViewState
	sess   *session.Session
	lines  []string
	text   string
	offset int
	copy   func(string) error
}

// NewRawModel creates a new raw JSON view
func NewRawModel(sess *session.Session) *RawModel {
	return &RawModel{sess: sess, copy: clipboard.WriteAll}
}

// Load serialises the working copy
func (m *RawModel) Load() error {
	m.ClearMessage()
	m.offset = 0
	data, err := m.sess.RawJSON()
	if err != nil {
		return err
	}
	m.text = string(data)
	m.lines = strings.Split(strings.TrimRight(m.text, "\n"), "\n")
	return nil
}

// Init initializes the raw view
func (m *RawModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the raw view
func (m *RawModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, InspectKeys.Close):
			return m, send(SwitchToEditorMsg{})
		case key.Matches(msg, InspectKeys.Up):
			if m.offset > 0 {
				m.offset--
			}
		case key.Matches(msg, InspectKeys.Down):
			if m.offset < len(m.lines)-m.pageSize() {
				m.offset++
			}
		case key.Matches(msg, InspectKeys.Copy):
			if err := m.copy(m.text); err != nil {
				m.SetMessage("Copy failed: "+err.Error(), true)
				return m, nil
			}
			m.sess.Notify(session.KindSuccess, "Copied JSON to clipboard")
			return m, send(NotifyMsg{})
		}
	}
	return m, nil
}

func (m *RawModel) pageSize() int {
	return max(m.Height-10, 5)
}

// View renders the raw view
func (m *RawModel) View() string {
	end := min(m.offset+m.pageSize(), len(m.lines))
	body := strings.Join(m.lines[m.offset:end], "\n")

	v := NewViewBuilder().Title("Raw JSON").Line(body)
	if len(m.lines) > m.pageSize() {
		v.Muted(fmt.Sprintf("lines %d-%d of %d", m.offset+1, end, len(m.lines)))
	}
	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(InspectKeys.Up, InspectKeys.Copy, InspectKeys.Close).
		StringUnwrapped()
}
