package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanay2920003/sitelink/internal/adapters/tui/styles"
	"github.com/Tanay2920003/sitelink/internal/application/session"
	"github.com/Tanay2920003/sitelink/internal/domain"
)

// EditorKeyMap defines key bindings for the category editor
type EditorKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Meta     key.Binding
	Add      key.Binding
	Delete   key.Binding
	Save     key.Binding
	Revert   key.Binding
	Diff     key.Binding
	Raw      key.Binding
	External key.Binding
	Back     key.Binding
	Help     key.Binding
}

var EditorKeys = EditorKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit playlist"),
	),
	Meta: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit details"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Revert: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "revert"),
	),
	Diff: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "diff"),
	),
	Raw: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "raw JSON"),
	),
	External: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "$EDITOR"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "tab"),
		key.WithHelp("esc", "files"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// editorChrome is the number of lines around the playlist list
const editorChrome = 16

// EditorModel shows the open category and its playlists
type EditorModel struct {
	ViewState
	sess   *session.Session
	pages  *Paginator
	saving bool
}

// NewEditorModel creates a new editor model
func NewEditorModel(sess *session.Session) *EditorModel {
	return &EditorModel{
		sess:  sess,
		pages: NewPaginator(10),
	}
}

// Init initializes the editor
func (m *EditorModel) Init() tea.Cmd {
	return nil
}

// Sync clamps the cursor to the playlists of the working copy
func (m *EditorModel) Sync() {
	cat, _ := m.sess.Current()
	m.pages.SetTotal(len(cat.Playlists))
}

// Reset moves the cursor back to the first playlist
func (m *EditorModel) Reset() {
	m.pages.Reset()
	m.ClearMessage()
	m.Sync()
}

// Update handles messages for the editor
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case SavedMsg:
		m.saving = false
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, EditorKeys.Up):
			m.pages.CursorUp()
			return m, nil

		case key.Matches(msg, EditorKeys.Down):
			m.pages.CursorDown()
			return m, nil

		case key.Matches(msg, EditorKeys.Edit):
			if m.pages.Total() == 0 {
				return m, nil
			}
			return m, send(EditPlaylistMsg{Index: m.pages.Cursor()})

		case key.Matches(msg, EditorKeys.Meta):
			return m, send(SwitchToMetaMsg{})

		case key.Matches(msg, EditorKeys.Add):
			index, err := m.sess.AddPlaylist()
			if err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			m.Sync()
			m.pages.SetCursor(index)
			return m, send(EditPlaylistMsg{Index: index})

		case key.Matches(msg, EditorKeys.Delete):
			if m.pages.Total() == 0 {
				return m, nil
			}
			if err := m.sess.DeletePlaylist(m.pages.Cursor()); err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			m.pages.RemoveAtCursor()
			return m, nil

		case key.Matches(msg, EditorKeys.Save):
			if m.saving {
				return m, nil
			}
			m.saving = true
			return m, m.save()

		case key.Matches(msg, EditorKeys.Revert):
			m.sess.Discard()
			m.Sync()
			return m, nil

		case key.Matches(msg, EditorKeys.Diff):
			return m, send(SwitchToDiffMsg{})

		case key.Matches(msg, EditorKeys.Raw):
			return m, send(SwitchToRawMsg{})

		case key.Matches(msg, EditorKeys.External):
			if m.sess.Dirty() {
				m.SetMessage("Save or revert your changes before opening $EDITOR", true)
				return m, nil
			}
			return m, send(OpenEditorMsg{Filename: m.sess.Filename()})

		case key.Matches(msg, EditorKeys.Back):
			return m, send(SwitchToBrowserMsg{})

		case key.Matches(msg, EditorKeys.Help):
			return m, send(SwitchToHelpMsg{})
		}
	}

	return m, nil
}

func (m *EditorModel) save() tea.Cmd {
	return func() tea.Msg {
		return SavedMsg{Err: m.sess.Save(background())}
	}
}

// SetSize updates the view dimensions and the page size
func (m *EditorModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)

	cursor := m.pages.Cursor()
	m.pages = NewPaginator(max(height-editorChrome, 3))
	m.Sync()
	m.pages.SetCursor(cursor)
}

// View renders the editor
func (m *EditorModel) View() string {
	cat, ok := m.sess.Current()
	if !ok {
		return NewViewBuilder().
			Title("Editor").
			Muted("No file open").
			BlankLine().
			Help(EditorKeys.Back).
			StringUnwrapped()
	}

	title := fmt.Sprintf("%s %s", iconText(cat), cat.Name)
	if m.sess.Dirty() {
		title += " " + styles.DirtyMark.String()
	}

	v := NewViewBuilder().Title(title)
	v.Line(RenderLabelValue("File", m.sess.Filename()))
	v.Line(RenderLabelValue("Slug", cat.Slug))
	v.Line(RenderLabelValue("Description", Truncate(cat.Description, max(m.Width-20, 30))))
	v.BlankLine()

	v.Line(styles.InputLabel.Render(fmt.Sprintf("Playlists (%d)", len(cat.Playlists))))
	if len(cat.Playlists) == 0 {
		v.Muted("  No playlists yet. Press a to add one.")
	}
	start, end := m.pages.VisibleRange()
	for i := start; i < end && i < len(cat.Playlists); i++ {
		v.Line(m.renderPlaylist(i, cat.Playlists[i], i == m.pages.Cursor()))
	}
	if m.pages.TotalPages() > 1 {
		v.Muted(fmt.Sprintf("page %d/%d", m.pages.CurrentPage(), m.pages.TotalPages()))
	}
	v.BlankLine()

	if m.saving {
		v.Muted("Saving...")
	}
	v.Message(m.Message, m.MessageErr)
	v.Help(EditorKeys.Edit, EditorKeys.Meta, EditorKeys.Add, EditorKeys.Delete, EditorKeys.Save,
		EditorKeys.Diff, EditorKeys.Raw, EditorKeys.External, EditorKeys.Back)

	return v.StringUnwrapped()
}

func (m *EditorModel) renderPlaylist(i int, p domain.Playlist, selected bool) string {
	title := p.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	text := fmt.Sprintf("%2d. %s", i+1, Truncate(title, max(m.Width/2, 30)))
	details := fmt.Sprintf(" %s · %d videos · %d", p.Creator, p.VideoCount, p.Year)

	if selected {
		return RenderRow(text, true) + " " + styles.Difficulty(p.Difficulty) + styles.MutedText.Render(details)
	}
	return text + " " + styles.Difficulty(p.Difficulty) + styles.MutedText.Render(details)
}

// iconText shows URL icons as a placeholder glyph
func iconText(c domain.Category) string {
	if c.IconIsURL() {
		return "🖼"
	}
	return c.Icon
}
