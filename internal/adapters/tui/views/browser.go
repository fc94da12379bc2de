package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanay2920003/sitelink/internal/adapters/tui/styles"
	"github.com/Tanay2920003/sitelink/internal/application/session"
	"github.com/Tanay2920003/sitelink/internal/domain"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Open     key.Binding
	Editor   key.Binding
	New      key.Binding
	Filter   key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Editor: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "editor"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Search: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browserChrome is the number of lines around the file list
const browserChrome = 12

// BrowserModel is the sidebar listing of category files
type BrowserModel struct {
	ViewState
	sess      *session.Session
	filter    textinput.Model
	filtering bool
	files     []domain.FileMetadata
	pages     *Paginator
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(sess *session.Session) *BrowserModel {
	filter := textinput.New()
	filter.Placeholder = "filter by name or file"
	filter.Prompt = "/ "
	filter.CharLimit = 64

	return &BrowserModel{
		sess:   sess,
		filter: filter,
		pages:  NewPaginator(10),
	}
}

type filesLoadedMsg struct{}

// Init loads the listing
func (m *BrowserModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload re-reads the listing from disk
func (m *BrowserModel) Reload() tea.Cmd {
	return func() tea.Msg {
		m.sess.Refresh()
		return filesLoadedMsg{}
	}
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case filesLoadedMsg:
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m, m.updateFilter(msg)
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.pages.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.pages.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.PrevPage):
			m.pages.PrevPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.NextPage):
			m.pages.NextPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.Open):
			if f, ok := m.Selected(); ok {
				return m, send(OpenFileMsg{Filename: f.Filename})
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Editor):
			if m.sess.State() != session.StateEmpty {
				return m, send(SwitchToEditorMsg{})
			}
			m.SetMessage("No file open", true)
			return m, nil

		case key.Matches(msg, BrowserKeys.New):
			return m, send(SwitchToCreateMsg{})

		case key.Matches(msg, BrowserKeys.Filter):
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink

		case key.Matches(msg, BrowserKeys.Search):
			return m, send(SwitchToSearchMsg{})

		case key.Matches(msg, BrowserKeys.Help):
			return m, send(SwitchToHelpMsg{})
		}
	}

	return m, nil
}

func (m *BrowserModel) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return cmd
}

func (m *BrowserModel) applyFilter() {
	m.files = m.sess.FilteredFiles(m.filter.Value())
	m.pages.SetTotal(len(m.files))
}

// Selected returns the file under the cursor
func (m *BrowserModel) Selected() (domain.FileMetadata, bool) {
	i := m.pages.Cursor()
	if i >= 0 && i < len(m.files) {
		return m.files[i], true
	}
	return domain.FileMetadata{}, false
}

// Files returns the currently listed files
func (m *BrowserModel) Files() []domain.FileMetadata {
	return m.files
}

// SetSize updates the view dimensions and the page size
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)

	cursor := m.pages.Cursor()
	m.pages = NewPaginator(max(height-browserChrome, 3))
	m.pages.SetTotal(len(m.files))
	m.pages.SetCursor(cursor)
}

// View renders the browser
func (m *BrowserModel) View() string {
	v := NewViewBuilder().
		Title("sitelink").
		Subtitle("Learning resource directory")

	if m.filtering || m.filter.Value() != "" {
		v.Line(m.filter.View()).BlankLine()
	}

	if len(m.files) == 0 {
		if m.filter.Value() != "" {
			v.Muted("No files match the filter")
		} else {
			v.Muted("No category files. Press n to create one.")
		}
	}

	openFile := m.sess.Filename()
	dirty := m.sess.Dirty()
	start, end := m.pages.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(m.renderFile(m.files[i], i == m.pages.Cursor(), openFile, dirty))
	}

	if m.pages.TotalPages() > 1 {
		v.BlankLine().Muted(fmt.Sprintf("page %d/%d", m.pages.CurrentPage(), m.pages.TotalPages()))
	}

	v.BlankLine().Message(m.Message, m.MessageErr)

	if m.filtering {
		v.Raw(styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("keep filter") + "  " +
			styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("clear"))
	} else {
		v.Help(BrowserKeys.Open, BrowserKeys.Editor, BrowserKeys.New, BrowserKeys.Filter, BrowserKeys.Search, BrowserKeys.Help, BrowserKeys.Quit)
	}

	return v.StringUnwrapped()
}

func (m *BrowserModel) renderFile(f domain.FileMetadata, selected bool, openFile string, dirty bool) string {
	name := Truncate(f.Name, max(m.Width/2, 20))
	text := fmt.Sprintf("%s %s", f.Icon, name)

	var mark string
	if f.Filename == openFile {
		mark = " "
		if dirty {
			mark = " " + styles.DirtyMark.String()
		}
	}

	if selected {
		return RenderRow(text, true) + mark
	}
	if f.Filename == openFile {
		return styles.RowOpen.Render(text) + mark
	}

	return text + " " + styles.MutedText.Render(strings.TrimSuffix(f.Filename, domain.FileExtension)) + mark
}
