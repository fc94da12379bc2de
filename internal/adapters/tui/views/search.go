package views

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanay2920003/sitelink/internal/adapters/tui/styles"
	"github.com/Tanay2920003/sitelink/internal/application/commands"
	"github.com/Tanay2920003/sitelink/internal/application/session"
	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Featured key.Binding
	Browse   key.Binding
	Cancel   key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy URL"),
	),
	Featured: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "featured"),
	),
	Browse: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "open in browser"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// maxSearchRows caps the number of result rows rendered
const maxSearchRows = 15

// SearchModel searches the whole directory like the public site does
type SearchModel struct {
	ViewState
	repo      ports.CategoryRepository
	sess      *session.Session
	logger    *slog.Logger
	input     textinput.Model
	featured  bool
	resources []domain.Resource
	result    searchView
	cursor    int
	copy      func(string) error
	browser   ports.URLOpener
}

// searchView is the last computed result, flattened for cursor movement
type searchView struct {
	groups      []commands.Group
	rows        []domain.Resource
	suggestions []domain.Resource
}

// NewSearchModel creates a new search view model
func NewSearchModel(repo ports.CategoryRepository, sess *session.Session, logger *slog.Logger) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search playlists, descriptions, categories..."
	input.CharLimit = 100

	return &SearchModel{
		repo:     repo,
		sess:     sess,
		logger:   logger,
		input:    input,
		featured: true,
		copy:     clipboard.WriteAll,
	}
}

type resourcesLoadedMsg struct {
	resources []domain.Resource
	err       error
}

// SetURLOpener enables opening the selected result in a browser
func (m *SearchModel) SetURLOpener(o ports.URLOpener) {
	m.browser = o
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and reloads the directory from disk
func (m *SearchModel) Reset() tea.Cmd {
	m.input.SetValue("")
	m.input.Focus()
	m.cursor = 0
	m.ClearMessage()
	return tea.Batch(textinput.Blink, m.load())
}

func (m *SearchModel) load() tea.Cmd {
	cmd := commands.NewSearchCommand(m.repo, m.logger, "")
	cmd.IncludeFeatured = m.featured
	return func() tea.Msg {
		resources, err := cmd.Resources(background())
		return resourcesLoadedMsg{resources: resources, err: err}
	}
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case resourcesLoadedMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.resources = msg.resources
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, send(SwitchToBrowserMsg{})

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(m.result.rows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Featured):
			m.featured = !m.featured
			return m, m.load()

		case key.Matches(msg, SearchKeys.Select):
			if m.cursor >= 0 && m.cursor < len(m.result.rows) {
				r := m.result.rows[m.cursor]
				if err := m.copy(r.URL); err != nil {
					m.SetMessage("Copy failed: "+err.Error(), true)
					return m, nil
				}
				m.sess.Notify(session.KindSuccess, "Copied "+r.URL)
				return m, send(NotifyMsg{})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// Selected returns the result under the cursor
func (m *SearchModel) Selected() (domain.Resource, bool) {
	if m.cursor >= 0 && m.cursor < len(m.result.rows) {
		return m.result.rows[m.cursor], true
	}
	return domain.Resource{}, false
}

func (m *SearchModel) refresh() {
	query := strings.TrimSpace(m.input.Value())
	groups := commands.FilterAndGroup(m.resources, query)

	var rows []domain.Resource
	for _, g := range groups {
		rows = append(rows, g.Items...)
	}

	m.result = searchView{
		groups:      groups,
		rows:        rows,
		suggestions: commands.Suggest(m.resources, query, commands.DefaultSuggestLimit),
	}
	if m.cursor >= len(rows) {
		m.cursor = max(len(rows)-1, 0)
	}
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n")

	featured := "off"
	if m.featured {
		featured = "on"
	}
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("featured platforms: %s", featured)))
	b.WriteString("\n\n")

	if query := strings.TrimSpace(m.input.Value()); query != "" && len(m.result.suggestions) > 0 {
		names := make([]string, len(m.result.suggestions))
		for i, s := range m.result.suggestions {
			names[i] = s.Name
		}
		b.WriteString(RenderLabelValue("Suggestions", strings.Join(names, ", ")))
		b.WriteString("\n\n")
	}

	if len(m.result.rows) == 0 {
		b.WriteString(styles.MutedText.Render("No results found"))
		b.WriteString("\n")
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.result.rows))))
		b.WriteString("\n\n")
		b.WriteString(m.renderGroups())
	}

	b.WriteString("\n")
	b.WriteString(RenderMessage(m.Message, m.MessageErr))
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(SearchKeys.Up, SearchKeys.Select, SearchKeys.Browse, SearchKeys.Featured, SearchKeys.Cancel))

	return b.String()
}

// renderGroups renders a window of rows around the cursor with group headers
func (m *SearchModel) renderGroups() string {
	start := 0
	if m.cursor >= maxSearchRows {
		start = m.cursor - maxSearchRows + 1
	}
	end := min(start+maxSearchRows, len(m.result.rows))

	var b strings.Builder
	row := 0
	for _, g := range m.result.groups {
		headerDone := false
		for _, r := range g.Items {
			if row >= start && row < end {
				if !headerDone {
					b.WriteString(styles.GroupHeader.Render(g.Category))
					b.WriteString("\n")
					headerDone = true
				}
				b.WriteString(m.renderResult(r, row == m.cursor))
				b.WriteString("\n")
			}
			row++
		}
	}
	if end < len(m.result.rows) {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.result.rows)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *SearchModel) renderResult(r domain.Resource, selected bool) string {
	text := fmt.Sprintf("  %s %s", r.Icon, r.Name)
	line := RenderRow(text, selected)
	if r.Difficulty != "" {
		line += " " + styles.Difficulty(r.Difficulty)
	}
	return line + " " + styles.MutedText.Render(Truncate(r.URL, max(m.Width/2, 30)))
}
