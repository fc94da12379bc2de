package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanay2920003/sitelink/internal/application/session"
	"github.com/Tanay2920003/sitelink/internal/domain"
)

// Playlist form field order
const (
	fieldTitle = iota
	fieldCreator
	fieldURL
	fieldLanguage
	fieldDifficulty
	fieldVideoCount
	fieldDescription
	fieldYear
)

// PlaylistFormModel edits one playlist of the working copy
type PlaylistFormModel struct {
	ViewState
	sess  *session.Session
	form  *InputForm
	index int
}

// NewPlaylistFormModel creates a new playlist form
func NewPlaylistFormModel(sess *session.Session) *PlaylistFormModel {
	difficulty := NewInputField("Difficulty", "beginner", 16)
	levels := make([]string, len(domain.Difficulties))
	for i, d := range domain.Difficulties {
		levels[i] = string(d)
	}
	difficulty.Hint = strings.Join(levels, " | ")

	url := NewInputField("URL", "https://www.youtube.com/playlist?list=...", 512)
	url.Hint = "absolute http(s) URL"

	year := NewInputField("Year", "2024", 4)
	year.Hint = fmt.Sprintf("%d or later", domain.MinYear)

	return &PlaylistFormModel{
		sess: sess,
		form: NewInputForm(
			NewInputField("Title", "Playlist title", 200),
			NewInputField("Creator", "Channel or author", 100),
			url,
			NewInputField("Language", "English", 40),
			difficulty,
			NewInputField("Video count", "0", 6),
			NewInputField("Description", "What the playlist covers", 500),
			year,
		),
	}
}

// SetPlaylist loads the playlist at index into the form
func (m *PlaylistFormModel) SetPlaylist(index int) bool {
	cat, ok := m.sess.Current()
	if !ok || index < 0 || index >= len(cat.Playlists) {
		return false
	}
	p := cat.Playlists[index]

	m.index = index
	m.ClearMessage()
	m.form.Reset()
	m.form.SetValue(fieldTitle, p.Title)
	m.form.SetValue(fieldCreator, p.Creator)
	m.form.SetValue(fieldURL, p.URL)
	m.form.SetValue(fieldLanguage, p.Language)
	m.form.SetValue(fieldDifficulty, string(p.Difficulty))
	m.form.SetValue(fieldVideoCount, strconv.Itoa(p.VideoCount))
	m.form.SetValue(fieldDescription, p.Description)
	m.form.SetValue(fieldYear, strconv.Itoa(p.Year))
	return true
}

// Init initializes the form
func (m *PlaylistFormModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the playlist form
func (m *PlaylistFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, send(SwitchToEditorMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			if err := m.apply(); err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			return m, send(SwitchToEditorMsg{})
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// apply copies the form into the working copy. Only the numeric fields
// are checked here; the schema runs when the file is saved.
func (m *PlaylistFormModel) apply() error {
	videos, err := parseInt("video count", m.form.Value(fieldVideoCount))
	if err != nil {
		return err
	}
	year, err := parseInt("year", m.form.Value(fieldYear))
	if err != nil {
		return err
	}

	return m.sess.UpdatePlaylist(m.index, func(p *domain.Playlist) {
		p.Title = m.form.Value(fieldTitle)
		p.Creator = m.form.Value(fieldCreator)
		p.URL = m.form.Value(fieldURL)
		p.Language = m.form.Value(fieldLanguage)
		p.Difficulty = domain.Difficulty(strings.ToLower(m.form.Value(fieldDifficulty)))
		p.VideoCount = videos
		p.Description = m.form.Value(fieldDescription)
		p.Year = year
	})
}

// View renders the playlist form
func (m *PlaylistFormModel) View() string {
	return NewViewBuilder().
		Title(fmt.Sprintf("Playlist %d", m.index+1)).
		Raw(m.form.RenderFields()).
		BlankLine().BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("apply")).
		StringUnwrapped()
}

// Metadata form field order
const (
	fieldName = iota
	fieldSlug
	fieldCategoryDescription
	fieldIcon
)

// MetaFormModel edits the category name, slug, description and icon
type MetaFormModel struct {
	ViewState
	sess *session.Session
	form *InputForm
}

// NewMetaFormModel creates a new metadata form
func NewMetaFormModel(sess *session.Session) *MetaFormModel {
	slug := NewInputField("Slug", "web-development", 100)
	slug.Hint = "lowercase letters, digits and hyphens"

	icon := NewInputField("Icon", "📁", 256)
	icon.Hint = "an emoji or an image URL"

	return &MetaFormModel{
		sess: sess,
		form: NewInputForm(
			NewInputField("Name", "Category name", 100),
			slug,
			NewInputField("Description", "Description", 500),
			icon,
		),
	}
}

// Load copies the working copy metadata into the form
func (m *MetaFormModel) Load() bool {
	cat, ok := m.sess.Current()
	if !ok {
		return false
	}
	m.ClearMessage()
	m.form.Reset()
	m.form.SetValue(fieldName, cat.Name)
	m.form.SetValue(fieldSlug, cat.Slug)
	m.form.SetValue(fieldCategoryDescription, cat.Description)
	m.form.SetValue(fieldIcon, cat.Icon)
	return true
}

// Init initializes the form
func (m *MetaFormModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the metadata form
func (m *MetaFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, send(SwitchToEditorMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			err := m.sess.Edit(func(c *domain.Category) {
				c.Name = m.form.Value(fieldName)
				c.Slug = m.form.Value(fieldSlug)
				c.Description = m.form.Value(fieldCategoryDescription)
				c.Icon = m.form.Value(fieldIcon)
			})
			if err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			return m, send(SwitchToEditorMsg{})
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// View renders the metadata form
func (m *MetaFormModel) View() string {
	return NewViewBuilder().
		Title("Category details").
		Raw(m.form.RenderFields()).
		BlankLine().BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("apply")).
		StringUnwrapped()
}

func parseInt(field, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", field)
	}
	return n, nil
}
