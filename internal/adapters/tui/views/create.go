package views

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanay2920003/sitelink/internal/application"
	"github.com/Tanay2920003/sitelink/internal/application/session"
	"github.com/Tanay2920003/sitelink/internal/domain"
)

// CreateModel is the new category modal
type CreateModel struct {
	ViewState
	sess *session.Session
	form *InputForm
	busy bool
}

// NewCreateModel creates a new create view model
func NewCreateModel(sess *session.Session) *CreateModel {
	return &CreateModel{
		sess: sess,
		form: NewInputForm(NewInputField("Category name", "e.g. Machine Learning", 100)),
	}
}

// Reset clears the form
func (m *CreateModel) Reset() {
	m.form.Reset()
	m.busy = false
	m.ClearMessage()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return m.form.Init()
}

// CreatedMsg reports the outcome of CreateAndOpen
type CreatedMsg struct {
	Filename string
	Err      error
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case CreatedMsg:
		m.busy = false
		if msg.Err != nil {
			m.SetMessage(msg.Err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, send(SwitchToBrowserMsg{})

		case key.Matches(msg, m.form.Keys.Submit):
			if m.busy {
				return m, nil
			}
			name := m.form.Value(0)
			if name == "" {
				m.SetMessage("Name is required", true)
				return m, nil
			}
			m.busy = true
			return m, m.create(name)
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *CreateModel) create(name string) tea.Cmd {
	return func() tea.Msg {
		filename, err := m.sess.CreateAndOpen(background(), name)
		var nav *application.NavigationError
		if errors.As(err, &nav) {
			// The file exists now; the gate decides whether to open it.
			return FileOpenedMsg{Filename: filename, Err: err}
		}
		if err != nil {
			return CreatedMsg{Err: err}
		}
		return FileOpenedMsg{Filename: filename}
	}
}

// View renders the create view
func (m *CreateModel) View() string {
	v := NewViewBuilder().
		Title("New category").
		Subtitle("The file name is derived from the name").
		Raw(m.form.RenderFields()).
		BlankLine().BlankLine()

	if name := m.form.Value(0); name != "" {
		slug := application.DeriveSlug(name)
		v.Line(RenderLabelValue("File", slug+domain.FileExtension)).BlankLine()
		if strings.Trim(slug, "-") == "" {
			v.Message("The name needs at least one letter or digit", true)
		}
	}

	if m.busy {
		v.Muted("Creating...")
	}
	return v.Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("create")).
		StringUnwrapped()
}
