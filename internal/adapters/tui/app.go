package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tanay2920003/sitelink/internal/adapters/tui/styles"
	"github.com/Tanay2920003/sitelink/internal/adapters/tui/views"
	"github.com/Tanay2920003/sitelink/internal/application"
	"github.com/Tanay2920003/sitelink/internal/application/session"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewEditor
	ViewCreate
	ViewConfirm
	ViewPlaylist
	ViewMeta
	ViewDiff
	ViewRaw
	ViewSearch
	ViewHelp
)

// toastInterval is how often expired notifications are pruned
const toastInterval = 250 * time.Millisecond

// App is the main TUI application model
type App struct {
	repo   ports.CategoryRepository
	sess   *session.Session
	editor ports.EditorOpener
	logger *slog.Logger

	state    ViewState
	browser  *views.BrowserModel
	edit     *views.EditorModel
	create   *views.CreateModel
	confirm  *views.ConfirmationModel
	playlist *views.PlaylistFormModel
	meta     *views.MetaFormModel
	diff     *views.DiffModel
	raw      *views.RawModel
	search   *views.SearchModel
	help     *views.HelpModel

	ticking bool
	width   int
	height  int
}

// NewApp creates a new TUI application. ed may be nil when no external
// editor is available.
func NewApp(repo ports.CategoryRepository, ed ports.EditorOpener, logger *slog.Logger) *App {
	return NewAppWithBrowser(repo, ed, nil, logger)
}

// NewAppWithBrowser also lets search results open in a web browser
func NewAppWithBrowser(repo ports.CategoryRepository, ed ports.EditorOpener, web ports.URLOpener, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	sess := session.New(repo, logger)

	search := views.NewSearchModel(repo, sess, logger)
	if web != nil {
		search.SetURLOpener(web)
	}

	return &App{
		repo:     repo,
		sess:     sess,
		editor:   ed,
		logger:   logger,
		state:    ViewBrowser,
		browser:  views.NewBrowserModel(sess),
		edit:     views.NewEditorModel(sess),
		create:   views.NewCreateModel(sess),
		confirm:  views.NewConfirmationModel(sess),
		playlist: views.NewPlaylistFormModel(sess),
		meta:     views.NewMetaFormModel(sess),
		diff:     views.NewDiffModel(sess),
		raw:      views.NewRawModel(sess),
		search:   search,
		help:     views.NewHelpModel(),
	}
}

// Session exposes the editor session
func (a *App) Session() *session.Session {
	return a.sess
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

type toastTickMsg struct{}

type editorFinishedMsg struct {
	filename string
	err      error
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// header and toasts take a few lines
		h := max(msg.Height-4, 10)
		a.browser.SetSize(msg.Width, h)
		a.edit.SetSize(msg.Width, h)
		a.create.SetSize(msg.Width, h)
		a.confirm.SetSize(msg.Width, h)
		a.playlist.SetSize(msg.Width, h)
		a.meta.SetSize(msg.Width, h)
		a.diff.SetSize(msg.Width, h)
		a.raw.SetSize(msg.Width, h)
		a.search.SetSize(msg.Width, h)
		a.help.SetSize(msg.Width, h)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.sess.ReminderPending() {
			a.sess.DismissReminder()
			return a, nil
		}

	case toastTickMsg:
		if len(a.sess.Notifications()) == 0 {
			a.ticking = false
			return a, nil
		}
		return a, a.tick()

	case views.NotifyMsg:
		return a, a.startTicking()

	// View switching messages
	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.SwitchToEditorMsg:
		if a.sess.State() == session.StateEmpty {
			a.state = ViewBrowser
			return a, nil
		}
		a.edit.Sync()
		a.state = ViewEditor
		return a, nil

	case views.SwitchToCreateMsg:
		a.create.Reset()
		a.state = ViewCreate
		return a, a.create.Init()

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		return a, a.search.Reset()

	case views.SwitchToHelpMsg:
		a.help.SetReturn(a.returnMsg())
		a.state = ViewHelp
		return a, nil

	case views.SwitchToDiffMsg:
		a.state = ViewDiff
		return a, nil

	case views.SwitchToRawMsg:
		if err := a.raw.Load(); err != nil {
			a.edit.SetMessage(err.Error(), true)
			return a, nil
		}
		a.state = ViewRaw
		return a, nil

	case views.SwitchToMetaMsg:
		if !a.meta.Load() {
			return a, nil
		}
		a.state = ViewMeta
		return a, a.meta.Init()

	case views.EditPlaylistMsg:
		if !a.playlist.SetPlaylist(msg.Index) {
			return a, nil
		}
		a.state = ViewPlaylist
		return a, a.playlist.Init()

	// Session results
	case views.OpenFileMsg:
		return a, a.open(msg.Filename)

	case views.FileOpenedMsg:
		return a, a.fileOpened(msg)

	case views.SavedMsg:
		a.edit.Update(msg)
		if msg.Err != nil {
			a.logger.Debug("save failed", "error", msg.Err)
		}
		return a, tea.Batch(a.startTicking(), a.browser.Reload())

	case views.CreatedMsg:
		a.create.Update(msg)
		return a, a.startTicking()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Filename)

	case editorFinishedMsg:
		if msg.err != nil {
			a.sess.Notify(session.KindError, msg.err.Error())
			return a, a.startTicking()
		}
		filename := msg.filename
		return a, func() tea.Msg {
			return views.FileOpenedMsg{Filename: filename, Err: a.sess.Reload(contextBackground())}
		}
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewEditor:
		_, cmd = a.edit.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewPlaylist:
		_, cmd = a.playlist.Update(msg)
	case ViewMeta:
		_, cmd = a.meta.Update(msg)
	case ViewDiff:
		_, cmd = a.diff.Update(msg)
	case ViewRaw:
		_, cmd = a.raw.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) open(filename string) tea.Cmd {
	return func() tea.Msg {
		return views.FileOpenedMsg{Filename: filename, Err: a.sess.Open(contextBackground(), filename)}
	}
}

func (a *App) fileOpened(msg views.FileOpenedMsg) tea.Cmd {
	var nav *application.NavigationError
	switch {
	case errors.As(msg.Err, &nav):
		a.confirm.SetSource(nav.From)
		a.state = ViewConfirm
		return a.browser.Reload()

	case errors.Is(msg.Err, application.ErrSuperseded):
		return nil

	case msg.Err != nil:
		a.logger.Debug("open failed", "file", msg.Filename, "error", msg.Err)
		a.state = ViewBrowser
		return tea.Batch(a.startTicking(), a.browser.Reload())
	}

	a.edit.Reset()
	a.state = ViewEditor
	return tea.Batch(a.startTicking(), a.browser.Reload())
}

// returnMsg switches back to the current view once help closes
func (a *App) returnMsg() tea.Msg {
	if a.state == ViewEditor {
		return views.SwitchToEditorMsg{}
	}
	return views.SwitchToBrowserMsg{}
}

func (a *App) startTicking() tea.Cmd {
	if a.ticking {
		return nil
	}
	a.ticking = true
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(toastInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

func (a *App) openEditor(filename string) tea.Cmd {
	if a.editor == nil || filename == "" {
		return nil
	}

	fail := func(err error) tea.Cmd {
		return func() tea.Msg {
			return editorFinishedMsg{filename: filename, err: err}
		}
	}

	path, err := a.repo.Path(filename)
	if err != nil {
		return fail(err)
	}
	cmd, err := a.editor.Command(path)
	if err != nil {
		return fail(err)
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{filename: filename, err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	var body string
	switch a.state {
	case ViewEditor:
		body = a.edit.View()
	case ViewCreate:
		body = a.create.View()
	case ViewConfirm:
		body = a.confirm.View()
	case ViewPlaylist:
		body = a.playlist.View()
	case ViewMeta:
		body = a.meta.View()
	case ViewDiff:
		body = a.diff.View()
	case ViewRaw:
		body = a.raw.View()
	case ViewSearch:
		body = a.search.View()
	case ViewHelp:
		body = a.help.View()
	default:
		body = a.browser.View()
	}

	if a.sess.ReminderPending() {
		body = views.RenderReminder()
	}

	parts := []string{a.header()}
	if toasts := views.RenderNotifications(a.sess.Notifications()); toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, "", body)

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (a *App) header() string {
	status := a.sess.State()
	text := "no file open"
	if status != session.StateEmpty {
		text = fmt.Sprintf("%s · %s", a.sess.Filename(), status)
	}
	bar := styles.StatusBar.Render("sitelink") + " " + styles.StatusText.Render(text)
	if pending := a.sess.Pending(); pending != "" {
		bar += " " + styles.StatusText.Render(strings.Join([]string{"→", pending}, " "))
	}
	return bar
}
