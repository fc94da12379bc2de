package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanay2920003/sitelink/internal/adapters/filesystem"
	"github.com/Tanay2920003/sitelink/internal/adapters/tui/views"
	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/logger"
)

const categoryJSON = `{
    "name": "%s",
    "slug": "%s",
    "description": "",
    "icon": "🌐",
    "playlists": [
        {"title": "Intro", "creator": "Acme", "url": "https://x.com", "language": "English", "difficulty": "beginner", "videoCount": 3, "description": "", "year": 2024}
    ]
}`

func newTestApp(t *testing.T) *App {
	t.Helper()

	dir := t.TempDir()
	for slug, name := range map[string]string{"web-dev": "Web Dev", "devops": "DevOps"} {
		content := []byte(fmt.Sprintf(categoryJSON, name, slug))
		require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".json"), content, 0644))
	}

	log := logger.Discard()
	return NewApp(filesystem.NewRepository(dir, log), nil, log)
}

// run feeds msg to the app and returns the message produced by the
// resulting command, if it yields a single one
func run(t *testing.T, a *App, msg tea.Msg) tea.Msg {
	t.Helper()

	_, cmd := a.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestApp_OpenFile(t *testing.T) {
	a := newTestApp(t)

	opened := run(t, a, views.OpenFileMsg{Filename: "web-dev.json"})
	require.IsType(t, views.FileOpenedMsg{}, opened)
	assert.NoError(t, opened.(views.FileOpenedMsg).Err)

	a.Update(opened)
	assert.Equal(t, ViewEditor, a.State())
	assert.Equal(t, "web-dev.json", a.Session().Filename())
}

func TestApp_UnsavedChangesGate(t *testing.T) {
	a := newTestApp(t)
	a.Update(run(t, a, views.OpenFileMsg{Filename: "web-dev.json"}))

	_, err := a.Session().AddPlaylist()
	require.NoError(t, err)

	gated := run(t, a, views.OpenFileMsg{Filename: "devops.json"})
	a.Update(gated)
	assert.Equal(t, ViewConfirm, a.State())
	assert.Equal(t, "devops.json", a.Session().Pending())
	assert.Contains(t, a.View(), "devops.json")

	// n keeps the edits and returns to the editor
	a.Update(run(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}))
	assert.Equal(t, ViewEditor, a.State())
	assert.True(t, a.Session().Dirty())
	assert.Empty(t, a.Session().Pending())

	// y discards them and opens the other file
	a.Update(run(t, a, views.OpenFileMsg{Filename: "devops.json"}))
	require.Equal(t, ViewConfirm, a.State())
	a.Update(run(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}))
	assert.Equal(t, ViewEditor, a.State())
	assert.Equal(t, "devops.json", a.Session().Filename())
	assert.False(t, a.Session().Dirty())
}

func TestApp_ReminderDismissedByAnyKey(t *testing.T) {
	a := newTestApp(t)
	a.Update(run(t, a, views.OpenFileMsg{Filename: "web-dev.json"}))

	_, err := a.Session().AddPlaylist()
	require.NoError(t, err)
	require.NoError(t, a.Session().UpdatePlaylist(1, func(p *domain.Playlist) {
		p.Title = "Next steps"
		p.Creator = "Acme"
		p.URL = "https://example.com/next"
		p.Language = "English"
	}))
	require.NoError(t, a.Session().Save(context.Background()))
	require.True(t, a.Session().ReminderPending())
	assert.Contains(t, a.View(), "to dismiss")

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.False(t, a.Session().ReminderPending())
	assert.Equal(t, ViewEditor, a.State())
}

func TestApp_HelpReturnsToEditor(t *testing.T) {
	a := newTestApp(t)
	a.Update(run(t, a, views.OpenFileMsg{Filename: "web-dev.json"}))

	a.Update(views.SwitchToHelpMsg{})
	require.Equal(t, ViewHelp, a.State())

	a.Update(run(t, a, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, ViewEditor, a.State())
}

func TestApp_EditorClosedWithoutFile(t *testing.T) {
	a := newTestApp(t)

	a.Update(views.SwitchToEditorMsg{})

	assert.Equal(t, ViewBrowser, a.State())
}
