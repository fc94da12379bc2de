package views

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanay2920003/sitelink/internal/adapters/filesystem"
	"github.com/Tanay2920003/sitelink/internal/application/session"
	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/logger"
)

const webDevJSON = `{
    "name": "Web Dev",
    "slug": "web-dev",
    "description": "Frontend and backend",
    "icon": "🌐",
    "playlists": [
        {"title": "React Basics", "creator": "Acme", "url": "https://x.com", "language": "English", "difficulty": "beginner", "videoCount": 10, "description": "hooks", "year": 2023}
    ]
}`

const dataJSON = `{
    "name": "Data Science",
    "slug": "data-science",
    "description": "",
    "icon": "📊",
    "playlists": []
}`

func newRepo(t *testing.T) *filesystem.Repository {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "web-dev.json"), []byte(webDevJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data-science.json"), []byte(dataJSON), 0644))
	return filesystem.NewRepository(dir, logger.Discard())
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(newRepo(t), logger.Discard())
}

type fakeOpener struct {
	opened []string
}

func (f *fakeOpener) OpenURL(rawURL string) error {
	f.opened = append(f.opened, rawURL)
	return nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"short", "react", 10, "react"},
		{"exact", "react", 5, "react"},
		{"cut", "react hooks", 6, "react…"},
		{"runes", "🌐🌐🌐", 2, "🌐…"},
		{"single", "react", 1, "…"},
		{"no width", "react", 0, "react"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.width))
		})
	}
}

func TestRenderDiff(t *testing.T) {
	assert.Contains(t, RenderDiff(domain.Diff{PlaylistsBefore: 2, PlaylistsAfter: 2}), "No metadata or playlist count changes")

	out := RenderDiff(domain.Diff{
		Changes:         []domain.FieldChange{{Field: "name", Before: "Web", After: "Web Dev"}},
		PlaylistsBefore: 1,
		PlaylistsAfter:  2,
	})
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "- Web")
	assert.Contains(t, out, "+ Web Dev")
	assert.Contains(t, out, "1 → 2")
	assert.Contains(t, out, "(+1)")
}

func TestBrowser_FilterAndOpen(t *testing.T) {
	sess := newSession(t)
	m := NewBrowserModel(sess)

	m.Update(m.Reload()())
	require.Len(t, m.Files(), 2)

	m.filter.SetValue("web")
	m.applyFilter()
	require.Len(t, m.Files(), 1)
	assert.Equal(t, "web-dev.json", m.Files()[0].Filename)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, OpenFileMsg{Filename: "web-dev.json"}, cmd())
}

func TestBrowser_EditorRequiresOpenFile(t *testing.T) {
	m := NewBrowserModel(newSession(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Nil(t, cmd)
	assert.Equal(t, "No file open", m.Message)
	assert.True(t, m.MessageErr)
}

func TestPlaylistForm_Apply(t *testing.T) {
	sess := newSession(t)
	require.NoError(t, sess.Open(context.Background(), "web-dev.json"))

	m := NewPlaylistFormModel(sess)
	require.True(t, m.SetPlaylist(0))
	assert.False(t, m.SetPlaylist(3))
	require.True(t, m.SetPlaylist(0))

	m.form.SetValue(fieldVideoCount, "ten")
	assert.EqualError(t, m.apply(), "video count must be a whole number")
	assert.False(t, sess.Dirty())

	m.form.SetValue(fieldVideoCount, "12")
	m.form.SetValue(fieldTitle, "React Hooks")
	m.form.SetValue(fieldDifficulty, "Advanced")
	require.NoError(t, m.apply())

	cat, ok := sess.Current()
	require.True(t, ok)
	assert.True(t, sess.Dirty())
	assert.Equal(t, "React Hooks", cat.Playlists[0].Title)
	assert.Equal(t, 12, cat.Playlists[0].VideoCount)
	assert.Equal(t, domain.DifficultyAdvanced, cat.Playlists[0].Difficulty)
}

func TestEditor_AddAndDelete(t *testing.T) {
	sess := newSession(t)
	require.NoError(t, sess.Open(context.Background(), "web-dev.json"))

	m := NewEditorModel(sess)
	m.Reset()

	_, cmd := m.Update(keyRunes("a"))
	require.NotNil(t, cmd)
	assert.Equal(t, EditPlaylistMsg{Index: 1}, cmd())

	cat, _ := sess.Current()
	assert.Len(t, cat.Playlists, 2)

	m.Update(keyRunes("d"))
	cat, _ = sess.Current()
	assert.Len(t, cat.Playlists, 1)
}

func TestEditor_ExternalEditorRefusedWhenDirty(t *testing.T) {
	sess := newSession(t)
	require.NoError(t, sess.Open(context.Background(), "web-dev.json"))

	m := NewEditorModel(sess)
	m.Reset()

	_, cmd := m.Update(keyRunes("o"))
	require.NotNil(t, cmd)
	assert.Equal(t, OpenEditorMsg{Filename: "web-dev.json"}, cmd())

	_, err := sess.AddPlaylist()
	require.NoError(t, err)

	_, cmd = m.Update(keyRunes("o"))
	assert.Nil(t, cmd)
	assert.True(t, m.MessageErr)
}

func TestRawModel_Copy(t *testing.T) {
	sess := newSession(t)
	require.NoError(t, sess.Open(context.Background(), "web-dev.json"))

	var copied string
	m := NewRawModel(sess)
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	require.NoError(t, m.Load())

	_, cmd := m.Update(keyRunes("c"))
	require.NotNil(t, cmd)
	assert.Contains(t, copied, `"slug": "web-dev"`)

	notes := sess.Notifications()
	require.NotEmpty(t, notes)
	assert.Equal(t, "Copied JSON to clipboard", notes[len(notes)-1].Text)
}

func TestSearch_SelectAndOpen(t *testing.T) {
	repo := newRepo(t)
	sess := session.New(repo, logger.Discard())
	web := &fakeOpener{}

	m := NewSearchModel(repo, sess, logger.Discard())
	m.featured = false
	m.SetURLOpener(web)
	m.Update(m.load()())

	m.input.SetValue("react")
	m.refresh()

	r, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "React Basics", r.Name)
	assert.Contains(t, m.View(), "Web Dev")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"https://x.com"}, web.opened)

	m.input.SetValue("zzz")
	m.refresh()
	_, ok = m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No results found")
}
