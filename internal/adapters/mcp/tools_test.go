package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanay2920003/sitelink/internal/adapters/filesystem"
	"github.com/Tanay2920003/sitelink/internal/logger"
)

const webDevJSON = `{
    "name": "Web Dev",
    "slug": "web-dev",
    "description": "",
    "icon": "🌐",
    "playlists": [
        {"title": "React Basics", "creator": "Acme", "url": "https://x.com", "language": "English", "difficulty": "beginner", "videoCount": 10, "description": "hooks", "year": 2023}
    ]
}`

func setupRepo(t *testing.T) (*filesystem.Repository, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "web-dev.json"), []byte(webDevJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644))
	return filesystem.NewRepository(dir, logger.Discard()), dir
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	var req mcp.CallToolRequest
	req.Params.Arguments = args

	result, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "unexpected content %T", result.Content[0])
	return text.Text, result.IsError
}

func TestListFilesTool(t *testing.T) {
	repo, _ := setupRepo(t)

	text, isErr := call(t, listFilesHandler(repo), nil)

	assert.False(t, isErr)
	assert.Contains(t, text, "web-dev.json  🌐 Web Dev")
	assert.Contains(t, text, "broken.json  ⚠️ broken")
}

func TestReadFileTool(t *testing.T) {
	repo, _ := setupRepo(t)

	text, isErr := call(t, readFileHandler(repo), map[string]any{"filename": "web-dev.json"})
	assert.False(t, isErr)
	assert.Equal(t, webDevJSON, text)

	_, isErr = call(t, readFileHandler(repo), map[string]any{"filename": "missing.json"})
	assert.True(t, isErr)

	text, isErr = call(t, readFileHandler(repo), map[string]any{})
	assert.True(t, isErr)
	assert.Equal(t, "filename is required", text)
}

func TestLoadAllTool(t *testing.T) {
	repo, _ := setupRepo(t)

	text, isErr := call(t, loadAllHandler(repo, logger.Discard()), nil)

	assert.False(t, isErr)
	assert.Contains(t, text, "Web Dev  (web-dev, web-dev.json)  1 playlists")
	assert.Contains(t, text, "skipped: broken.json")
}

func TestSearchTool(t *testing.T) {
	repo, _ := setupRepo(t)
	h := searchHandler(repo, logger.Discard())

	text, _ := call(t, h, map[string]any{"query": "HOOKS"})
	assert.Equal(t, "## Web Dev\n- React Basics [beginner]  https://x.com\n", text)

	text, _ = call(t, h, map[string]any{"query": "zzz"})
	assert.Equal(t, "No results found.", text)

	text, _ = call(t, h, map[string]any{"query": "", "featured": true})
	assert.True(t, strings.HasPrefix(text, "## Career Planning\n- Roadmap.sh  https://roadmap.sh/"), text)
}

func TestSuggestTool(t *testing.T) {
	repo, _ := setupRepo(t)

	text, _ := call(t, suggestHandler(repo, logger.Discard()), map[string]any{"query": "o", "featured": true, "limit": 2})

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Roadmap.sh")
}

func TestValidateTool(t *testing.T) {
	repo, _ := setupRepo(t)
	h := validateHandler(repo, logger.Discard())

	text, isErr := call(t, h, map[string]any{"content": webDevJSON})
	assert.False(t, isErr)
	assert.Equal(t, "Valid: Web Dev (1 playlists)", text)

	text, isErr = call(t, h, map[string]any{"content": `{"name":"x"}`})
	assert.True(t, isErr)
	assert.Contains(t, text, "slug")

	text, isErr = call(t, h, map[string]any{"filename": "web-dev.json"})
	assert.False(t, isErr)
	assert.Equal(t, "ok       web-dev.json\n", text)

	text, isErr = call(t, h, nil)
	assert.True(t, isErr)
	assert.Contains(t, text, "invalid  broken.json")
}

func TestWriteFileTool(t *testing.T) {
	repo, dir := setupRepo(t)
	h := writeFileHandler(repo)

	bad := strings.Replace(webDevJSON, `"year": 2023`, `"year": 1999`, 1)
	text, isErr := call(t, h, map[string]any{"filename": "web-dev.json", "content": bad})
	assert.True(t, isErr)
	assert.Contains(t, text, "playlists.0.year")

	content, err := os.ReadFile(filepath.Join(dir, "web-dev.json"))
	require.NoError(t, err)
	assert.Equal(t, webDevJSON, string(content))

	good := strings.Replace(webDevJSON, `"Web Dev"`, `"Web Development"`, 1)
	_, isErr = call(t, h, map[string]any{"filename": "web-dev.json", "content": good})
	assert.False(t, isErr)

	content, err = os.ReadFile(filepath.Join(dir, "web-dev.json"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"name": "Web Development"`)
}

func TestCreateCategoryTool(t *testing.T) {
	repo, dir := setupRepo(t)
	h := createCategoryHandler(repo)

	text, isErr := call(t, h, map[string]any{"name": "Machine Learning"})
	assert.False(t, isErr)
	assert.Equal(t, "Created machine-learning (machine-learning.json)", text)
	assert.FileExists(t, filepath.Join(dir, "machine-learning.json"))

	text, isErr = call(t, h, map[string]any{"name": "Machine Learning"})
	assert.True(t, isErr)
	assert.Contains(t, text, "already exists")
}

func TestAddPlaylistTool(t *testing.T) {
	repo, dir := setupRepo(t)
	h := addPlaylistHandler(repo)

	text, isErr := call(t, h, map[string]any{
		"filename":    "web-dev.json",
		"title":       "CSS Grid",
		"creator":     "Layouts Inc",
		"url":         "https://example.com/grid",
		"difficulty":  "intermediate",
		"video_count": 7,
		"year":        2024,
	})
	require.False(t, isErr, text)

	content, err := os.ReadFile(filepath.Join(dir, "web-dev.json"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"title": "CSS Grid"`)
	assert.Contains(t, string(content), `"videoCount": 7`)

	_, isErr = call(t, h, map[string]any{"filename": "web-dev.json", "title": "No URL", "creator": "x"})
	assert.True(t, isErr)
}
