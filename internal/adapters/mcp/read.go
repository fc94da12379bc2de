package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Tanay2920003/sitelink/internal/application/commands"
	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// RegisterReadTools adds all read-only directory tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.CategoryRepository, logger *slog.Logger) {
	s.AddTool(listFilesTool(), listFilesHandler(repo))
	s.AddTool(readFileTool(), readFileHandler(repo))
	s.AddTool(loadAllTool(), loadAllHandler(repo, logger))
	s.AddTool(searchTool(), searchHandler(repo, logger))
	s.AddTool(suggestTool(), suggestHandler(repo, logger))
	s.AddTool(validateTool(), validateHandler(repo, logger))
}

// --- list_files ---

func listFilesTool() mcp.Tool {
	return mcp.NewTool("list_files",
		mcp.WithDescription("List the category files with their display name and icon, sorted by name."),
	)
}

func listFilesHandler(repo ports.CategoryRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		files, err := commands.NewListFilesCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(files, formatFile)
	}
}

// --- read_file ---

func readFileTool() mcp.Tool {
	return mcp.NewTool("read_file",
		mcp.WithDescription("Read the raw JSON of a category file."),
		mcp.WithString("filename",
			mcp.Description("Category file name (e.g. web-dev.json)"),
			mcp.Required(),
		),
	)
}

func readFileHandler(repo ports.CategoryRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filename := req.GetString("filename", "")
		if filename == "" {
			return toolError(fmt.Errorf("filename is required"))
		}

		content, err := repo.ReadFile(filename)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(content)), nil
	}
}

// --- load_all ---

func loadAllTool() mcp.Tool {
	return mcp.NewTool("load_all",
		mcp.WithDescription("Summarize every category in the directory, sorted by name. Reports unreadable files and duplicate slugs."),
	)
}

func loadAllHandler(repo ports.CategoryRepository, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewLoadAllCommand(repo, logger).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, f := range result.Files {
			c := f.Category
			fmt.Fprintf(&sb, "%s %s  (%s, %s)  %d playlists\n", c.Icon, c.Name, c.Slug, f.Filename, len(c.Playlists))
		}
		if len(result.Files) == 0 {
			sb.WriteString("No categories.\n")
		}
		for _, file := range result.Skipped {
			fmt.Fprintf(&sb, "skipped: %s\n", file)
		}
		for _, conflict := range result.Conflicts {
			fmt.Fprintf(&sb, "duplicate slug %q: %s\n", conflict.Slug, strings.Join(conflict.Files, ", "))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search resources by name, description or category. Results are grouped by category with Career Planning first."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive substring; empty lists everything"),
		),
		mcp.WithBoolean("featured",
			mcp.Description("Include the featured learning platforms"),
		),
	)
}

func searchHandler(repo ports.CategoryRepository, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSearchCommand(repo, logger, req.GetString("query", ""))
		cmd.IncludeFeatured = req.GetBool("featured", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Total == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, g := range result.Groups {
			fmt.Fprintf(&sb, "## %s\n", g.Category)
			for _, r := range g.Items {
				sb.WriteString(formatResource(r))
				sb.WriteByte('\n')
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- suggest ---

func suggestTool() mcp.Tool {
	return mcp.NewTool("suggest",
		mcp.WithDescription("Autocomplete: the first matching resources in directory order."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive substring"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of suggestions (default 5)"),
		),
		mcp.WithBoolean("featured",
			mcp.Description("Include the featured learning platforms"),
		),
	)
}

func suggestHandler(repo ports.CategoryRepository, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSearchCommand(repo, logger, req.GetString("query", ""))
		cmd.Limit = req.GetInt("limit", commands.DefaultSuggestLimit)
		cmd.IncludeFeatured = req.GetBool("featured", false)

		resources, err := cmd.Resources(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(commands.Suggest(resources, cmd.Query, cmd.Limit), formatResource)
	}
}

// --- validate ---

func validateTool() mcp.Tool {
	return mcp.NewTool("validate",
		mcp.WithDescription("Check category JSON against the schema. Pass content to check a draft, a filename to check one file, or nothing to check every file."),
		mcp.WithString("filename",
			mcp.Description("Category file to check"),
		),
		mcp.WithString("content",
			mcp.Description("Category JSON to check without saving"),
		),
	)
}

func validateHandler(repo ports.CategoryRepository, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if content := req.GetString("content", ""); content != "" {
			cat, err := repo.Validate([]byte(content))
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(fmt.Sprintf("Valid: %s (%d playlists)", cat.Name, len(cat.Playlists))), nil
		}

		var files []string
		if filename := req.GetString("filename", ""); filename != "" {
			files = append(files, filename)
		}

		result, err := commands.NewValidateFilesCommand(repo, logger, files...).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, r := range result.Reports {
			if r.Valid {
				fmt.Fprintf(&sb, "ok       %s\n", r.Filename)
				continue
			}
			fmt.Fprintf(&sb, "invalid  %s: %s\n", r.Filename, r.Error)
		}
		for _, c := range result.Conflicts {
			fmt.Fprintf(&sb, "duplicate slug %q: %s\n", c.Slug, strings.Join(c.Files, ", "))
		}
		if !result.Valid() {
			return mcp.NewToolResultError(sb.String()), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatFile(f domain.FileMetadata) string {
	return fmt.Sprintf("%s  %s %s", f.Filename, f.Icon, f.Name)
}

func formatResource(r domain.Resource) string {
	if r.Difficulty != "" {
		return fmt.Sprintf("- %s [%s]  %s", r.Name, r.Difficulty, r.URL)
	}
	return fmt.Sprintf("- %s  %s", r.Name, r.URL)
}
