package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Tanay2920003/sitelink/internal/application/commands"
	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// RegisterWriteTools adds all tools that modify category files to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.CategoryRepository) {
	s.AddTool(writeFileTool(), writeFileHandler(repo))
	s.AddTool(createCategoryTool(), createCategoryHandler(repo))
	s.AddTool(addPlaylistTool(), addPlaylistHandler(repo))
}

// --- write_file ---

func writeFileTool() mcp.Tool {
	return mcp.NewTool("write_file",
		mcp.WithDescription("Replace a category file. The content is validated first; nothing is written if any field is invalid."),
		mcp.WithString("filename",
			mcp.Description("Category file name (e.g. web-dev.json)"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Complete category JSON"),
			mcp.Required(),
		),
	)
}

func writeFileHandler(repo ports.CategoryRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filename := req.GetString("filename", "")
		content := req.GetString("content", "")

		result, err := commands.NewWriteCategoryCommand(repo, filename, []byte(content)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- create_category ---

func createCategoryTool() mcp.Tool {
	return mcp.NewTool("create_category",
		mcp.WithDescription("Create a new category file named after the slug of its name. Fails if the file already exists."),
		mcp.WithString("name",
			mcp.Description("Display name; the slug and file name derive from it"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Optional complete category JSON instead of the default skeleton"),
		),
	)
}

func createCategoryHandler(repo ports.CategoryRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateCategoryCommand(repo, req.GetString("name", ""))
		if content := req.GetString("content", ""); content != "" {
			cmd.Content = []byte(content)
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Message, result.Filename)), nil
	}
}

// --- add_playlist ---

func addPlaylistTool() mcp.Tool {
	return mcp.NewTool("add_playlist",
		mcp.WithDescription("Append a playlist to a category file. The whole category is validated before saving."),
		mcp.WithString("filename",
			mcp.Description("Category file name"),
			mcp.Required(),
		),
		mcp.WithString("title", mcp.Description("Playlist title"), mcp.Required()),
		mcp.WithString("creator", mcp.Description("Channel or author"), mcp.Required()),
		mcp.WithString("url", mcp.Description("Absolute playlist URL"), mcp.Required()),
		mcp.WithString("language", mcp.Description("Spoken language (default English)")),
		mcp.WithString("difficulty",
			mcp.Description("Level (default beginner)"),
			mcp.Enum(string(domain.DifficultyBeginner), string(domain.DifficultyIntermediate), string(domain.DifficultyAdvanced)),
		),
		mcp.WithNumber("video_count", mcp.Description("Number of videos")),
		mcp.WithString("description", mcp.Description("Short description")),
		mcp.WithNumber("year", mcp.Description("Publication year (default current year)")),
	)
}

func addPlaylistHandler(repo ports.CategoryRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p := commands.NewPlaylist()
		p.Title = req.GetString("title", "")
		p.Creator = req.GetString("creator", "")
		p.URL = req.GetString("url", "")
		p.Language = req.GetString("language", p.Language)
		p.Difficulty = domain.Difficulty(req.GetString("difficulty", string(p.Difficulty)))
		p.VideoCount = req.GetInt("video_count", p.VideoCount)
		p.Description = req.GetString("description", "")
		p.Year = req.GetInt("year", p.Year)

		result, err := commands.NewAddPlaylistCommand(repo, req.GetString("filename", ""), p).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
