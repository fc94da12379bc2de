package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tanay2920003/sitelink/internal/application/commands"
	"github.com/Tanay2920003/sitelink/internal/domain"
)

var writeFrom string

var writeCmd = &cobra.Command{
	Use:   "write <file>",
	Short: "Replace a category file",
	Long: `Replace a category file with new content. The content is validated
first and nothing is written if any field is invalid.

Examples:
  sitelink-cli write web-dev.json --from draft.json
  cat draft.json | sitelink-cli write web-dev.json --from -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if writeFrom == "" {
			return errors.New("--from is required")
		}
		content, err := readInput(cmd, writeFrom)
		if err != nil {
			return err
		}

		result, err := commands.NewWriteCategoryCommand(GetRepo(), args[0], content).Execute(context.Background())
		if err != nil {
			printIssues(cmd, err)
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var (
	playlistCreator    string
	playlistURL        string
	playlistLanguage   string
	playlistDifficulty string
	playlistVideos     int
	playlistDesc       string
	playlistYear       int
)

var addPlaylistCmd = &cobra.Command{
	Use:   "add-playlist <file> <title>",
	Short: "Append a playlist to a category",
	Long: `Append a playlist to a category file. The whole category is
validated before the file is replaced.

Examples:
  sitelink-cli add-playlist web-dev.json "CSS Grid" --creator "Layouts Inc" --url https://example.com/grid`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := commands.NewPlaylist()
		p.Title = args[1]
		p.Creator = playlistCreator
		p.URL = playlistURL
		p.Description = playlistDesc
		p.VideoCount = playlistVideos
		if playlistLanguage != "" {
			p.Language = playlistLanguage
		}
		if playlistDifficulty != "" {
			p.Difficulty = domain.Difficulty(playlistDifficulty)
		}
		if playlistYear != 0 {
			p.Year = playlistYear
		}

		result, err := commands.NewAddPlaylistCommand(GetRepo(), args[0], p).Execute(context.Background())
		if err != nil {
			printIssues(cmd, err)
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

// readInput reads a whole file, or stdin when path is "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

// printIssues lists every field of a schema failure on stderr
func printIssues(cmd *cobra.Command, err error) {
	var schemaErr *domain.SchemaError
	if !errors.As(err, &schemaErr) {
		return
	}
	var sb strings.Builder
	for _, issue := range schemaErr.Issues {
		fmt.Fprintf(&sb, "  %s: %s\n", issue.Field, issue.Message)
	}
	fmt.Fprint(cmd.ErrOrStderr(), sb.String())
}

func init() {
	writeCmd.Flags().StringVarP(&writeFrom, "from", "f", "", "read the category JSON from a file (- for stdin)")

	flags := addPlaylistCmd.Flags()
	flags.StringVar(&playlistCreator, "creator", "", "channel or author")
	flags.StringVar(&playlistURL, "url", "", "absolute playlist URL")
	flags.StringVar(&playlistLanguage, "language", "", "spoken language (default English)")
	flags.StringVar(&playlistDifficulty, "difficulty", "", "beginner, intermediate or advanced")
	flags.IntVar(&playlistVideos, "videos", 0, "number of videos")
	flags.StringVar(&playlistDesc, "description", "", "short description")
	flags.IntVar(&playlistYear, "year", 0, "publication year (default current year)")

	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(addPlaylistCmd)
}
