package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tanay2920003/sitelink/internal/application/commands"
)

var listMeta bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List category files",
	Long: `List the category files in the data directory.

Examples:
  sitelink-cli list
  sitelink-cli list --meta`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !listMeta {
			for _, f := range GetRepo().ListFiles() {
				fmt.Println(f)
			}
			return nil
		}

		files, err := commands.NewListFilesCommand(GetRepo()).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Printf("%s %-30s %s\n", f.Icon, f.Name, f.Filename)
		}
		return nil
	},
}

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Summarize every category",
	Long: `Load every category file, sorted by name, and print a summary.
Unreadable files and slugs shared by several files are reported on stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewLoadAllCommand(GetRepo(), GetLogger()).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, f := range result.Files {
			c := f.Category
			fmt.Printf("%s %s (%s) %d playlists\n", c.Icon, c.Name, c.Slug, len(c.Playlists))
		}
		for _, file := range result.Skipped {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s\n", file)
		}
		for _, c := range result.Conflicts {
			fmt.Fprintf(cmd.ErrOrStderr(), "slug %q used by %v\n", c.Slug, c.Files)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listMeta, "meta", "m", false, "show display name and icon")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(directoryCmd)
}
