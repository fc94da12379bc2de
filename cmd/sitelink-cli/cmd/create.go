package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tanay2920003/sitelink/internal/application/commands"
)

var createFrom string

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new category",
	Long: `Create a new category file. The file name is the slug of the name.

The new file holds an empty category unless --from supplies the content.

Examples:
  sitelink-cli create "Machine Learning"
  sitelink-cli create "Rust" --from rust.json
  cat draft.json | sitelink-cli create "Rust" --from -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		createCmd := commands.NewCreateCategoryCommand(GetRepo(), args[0])
		if createFrom != "" {
			content, err := readInput(cmd, createFrom)
			if err != nil {
				return err
			}
			createCmd.Content = content
		}

		result, err := createCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createFrom, "from", "f", "", "read the category JSON from a file (- for stdin)")
	rootCmd.AddCommand(createCmd)
}
