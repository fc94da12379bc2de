package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tanay2920003/sitelink/internal/domain"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a category file",
	Long: `Print a category file, reformatted with four-space indentation.

Examples:
  sitelink-cli show web-dev.json
  sitelink-cli show web-dev.json --raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := GetRepo().ReadFile(args[0])
		if err != nil {
			return err
		}
		if showRaw {
			fmt.Print(string(content))
			return nil
		}

		formatted, err := domain.FormatJSON(content)
		if err != nil {
			return err
		}
		fmt.Print(string(formatted))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the file as stored")
	rootCmd.AddCommand(showCmd)
}
