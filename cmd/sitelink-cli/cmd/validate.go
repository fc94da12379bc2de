package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tanay2920003/sitelink/internal/application/commands"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check category files against the schema",
	Long: `Check category files against the schema. Every file is checked
when none are given; duplicate slugs are reported as well.

Examples:
  sitelink-cli validate
  sitelink-cli validate web-dev.json go.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewValidateFilesCommand(GetRepo(), GetLogger(), args...).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, r := range result.Reports {
			if r.Valid {
				fmt.Printf("ok       %s\n", r.Filename)
				continue
			}
			fmt.Printf("invalid  %s\n", r.Filename)
			if len(r.Issues) == 0 {
				fmt.Printf("         %s\n", r.Error)
			}
			for _, issue := range r.Issues {
				fmt.Printf("         %s: %s\n", issue.Field, issue.Message)
			}
		}
		for _, c := range result.Conflicts {
			fmt.Printf("conflict slug %q used by %v\n", c.Slug, c.Files)
		}

		if !result.Valid() {
			return errors.New("validation failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
