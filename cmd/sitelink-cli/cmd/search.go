package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tanay2920003/sitelink/internal/application/commands"
	"github.com/Tanay2920003/sitelink/internal/domain"
)

var (
	searchSuggest  bool
	searchLimit    int
	searchFeatured bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search resources",
	Long: `Search playlists by name, description or category.

Results are grouped by category with Career Planning first. With --suggest
only the first matches are printed, in directory order.

Examples:
  sitelink-cli search react
  sitelink-cli search --featured
  sitelink-cli search py --suggest --limit 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) == 1 {
			query = args[0]
		}

		searchCmd := commands.NewSearchCommand(GetRepo(), GetLogger(), query)
		searchCmd.Limit = searchLimit
		searchCmd.IncludeFeatured = searchFeatured

		result, err := searchCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if searchSuggest {
			for _, r := range result.Suggestions {
				printResource(r)
			}
			return nil
		}

		if result.Total == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, g := range result.Groups {
			fmt.Printf("%s\n", g.Category)
			for _, r := range g.Items {
				printResource(r)
			}
		}
		return nil
	},
}

func printResource(r domain.Resource) {
	if r.Difficulty != "" {
		fmt.Printf("  %s %s [%s] %s\n", r.Icon, r.Name, r.Difficulty, r.URL)
		return
	}
	fmt.Printf("  %s %s %s\n", r.Icon, r.Name, r.URL)
}

func init() {
	searchCmd.Flags().BoolVarP(&searchSuggest, "suggest", "s", false, "print autocomplete suggestions only")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", commands.DefaultSuggestLimit, "maximum number of suggestions")
	searchCmd.Flags().BoolVar(&searchFeatured, "featured", false, "include the featured learning platforms")
	rootCmd.AddCommand(searchCmd)
}
