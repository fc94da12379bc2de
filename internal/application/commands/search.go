package commands

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// DefaultSuggestLimit is the number of autocomplete suggestions returned
// when no positive limit is given
const DefaultSuggestLimit = 5

// Group is a category label with the resources that matched under it
type Group struct {
	Category string            `json:"category"`
	Items    []domain.Resource `json:"items"`
}

// Matches reports whether r contains query in its name, description or
// category label, ignoring case. An empty query matches everything.
func Matches(r domain.Resource, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q) ||
		strings.Contains(strings.ToLower(r.Category), q)
}

// Filter returns the matching resources in dataset order
func Filter(resources []domain.Resource, query string) []domain.Resource {
	out := []domain.Resource{}
	for _, r := range resources {
		if Matches(r, query) {
			out = append(out, r)
		}
	}
	return out
}

// FilterAndGroup groups the matching resources by category. Items keep their
// dataset order. Career Planning comes first, the rest sort by name.
func FilterAndGroup(resources []domain.Resource, query string) []Group {
	index := make(map[string]int)
	groups := []Group{}

	for _, r := range resources {
		if !Matches(r, query) {
			continue
		}
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, Group{Category: r.Category})
		}
		groups[i].Items = append(groups[i].Items, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Category, groups[j].Category
		if a == domain.CareerPlanning || b == domain.CareerPlanning {
			return a == domain.CareerPlanning && b != domain.CareerPlanning
		}
		return a < b
	})
	return groups
}

// Suggest returns the first limit matches in dataset order
func Suggest(resources []domain.Resource, query string, limit int) []domain.Resource {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	out := []domain.Resource{}
	for _, r := range resources {
		if len(out) == limit {
			break
		}
		if Matches(r, query) {
			out = append(out, r)
		}
	}
	return out
}

// SearchResult contains the grouped matches and autocomplete suggestions
type SearchResult struct {
	Query       string            `json:"query"`
	Groups      []Group           `json:"groups"`
	Suggestions []domain.Resource `json:"suggestions"`
	Total       int               `json:"total"`
}

// SearchCommand searches the aggregated directory with a substring scan
type SearchCommand struct {
	repo            ports.CategoryRepository
	logger          *slog.Logger
	Query           string
	Limit           int
	IncludeFeatured bool
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(repo ports.CategoryRepository, logger *slog.Logger, query string) *SearchCommand {
	return &SearchCommand{
		repo:   repo,
		logger: logger,
		Query:  query,
		Limit:  DefaultSuggestLimit,
	}
}

// Resources loads the directory and flattens it into searchable resources,
// featured platforms first when requested
func (c *SearchCommand) Resources(ctx context.Context) ([]domain.Resource, error) {
	loaded, err := NewLoadAllCommand(c.repo, c.logger).Execute(ctx)
	if err != nil {
		return nil, err
	}

	var resources []domain.Resource
	if c.IncludeFeatured {
		resources = append(resources, domain.FeaturedResources()...)
	}
	return append(resources, domain.Flatten(loaded.Categories)...), nil
}

// Execute runs the search command
func (c *SearchCommand) Execute(ctx context.Context) (*SearchResult, error) {
	resources, err := c.Resources(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(c.Query)
	groups := FilterAndGroup(resources, query)

	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}

	return &SearchResult{
		Query:       query,
		Groups:      groups,
		Suggestions: Suggest(resources, query, c.Limit),
		Total:       total,
	}, nil
}
