package domain

import "fmt"

// Resource is a flattened, searchable directory entry. Playlist-derived
// resources carry the playlist details; featured platforms leave them zero.
type Resource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color,omitempty"`
	Category    string `json:"category"`

	Creator    string     `json:"creator,omitempty"`
	Language   string     `json:"language,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	VideoCount int        `json:"videoCount,omitempty"`
	Year       int        `json:"year,omitempty"`
}

// CareerPlanning is the category pinned to the top of grouped results
const CareerPlanning = "Career Planning"

// Flatten turns every playlist of every category into a Resource,
// keeping category order and playlist order.
func Flatten(categories []Category) []Resource {
	var out []Resource
	for _, c := range categories {
		for i, p := range c.Playlists {
			out = append(out, Resource{
				ID:          fmt.Sprintf("%s-%d", c.Slug, i),
				Name:        p.Title,
				URL:         p.URL,
				Description: p.Description,
				Icon:        c.Icon,
				Category:    c.Name,
				Creator:     p.Creator,
				Language:    p.Language,
				Difficulty:  p.Difficulty,
				VideoCount:  p.VideoCount,
				Year:        p.Year,
			})
		}
	}
	return out
}

// FeaturedResources returns the curated platform list shown on the home page
func FeaturedResources() []Resource {
	return []Resource{
		{
			ID:          "roadmap",
			Name:        "Roadmap.sh",
			URL:         "https://roadmap.sh/",
			Description: "Interactive developer roadmaps, guides and educational content",
			Icon:        "🗺️",
			Color:       "#667eea",
			Category:    CareerPlanning,
		},
		{
			ID:          "w3schools",
			Name:        "W3Schools",
			URL:         "https://www.w3schools.com/",
			Description: "Web development tutorials, references, and exercises",
			Icon:        "📚",
			Color:       "#04AA6D",
			Category:    "Tutorials",
		},
		{
			ID:          "webdev",
			Name:        "Web.dev Learn",
			URL:         "https://web.dev/learn",
			Description: "Google's comprehensive web development courses and best practices",
			Icon:        "🎓",
			Color:       "#4facfe",
			Category:    "Web Development",
		},
		{
			ID:          "dotnet",
			Name:        "Microsoft Learn - .NET",
			URL:         "https://learn.microsoft.com/en-us/training/paths/build-dotnet-applications-csharp/?ns-enrollment-type=Collection&ns-enrollment-id=2md8ip7z51wd47",
			Description: "Build modern .NET applications with C# - Complete learning path",
			Icon:        "💻",
			Color:       "#512BD4",
			Category:    "Backend Development",
		},
		{
			ID:          "mslearn",
			Name:        "Microsoft Learn - Browse",
			URL:         "https://learn.microsoft.com/en-us/training/browse/?resource_type=learning%20path",
			Description: "Explore thousands of Microsoft learning paths and modules",
			Icon:        "🔍",
			Color:       "#0078D4",
			Category:    "Learning Paths",
		},
		{
			ID:          "unity",
			Name:        "Unity Learn",
			URL:         "https://unity.com/learn",
			Description: "Master real-time 3D development with Unity tutorials and courses",
			Icon:        "🎮",
			Color:       "#000000",
			Category:    "Game Development",
		},
		{
			ID:          "unreal",
			Name:        "Unreal Engine",
			URL:         "https://www.unrealengine.com/en-US/learn",
			Description: "Learn to create stunning 3D experiences with Unreal Engine",
			Icon:        "🎲",
			Color:       "#0e1128",
			Category:    "Game Development",
		},
		{
			ID:          "dsa-visualizer",
			Name:        "DSA Algorithm Visualizer",
			URL:         "https://algovizvps.vercel.app/",
			Description: "Interactive visualizations for data structures and algorithms",
			Icon:        "🧩",
			Color:       "#FF5722",
			Category:    "Algorithms",
		},
		{
			ID:          "github-visualizer",
			Name:        "GitHub Visualizer",
			URL:         "https://github-visualizer-olive.vercel.app",
			Description: "Beautifully visualize your GitHub contributions and activity",
			Icon:        "📊",
			Color:       "#24292e",
			Category:    "Visualization",
		},
	}
}
