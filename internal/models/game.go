package models

import "time"

// GenreRef is the short genre reference embedded in a game entry
type GenreRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Game represents a catalog entry as shown in lists and search results
type Game struct {
	ID         int        `json:"id"`
	Slug       string     `json:"slug"`
	Name       string     `json:"name"`
	ImageURL   string     `json:"imageUrl,omitempty"`
	Released   *time.Time `json:"released,omitempty"`
	Rating     float64    `json:"rating,omitempty"`
	Metacritic int        `json:"metacritic,omitempty"`
	Genres     []GenreRef `json:"genres,omitempty"`
}

// HasImage reports whether the entry carries a display image.
// Entries without one are never shown in lists.
func (g Game) HasImage() bool {
	return g.ImageURL != ""
}

// ReleaseYear returns the release year, or 0 when the release date is unknown
func (g Game) ReleaseYear() int {
	if g.Released == nil {
		return 0
	}
	return g.Released.Year()
}

// GameDetail is the full record rendered on the game detail page
type GameDetail struct {
	Game
	DescriptionRaw string   `json:"descriptionRaw,omitempty"`
	Website        string   `json:"website,omitempty"`
	Platforms      []string `json:"platforms,omitempty"`
	Publishers     []string `json:"publishers,omitempty"`
	Developers     []string `json:"developers,omitempty"`
}

// DisplayableGames returns the entries that can be shown in a list: entries
// without an image are dropped and duplicates (same ID) keep their first
// occurrence. The input slice is not modified.
func DisplayableGames(games []Game) []Game {
	out := make([]Game, 0, len(games))
	seen := make(map[int]struct{}, len(games))
	for _, g := range games {
		if !g.HasImage() {
			continue
		}
		if _, dup := seen[g.ID]; dup {
			continue
		}
		seen[g.ID] = struct{}{}
		out = append(out, g)
	}
	return out
}

// MetacriticTier buckets the critic score into "high" (75+), "mid" (50+) and
// "low". Unscored games return an empty string.
func (g Game) MetacriticTier() string {
	switch {
	case g.Metacritic <= 0:
		return ""
	case g.Metacritic >= 75:
		return "high"
	case g.Metacritic >= 50:
		return "mid"
	default:
		return "low"
	}
}
