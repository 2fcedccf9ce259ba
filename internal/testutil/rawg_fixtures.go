package testutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GameOptions contains options for generating a game entry
type GameOptions struct {
	ID         int
	Name       string
	Slug       string // Default derived from Name
	Released   string // YYYY-MM-DD, omitted when empty
	Image      string // Omitted (null) when empty
	Rating     float64
	Metacritic int
	Genres     []string // Genre slugs
}

// GenreOptions contains options for generating a genre entry
type GenreOptions struct {
	ID          int
	Name        string
	Slug        string
	GamesCount  int
	Image       string
	Description string // HTML
}

// TrailerOptions contains options for generating a movie entry
type TrailerOptions struct {
	ID      int
	Name    string
	Preview string
	Max     string
	Q480    string
}

// GameJSON renders one game entry as the remote catalog does
func GameJSON(g GameOptions) map[string]any {
	slug := g.Slug
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(g.Name, " ", "-"))
	}
	entry := map[string]any{
		"id":               g.ID,
		"slug":             slug,
		"name":             g.Name,
		"released":         nil,
		"background_image": nil,
		"rating":           g.Rating,
		"metacritic":       nil,
	}
	if g.Released != "" {
		entry["released"] = g.Released
	}
	if g.Image != "" {
		entry["background_image"] = g.Image
	}
	if g.Metacritic > 0 {
		entry["metacritic"] = g.Metacritic
	}
	genres := make([]map[string]any, 0, len(g.Genres))
	for i, s := range g.Genres {
		if s == "" {
			continue
		}
		genres = append(genres, map[string]any{"id": i + 1, "name": strings.ToUpper(s[:1]) + s[1:], "slug": s})
	}
	entry["genres"] = genres
	return entry
}

// GameListJSON renders a game collection envelope. next is omitted (null) when empty.
func GameListJSON(count int, next string, games ...GameOptions) string {
	results := make([]map[string]any, 0, len(games))
	for _, g := range games {
		results = append(results, GameJSON(g))
	}
	return envelope(count, next, results)
}

// GameDetailJSON renders the single game payload
func GameDetailJSON(g GameOptions, description string, platforms ...string) string {
	entry := GameJSON(g)
	entry["description_raw"] = description
	entry["website"] = fmt.Sprintf("https://example.com/%d", g.ID)
	list := make([]map[string]any, 0, len(platforms))
	for i, p := range platforms {
		list = append(list, map[string]any{"platform": map[string]any{"id": i + 1, "name": p, "slug": strings.ToLower(p)}})
	}
	entry["platforms"] = list
	entry["publishers"] = []map[string]any{{"id": 1, "name": "Publisher", "slug": "publisher"}}
	entry["developers"] = []map[string]any{{"id": 2, "name": "Developer", "slug": "developer"}}
	return mustJSON(entry)
}

// GenreJSON renders the single genre payload
func GenreJSON(g GenreOptions) string {
	return mustJSON(genreEntry(g))
}

// GenreListJSON renders the genre collection envelope
func GenreListJSON(genres ...GenreOptions) string {
	results := make([]map[string]any, 0, len(genres))
	for _, g := range genres {
		results = append(results, genreEntry(g))
	}
	return envelope(len(genres), "", results)
}

// TrailerListJSON renders the movies collection envelope of a game
func TrailerListJSON(trailers ...TrailerOptions) string {
	results := make([]map[string]any, 0, len(trailers))
	for _, t := range trailers {
		results = append(results, map[string]any{
			"id":      t.ID,
			"name":    t.Name,
			"preview": t.Preview,
			"data":    map[string]any{"max": t.Max, "480": t.Q480},
		})
	}
	return envelope(len(trailers), "", results)
}

// NotFoundJSON is the body the remote catalog sends with a 404
const NotFoundJSON = `{"detail": "Not found."}`

func genreEntry(g GenreOptions) map[string]any {
	entry := map[string]any{
		"id":               g.ID,
		"name":             g.Name,
		"slug":             g.Slug,
		"games_count":      g.GamesCount,
		"image_background": nil,
	}
	if g.Image != "" {
		entry["image_background"] = g.Image
	}
	if g.Description != "" {
		entry["description"] = g.Description
	}
	return entry
}

func envelope(count int, next string, results []map[string]any) string {
	body := map[string]any{
		"count":    count,
		"next":     nil,
		"previous": nil,
		"results":  results,
	}
	if next != "" {
		body["next"] = next
	}
	return mustJSON(body)
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
