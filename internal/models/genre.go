package models

// Genre represents a catalog category
type Genre struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"` // Filter key used in game queries
	GamesCount  int    `json:"gamesCount"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"` // Plain text, markup stripped
}

// Trailer is a video attached to a game
type Trailer struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PreviewURL string `json:"previewUrl,omitempty"`
	VideoURL   string `json:"videoUrl"`
}
