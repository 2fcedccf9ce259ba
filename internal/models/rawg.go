package models

// Wire shapes of the RAWG API responses. They are decoded as-is and then
// validated by the parser package before any domain entity is built.

// RawgListResponse is the paginated envelope returned by collection endpoints.
// Results is a pointer so that a missing "results" key can be told apart from an empty list.
type RawgListResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  *[]T    `json:"results"`
}

// RawgGame is a game entry in a collection response
type RawgGame struct {
	ID              int       `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	Released        *string   `json:"released"`
	BackgroundImage *string   `json:"background_image"`
	Rating          *float64  `json:"rating"`
	Metacritic      *int      `json:"metacritic"`
	Genres          []RawgRef `json:"genres"`
}

// RawgRef is a {id, name, slug} reference used by several payloads
type RawgRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RawgGameDetail is the payload of the single game endpoint
type RawgGameDetail struct {
	RawgGame
	DescriptionRaw string    `json:"description_raw"`
	Website        string    `json:"website"`
	Publishers     []RawgRef `json:"publishers"`
	Developers     []RawgRef `json:"developers"`
	Platforms      []struct {
		Platform RawgRef `json:"platform"`
	} `json:"platforms"`
}

// RawgGenre is a genre entry, both in the collection and the single endpoint
type RawgGenre struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	GamesCount      int     `json:"games_count"`
	ImageBackground *string `json:"image_background"`
	Description     string  `json:"description"` // HTML, only on the single endpoint
}

// RawgMovie is a trailer entry of the game movies endpoint
type RawgMovie struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Preview string `json:"preview"`
	Data    struct {
		Max  string `json:"max"`
		Q480 string `json:"480"`
	} `json:"data"`
}

// RawgErrorResponse is the body returned with 404 and some 4xx statuses
type RawgErrorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}
